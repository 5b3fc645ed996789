package catalog

import "github.com/hpungsan/starmap/internal/star"

// SampleRecords returns a small built-in slice of the HYG catalog around Sol,
// plus a few distant stars that fall outside DefaultMaxDistance.
// It backs `starmap seed` for trying the tool without a MySQL server.
func SampleRecords() []star.Record {
	s, f := star.String, star.Float
	return []star.Record{
		{X: 0.000005, Y: 0, Z: 0, IAUName: s("Sol"), AbsMag: f(4.85), Dist: 0.000005, Spect: "G2V"},
		{X: -0.472, Y: -0.361, Z: -1.151, IAUName: s("Proxima Centauri"), GL: s("Gl 551"), AbsMag: f(15.45), Dist: 1.295, Spect: "M6Ve"},
		{X: -0.495, Y: -0.414, Z: -1.157, IAUName: s("Rigil Kentaurus"), BF: s("21Alp1Cen"), GL: s("Gl 559A"), AbsMag: f(4.38), Dist: 1.347, Spect: "G2V"},
		{X: -0.495, Y: -0.414, Z: -1.157, AltName: s("Toliman"), BF: s("Alp2Cen"), GL: s("Gl 559B"), AbsMag: f(5.71), Dist: 1.347, Spect: "K1V"},
		{X: -0.017, Y: -1.816, Z: 0.149, IAUName: s("Barnard's Star"), GL: s("Gl 699"), AbsMag: f(13.22), Dist: 1.823, Spect: "M4Ve"},
		{X: -1.905, Y: 0.649, Z: 0.151, GL: s("Gl 406"), AltName: s("Wolf 359"), AbsMag: f(16.55), Dist: 2.409, Spect: "M6"},
		{X: -1.995, Y: 0.545, Z: 1.466, IAUName: s("Lalande 21185"), GL: s("Gl 411"), AbsMag: f(10.46), Dist: 2.547, Spect: "M2V"},
		{X: -0.494, Y: 2.477, Z: -0.758, IAUName: s("Sirius"), BF: s("9Alp CMa"), GL: s("Gl 244A"), AbsMag: f(1.45), Dist: 2.637, Spect: "A0m..."},
		{X: -0.494, Y: 2.477, Z: -0.758, GL: s("Gl 244B"), AbsMag: f(11.18), Dist: 2.637, Spect: "DA2"},
		{X: 1.906, Y: 2.518, Z: -0.596, IAUName: s("Ran"), BF: s("18Eps Eri"), GL: s("Gl 144"), AbsMag: f(6.19), Dist: 3.212, Spect: "K2V"},
		{X: 2.015, Y: -0.577, Z: 2.744, BF: s("61 Cyg"), GL: s("Gl 820A"), AbsMag: f(7.49), Dist: 3.497, Spect: "K5V"},
		{X: 2.015, Y: -0.577, Z: 2.744, GL: s("Gl 820B"), AbsMag: f(8.33), Dist: 3.497, Spect: "K7V"},
		{X: -0.904, Y: 3.182, Z: 0.321, IAUName: s("Procyon"), BF: s("10Alp CMi"), GL: s("Gl 280A"), AbsMag: f(2.65), Dist: 3.514, Spect: "F5IV-V"},
		{X: 1.343, Y: -4.520, Z: 0.707, GL: s("Gl 1245A"), Dist: 4.660, Spect: "M5.5V"},
		{X: 1.504, Y: -4.705, Z: 1.004, IAUName: s("Altair"), BF: s("53Alp Aql"), GL: s("Gl 768"), AbsMag: f(2.21), Dist: 5.130, Spect: "A7V"},
		{X: 0.960, Y: -6.081, Z: 4.588, IAUName: s("Vega"), BF: s("3Alp Lyr"), GL: s("Gl 721"), AbsMag: f(0.58), Dist: 7.679, Spect: "A0Vvar"},
		{X: 6.520, Y: -1.049, Z: -3.952, IAUName: s("Fomalhaut"), BF: s("24Alp PsA"), GL: s("Gl 881"), AbsMag: f(1.74), Dist: 7.704, Spect: "A3V"},
		{X: 4.222, Y: 3.916, Z: -6.505, AbsMag: f(9.52), Dist: 8.691, Spect: "M1"},
		{X: -19.780, Y: 13.880, Z: 1.950, IAUName: s("Regulus"), BF: s("32Alp Leo"), AbsMag: f(-0.57), Dist: 24.310, Spect: "B8IVn"},
		{X: 14.870, Y: 17.990, Z: -35.150, IAUName: s("Achernar"), BF: s("5Alp Eri"), AbsMag: f(-2.77), Dist: 42.750, Spect: "B6Vep"},
		{X: -56.020, Y: 244.760, Z: -86.260, IAUName: s("Rigel"), BF: s("19Bet Ori"), AbsMag: f(-6.93), Dist: 264.550, Spect: "B8Ia"},
		{X: -185.400, Y: 278.700, Z: -149.900, IAUName: s("Naos"), BF: s("Zet Pup"), AbsMag: f(-5.95), Dist: 332.000, Spect: "O5Iafn"},
	}
}

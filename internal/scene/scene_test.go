package scene

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/starmap/internal/star"
)

// fiveStars spans three classes: two G, one K, two M.
func fiveStars() []star.Record {
	return []star.Record{
		{X: 0, Y: 0, Z: 0, IAUName: star.String("Sol"), AbsMag: star.Float(4.85), Dist: 0, Spect: "G2V"},
		{X: -0.5, Y: -0.4, Z: -1.2, IAUName: star.String("Rigil Kentaurus"), AbsMag: star.Float(4.38), Dist: 1.35, Spect: "G2V"},
		{X: 1.9, Y: 2.5, Z: -0.6, IAUName: star.String("Ran"), AbsMag: star.Float(6.19), Dist: 3.2, Spect: "K2V"},
		{X: -0.47, Y: -0.36, Z: -1.15, IAUName: star.String("Proxima Centauri"), AbsMag: star.Float(15.45), Dist: 1.3, Spect: "M6Ve"},
		{X: -0.02, Y: -1.82, Z: 0.15, IAUName: star.String("Barnard's Star"), AbsMag: star.Float(13.22), Dist: 1.8, Spect: "M4Ve"},
	}
}

func TestBuild_OneSeriesPerClass(t *testing.T) {
	stars, excluded := star.Encode(fiveStars())
	require.Zero(t, excluded)

	sc := Build(stars, Options{MaxDistance: 35})

	require.Len(t, sc.Series, 3)
	require.Equal(t, "G", sc.Series[0].Name)
	require.Equal(t, "K", sc.Series[1].Name)
	require.Equal(t, "M", sc.Series[2].Name)
	require.Equal(t, 2, sc.Series[0].Len())
	require.Equal(t, 1, sc.Series[1].Len())
	require.Equal(t, 2, sc.Series[2].Len())
	require.Equal(t, 5, sc.Points())
	require.Equal(t, map[star.Class]int{star.ClassG: 2, star.ClassK: 1, star.ClassM: 2}, sc.Counts())
}

func TestBuild_SeriesAttributes(t *testing.T) {
	stars, _ := star.Encode(fiveStars())
	sc := Build(stars, Options{})

	m := sc.Series[2]
	require.Equal(t, "scatter3d", m.Type)
	require.Equal(t, "markers+text", m.Mode)
	require.Equal(t, "top center", m.TextPosition)
	require.Equal(t, star.ClassM.Color(), m.Marker.Color)
	require.Equal(t, []float64{-0.47, -0.02}, m.X)
	require.Equal(t, []float64{-0.36, -1.82}, m.Y)
	require.Equal(t, []float64{-1.15, 0.15}, m.Z)

	// Faint M dwarfs are unlabeled; brighter one is biggest.
	require.Equal(t, []string{"", ""}, m.Text)
	require.InDelta(t, 2.0, m.Marker.Size[0], 1e-9)
	require.InDelta(t, 12.0, m.Marker.Size[1], 1e-9)

	g := sc.Series[0]
	require.Equal(t, []string{"Sol", "Rigil Kentaurus"}, g.Text)
	require.Len(t, g.Marker.Size, 2)
}

func TestBuild_Layout(t *testing.T) {
	sc := Build(nil, Options{MaxDistance: 35})

	require.Empty(t, sc.Series)
	require.Equal(t, "Stars within 35 light years", sc.Layout.Title.Text)
	require.Equal(t, "black", sc.Layout.PlotBGColor)

	axes := []Axis{sc.Layout.Scene.XAxis, sc.Layout.Scene.YAxis, sc.Layout.Scene.ZAxis}
	titles := []string{"X (light years)", "Y (light years)", "Z (light years)"}
	for i, a := range axes {
		require.Equal(t, titles[i], a.Title.Text)
		require.Equal(t, "black", a.BackgroundColor)
		require.Equal(t, "grey", a.GridColor)
		require.True(t, a.ShowBackground)
	}
}

func TestBuild_CustomTitle(t *testing.T) {
	sc := Build(nil, Options{Title: "Local bubble", MaxDistance: 35})
	require.Equal(t, "Local bubble", sc.Layout.Title.Text)
}

func TestDefaultTitle(t *testing.T) {
	require.Equal(t, "Stars within 12.5 light years", DefaultTitle(12.5))
	require.Equal(t, "Nearby stars", DefaultTitle(0))
}

func TestMarshalJSON(t *testing.T) {
	stars, _ := star.Encode(fiveStars())
	sc := Build(stars, Options{MaxDistance: 35})

	raw, err := json.Marshal(sc)
	require.NoError(t, err)

	var doc struct {
		Data []struct {
			Type   string    `json:"type"`
			Name   string    `json:"name"`
			X      []float64 `json:"x"`
			Marker struct {
				Size  []float64 `json:"size"`
				Color string    `json:"color"`
			} `json:"marker"`
		} `json:"data"`
		Layout struct {
			PlotBGColor string `json:"plot_bgcolor"`
			Scene       struct {
				ZAxis struct {
					Title struct {
						Text string `json:"text"`
					} `json:"title"`
				} `json:"zaxis"`
			} `json:"scene"`
		} `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Len(t, doc.Data, 3)
	require.Equal(t, "scatter3d", doc.Data[1].Type)
	require.Equal(t, "K", doc.Data[1].Name)
	require.Equal(t, star.ClassK.Color(), doc.Data[1].Marker.Color)
	require.Equal(t, "black", doc.Layout.PlotBGColor)
	require.Equal(t, "Z (light years)", doc.Layout.Scene.ZAxis.Title.Text)
	require.NotContains(t, string(raw), `"Class"`)
}

func TestMarshalJSON_EmptyScene(t *testing.T) {
	raw, err := json.Marshal(Build(nil, Options{}))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"data":[]`)
}

package star

// Marker size bounds.
const (
	MinMarkerSize = 2.0
	MaxMarkerSize = 12.0

	// FallbackMarkerSize is used for stars with no magnitude.
	FallbackMarkerSize = MinMarkerSize

	// FlatMarkerSize is used when every magnitude in a bucket is equal
	// and the range cannot be normalized.
	FlatMarkerSize = (MinMarkerSize + MaxMarkerSize) / 2
)

// LabelMagnitude is the exclusive brightness cutoff for text labels.
const LabelMagnitude = 8.0

var nameFields = [...]func(r *Record) *string{
	func(r *Record) *string { return r.IAUName },
	func(r *Record) *string { return r.AltName },
	func(r *Record) *string { return r.BF },
	func(r *Record) *string { return r.GL },
}

// ResolveName returns the first present name in priority order
// IAU name, alternate name, Bayer/Flamsteed, Gliese.
// A present but empty value still wins over later fields.
func ResolveName(r *Record) string {
	for _, field := range nameFields {
		if v := field(r); v != nil {
			return *v
		}
	}
	return ""
}

// Label returns name if the star is brighter than LabelMagnitude, else "".
func Label(name string, absMag *float64) string {
	if absMag == nil || !(*absMag < LabelMagnitude) {
		return ""
	}
	return name
}

// MarkerSizes maps the magnitudes of one bucket onto [MinMarkerSize, MaxMarkerSize],
// inverted so the brightest star gets the largest marker.
//
//	t    = (m - min) / (max - min)
//	s    = t*(Max-Min) + Min
//	size = Max - s + Min
//
// Nil magnitudes get FallbackMarkerSize. If all present magnitudes are equal
// they get FlatMarkerSize.
func MarkerSizes(mags []*float64) []float64 {
	sizes := make([]float64, len(mags))

	lo, hi, found := magRange(mags)
	for i, m := range mags {
		switch {
		case m == nil || !found:
			sizes[i] = FallbackMarkerSize
		case hi == lo:
			sizes[i] = FlatMarkerSize
		default:
			t := (*m - lo) / (hi - lo)
			s := t*(MaxMarkerSize-MinMarkerSize) + MinMarkerSize
			sizes[i] = MaxMarkerSize - s + MinMarkerSize
		}
	}
	return sizes
}

// magRange returns the min and max of the present magnitudes.
func magRange(mags []*float64) (lo, hi float64, found bool) {
	for _, m := range mags {
		if m == nil {
			continue
		}
		if !found {
			lo, hi, found = *m, *m, true
			continue
		}
		if *m < lo {
			lo = *m
		}
		if *m > hi {
			hi = *m
		}
	}
	return lo, hi, found
}

// Encode resolves names, buckets, labels and per-bucket marker sizes.
// Records outside every bucket are dropped; the count is returned as excluded.
// Output order is render order by class, catalog order within a class.
func Encode(records []Record) (stars []Star, excluded int) {
	byClass := make(map[Class][]Star, len(classes))
	for i := range records {
		r := &records[i]
		class, ok := ClassOf(r.Spect)
		if !ok {
			excluded++
			continue
		}
		name := ResolveName(r)
		byClass[class] = append(byClass[class], Star{
			Record: *r,
			Name:   name,
			Class:  class,
			Label:  Label(name, r.AbsMag),
		})
	}

	stars = make([]Star, 0, len(records)-excluded)
	for _, class := range classes {
		bucket := byClass[class]
		if len(bucket) == 0 {
			continue
		}
		mags := make([]*float64, len(bucket))
		for i := range bucket {
			mags[i] = bucket[i].AbsMag
		}
		for i, size := range MarkerSizes(mags) {
			bucket[i].Size = size
		}
		stars = append(stars, bucket...)
	}
	return stars, excluded
}

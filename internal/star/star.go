package star

// Record is one row of the HYG catalog as read from the database.
// Nil pointers mark NULL columns.
type Record struct {
	// X, Y, Z are cartesian coordinates in light years, Sol at the origin
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	// IAUName is the IAU proper name (e.g. "Sirius")
	IAUName *string `json:"iauname,omitempty"`

	// AltName is an alternate common name
	AltName *string `json:"altname,omitempty"`

	// BF is the Bayer/Flamsteed designation (e.g. "9Alp CMa")
	BF *string `json:"bf,omitempty"`

	// GL is the Gliese catalog id (e.g. "Gl 244A")
	GL *string `json:"gl,omitempty"`

	// AbsMag is the absolute visual magnitude. Lower is brighter.
	AbsMag *float64 `json:"absmag"`

	// Dist is the distance from Sol in light years
	Dist float64 `json:"dist"`

	// Spect is the spectral type string (e.g. "A1V"). NULL is read as "".
	Spect string `json:"spect"`
}

// Star is a Record with its derived display attributes.
type Star struct {
	Record

	// Name is the first present name field, or "" if none
	Name string `json:"name"`

	// Class is the spectral bucket the star was assigned to
	Class Class `json:"class"`

	// Size is the marker size, always finite
	Size float64 `json:"size"`

	// Label is Name for bright stars, "" otherwise
	Label string `json:"label"`
}

// Float returns a pointer to v. Convenient for building records in code.
func Float(v float64) *float64 {
	return &v
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

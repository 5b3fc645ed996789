package star

// Class is a spectral class bucket letter.
type Class string

const (
	ClassO Class = "O"
	ClassB Class = "B"
	ClassA Class = "A"
	ClassF Class = "F"
	ClassG Class = "G"
	ClassK Class = "K"
	ClassM Class = "M"
)

// classes is the fixed render order, hottest to coolest.
var classes = [...]Class{ClassO, ClassB, ClassA, ClassF, ClassG, ClassK, ClassM}

// colors maps each class to its display colour (approximate blackbody tint).
var colors = map[Class]string{
	ClassO: "rgb(156, 176, 255)",
	ClassB: "rgb(162, 185, 255)",
	ClassA: "rgb(248, 247, 255)",
	ClassF: "rgb(255, 243, 236)",
	ClassG: "rgb(255, 227, 180)",
	ClassK: "rgb(255, 190, 111)",
	ClassM: "rgb(255, 103, 15)",
}

// Classes returns the spectral classes in render order.
// The result is a copy; callers may modify it freely.
func Classes() []Class {
	out := make([]Class, len(classes))
	copy(out, classes[:])
	return out
}

// Color returns the display colour for c, or "" if c is not a known class.
func (c Class) Color() string {
	return colors[c]
}

// ParseClass validates a class letter, as typed on the command line.
func ParseClass(s string) (Class, bool) {
	c := Class(s)
	_, ok := colors[c]
	return c, ok
}

// ClassOf returns the bucket for a spectral type string by its first character.
// Empty or unrecognised types (white dwarfs "D...", carbon stars "C...", "k" ...) belong to no bucket.
func ClassOf(spect string) (Class, bool) {
	if spect == "" {
		return "", false
	}
	return ParseClass(spect[:1])
}

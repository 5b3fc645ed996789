package scene

import (
	"encoding/json"
	"fmt"

	"github.com/hpungsan/starmap/internal/star"
)

// Styling shared by the three spatial axes and the canvas.
const (
	AxisBackground = "black"
	AxisGrid       = "grey"
	Canvas         = "black"
	FontColor      = "#d8d8d8"

	markerMode   = "markers+text"
	textPosition = "top center"
	traceType    = "scatter3d"
)

// Marker holds per-point sizes and the series colour.
type Marker struct {
	Size  []float64 `json:"size"`
	Color string    `json:"color"`
}

// Series is one plotly scatter3d trace holding a single spectral class.
type Series struct {
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	Mode         string    `json:"mode"`
	X            []float64 `json:"x"`
	Y            []float64 `json:"y"`
	Z            []float64 `json:"z"`
	Text         []string  `json:"text"`
	TextPosition string    `json:"textposition"`
	Marker       Marker    `json:"marker"`

	// Class is the spectral bucket this series renders
	Class star.Class `json:"-"`
}

// Len returns the number of points in the series.
func (s *Series) Len() int {
	return len(s.X)
}

// Title is a plotly title object.
type Title struct {
	Text string `json:"text"`
}

// Axis is the style of one spatial axis.
type Axis struct {
	Title           Title  `json:"title"`
	BackgroundColor string `json:"backgroundcolor"`
	GridColor       string `json:"gridcolor"`
	ShowBackground  bool   `json:"showbackground"`
}

// Space groups the three spatial axes (plotly's layout.scene).
type Space struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

// Font is a plotly font.
type Font struct {
	Color string `json:"color"`
}

// Layout is the figure layout.
type Layout struct {
	Title        Title  `json:"title"`
	Scene        Space  `json:"scene"`
	PlotBGColor  string `json:"plot_bgcolor"`
	PaperBGColor string `json:"paper_bgcolor"`
	Font         Font   `json:"font"`
}

// Scene is an assembled star map ready for serialization.
type Scene struct {
	Series []Series
	Layout Layout
}

// Options tune scene assembly.
type Options struct {
	// Title is the figure title. Empty means a title derived from MaxDistance.
	Title string

	// MaxDistance is the catalog cutoff, used in the default title.
	MaxDistance float64
}

// Build groups encoded stars by class into series in palette order.
// Classes with no stars produce no series.
func Build(stars []star.Star, opts Options) *Scene {
	byClass := make(map[star.Class]*Series)
	for i := range stars {
		st := &stars[i]
		s, ok := byClass[st.Class]
		if !ok {
			s = newSeries(st.Class)
			byClass[st.Class] = s
		}
		s.X = append(s.X, st.X)
		s.Y = append(s.Y, st.Y)
		s.Z = append(s.Z, st.Z)
		s.Text = append(s.Text, st.Label)
		s.Marker.Size = append(s.Marker.Size, st.Size)
	}

	sc := &Scene{Layout: newLayout(opts)}
	for _, class := range star.Classes() {
		if s, ok := byClass[class]; ok {
			sc.Series = append(sc.Series, *s)
		}
	}
	return sc
}

func newSeries(class star.Class) *Series {
	return &Series{
		Type:         traceType,
		Name:         string(class),
		Mode:         markerMode,
		TextPosition: textPosition,
		Marker:       Marker{Color: class.Color()},
		Class:        class,
	}
}

func newLayout(opts Options) Layout {
	title := opts.Title
	if title == "" {
		title = DefaultTitle(opts.MaxDistance)
	}
	return Layout{
		Title: Title{Text: title},
		Scene: Space{
			XAxis: newAxis("X (light years)"),
			YAxis: newAxis("Y (light years)"),
			ZAxis: newAxis("Z (light years)"),
		},
		PlotBGColor:  Canvas,
		PaperBGColor: Canvas,
		Font:         Font{Color: FontColor},
	}
}

func newAxis(title string) Axis {
	return Axis{
		Title:           Title{Text: title},
		BackgroundColor: AxisBackground,
		GridColor:       AxisGrid,
		ShowBackground:  true,
	}
}

// DefaultTitle returns the figure title for a distance cutoff.
func DefaultTitle(maxDist float64) string {
	if maxDist <= 0 {
		return "Nearby stars"
	}
	return fmt.Sprintf("Stars within %g light years", maxDist)
}

// Points returns the total number of points across all series.
func (sc *Scene) Points() int {
	n := 0
	for i := range sc.Series {
		n += sc.Series[i].Len()
	}
	return n
}

// Counts returns the number of points per class.
func (sc *Scene) Counts() map[star.Class]int {
	counts := make(map[star.Class]int, len(sc.Series))
	for i := range sc.Series {
		counts[sc.Series[i].Class] = sc.Series[i].Len()
	}
	return counts
}

// figure is the plotly figure document.
type figure struct {
	Data   []Series `json:"data"`
	Layout Layout   `json:"layout"`
}

// MarshalJSON encodes the scene as a plotly figure: {"data": [...], "layout": {...}}.
func (sc *Scene) MarshalJSON() ([]byte, error) {
	data := sc.Series
	if data == nil {
		data = []Series{}
	}
	return json.Marshal(figure{Data: data, Layout: sc.Layout})
}

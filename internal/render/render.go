package render

import (
	"bytes"
	"crypto/rand"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/yuin/goldmark"

	"github.com/hpungsan/starmap/internal/errors"
	"github.com/hpungsan/starmap/internal/scene"
	"github.com/hpungsan/starmap/internal/star"
)

// PlotlyCDN is the plotly.js bundle referenced when no local copy is inlined.
const PlotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the template data for the star map page.
type PageData struct {
	Title        string
	Version      string
	RenderID     string
	GeneratedAt  time.Time
	Figure       template.JS
	Caption      template.HTML
	PlotlyInline template.JS
	PlotlyURL    string
}

// Options control how a scene is written.
type Options struct {
	// Path is the destination file. Parent directories are created.
	Path string

	// PlotlyJSPath, if set, is read and inlined so the page works offline.
	PlotlyJSPath string

	// Version is stamped into the page's generator meta tag.
	Version string

	// Excluded is the number of catalog rows that fell outside every class.
	Excluded int

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Result describes a written star map.
type Result struct {
	Path     string `json:"path"`
	RenderID string `json:"render_id"`
	Bytes    int    `json:"bytes"`
}

// Renderer holds the parsed page template.
type Renderer struct {
	page *template.Template
}

// NewRenderer parses the embedded page template.
func NewRenderer() *Renderer {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("failed to create template sub-FS: %v", err))
	}
	return newRenderer(sub)
}

func newRenderer(templates fs.FS) *Renderer {
	funcMap := template.FuncMap{
		"formatTime": formatTime,
	}
	page := template.Must(template.New("star_map.html").Funcs(funcMap).ParseFS(templates, "star_map.html"))
	return &Renderer{page: page}
}

// Render executes the page template for sc into a byte slice.
func (r *Renderer) Render(sc *scene.Scene, opts Options) ([]byte, string, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	generatedAt := now()

	renderID, err := newRenderID(generatedAt)
	if err != nil {
		return nil, "", errors.NewInternal(err)
	}

	figure, err := json.Marshal(sc)
	if err != nil {
		return nil, "", errors.NewInternal(fmt.Errorf("failed to encode figure: %w", err))
	}

	data := PageData{
		Title:       sc.Layout.Title.Text,
		Version:     opts.Version,
		RenderID:    renderID,
		GeneratedAt: generatedAt,
		Figure:      template.JS(figure),
		Caption:     renderMarkdown(Caption(sc, opts.Excluded)),
		PlotlyURL:   PlotlyCDN,
	}

	if opts.PlotlyJSPath != "" {
		js, err := os.ReadFile(opts.PlotlyJSPath)
		if err != nil {
			return nil, "", errors.NewConfig(fmt.Sprintf("cannot read plotly_js_path: %v", err))
		}
		data.PlotlyInline = template.JS(js)
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return nil, "", errors.NewInternal(fmt.Errorf("template execution error: %w", err))
	}
	return buf.Bytes(), renderID, nil
}

// Write renders sc and replaces the file at opts.Path with it.
// The page is written to a temp file in the same directory and renamed into place,
// so a failed write never leaves a truncated map behind.
func (r *Renderer) Write(sc *scene.Scene, opts Options) (*Result, error) {
	if err := ValidateOutputPath(opts.Path); err != nil {
		return nil, err
	}

	page, renderID, err := r.Render(sc, opts)
	if err != nil {
		return nil, err
	}

	if err := writeFileAtomic(opts.Path, page); err != nil {
		return nil, err
	}

	return &Result{
		Path:     opts.Path,
		RenderID: renderID,
		Bytes:    len(page),
	}, nil
}

// writeFileAtomic writes data to a temp file next to path and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewIO(path, fmt.Errorf("failed to create output directory: %w", err))
	}

	// Check if destination is a directory (rename would fail with a confusing error)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return errors.NewIO(path, fmt.Errorf("output path is a directory"))
	}

	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.NewIO(path, err)
	}
	tempPath := file.Name()

	// Clean up temp file on failure (existing file is preserved)
	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return errors.NewIO(path, err)
	}
	if err := file.Sync(); err != nil {
		return errors.NewIO(path, err)
	}
	if err := file.Close(); err != nil {
		return errors.NewIO(path, fmt.Errorf("failed to close output file: %w", err))
	}
	file = nil

	if err := os.Chmod(tempPath, 0644); err != nil {
		return errors.NewIO(path, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return errors.NewIO(path, fmt.Errorf("failed to finalize output: %w", err))
	}

	success = true
	return nil
}

// Caption returns the markdown legend shown under the plot.
func Caption(sc *scene.Scene, excluded int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%d stars** by spectral class:\n\n", sc.Points())

	counts := sc.Counts()
	for _, class := range star.Classes() {
		if n, ok := counts[class]; ok {
			fmt.Fprintf(&b, "- `%s` %d\n", class, n)
		}
	}
	if excluded > 0 {
		fmt.Fprintf(&b, "\n%d unclassified stars not shown. Labels mark stars brighter than absolute magnitude %g.\n",
			excluded, star.LabelMagnitude)
	} else {
		fmt.Fprintf(&b, "\nLabels mark stars brighter than absolute magnitude %g.\n", star.LabelMagnitude)
	}
	return b.String()
}

// renderMarkdown converts markdown text to HTML using goldmark.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// newRenderID returns a ULID stamped with t.
func newRenderID(t time.Time) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(t), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// formatTime formats a time as "2006-01-02 15:04 UTC".
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04") + " UTC"
}

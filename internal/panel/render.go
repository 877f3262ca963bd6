package panel

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

//go:embed templates/page.html.tmpl templates/instructions.md
var templateFS embed.FS

// Page is everything needed to render one panel response.
type Page struct {
	ViewID       string
	State        State
	Notification *Notification
}

// pageData is the template context derived from a Page.
type pageData struct {
	Page
	ConnectURL   string
	TokenURL     string
	Stats        []Stat
	Commands     []Command
	Instructions template.HTML
}

// Renderer renders panel pages. It is safe for concurrent use.
type Renderer struct {
	tmpl         *template.Template
	instructions template.HTML
}

// NewRenderer parses the page templates and prepares the usage instructions
// card. Icons are looked up through the given set at render time.
func NewRenderer(icons IconSet) (*Renderer, error) {
	if icons == nil {
		icons = DefaultIcons()
	}

	tmpl, err := template.New("panel").
		Funcs(template.FuncMap{"icon": icons.Glyph}).
		ParseFS(templateFS, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse panel templates: %w", err)
	}

	source, err := templateFS.ReadFile("templates/instructions.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read usage instructions: %w", err)
	}
	instructions, err := renderMarkdown(source)
	if err != nil {
		return nil, err
	}

	return &Renderer{tmpl: tmpl, instructions: instructions}, nil
}

// Render writes the page for p: the connect form while disconnected,
// the dashboard once connected.
func (r *Renderer) Render(w io.Writer, p Page) error {
	escaped := url.PathEscape(p.ViewID)
	data := pageData{
		Page:         p,
		ConnectURL:   "/views/" + escaped + "/connect",
		TokenURL:     "/views/" + escaped + "/token",
		Stats:        Stats(),
		Commands:     Commands(),
		Instructions: r.instructions,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return fmt.Errorf("failed to render panel page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// renderMarkdown converts markdown to HTML and strips anything outside the UGC policy.
func renderMarkdown(source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(source, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	// #nosec G203 -- sanitized by bluemonday
	return template.HTML(bluemonday.UGCPolicy().SanitizeBytes(buf.Bytes())), nil
}

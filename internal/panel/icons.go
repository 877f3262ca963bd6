package panel

import (
	"fmt"
	"html/template"
)

// IconSet resolves a symbolic icon name to inline markup at render time.
type IconSet interface {
	Glyph(name string, size int) template.HTML
}

// fallbackIcon is drawn for names the set does not know.
const fallbackIcon = `<circle cx="12" cy="12" r="9"/>`

// svgIcons is an IconSet backed by stroke-style 24x24 SVG fragments.
type svgIcons map[string]string

// DefaultIcons returns the icon set used by the panel page.
func DefaultIcons() IconSet {
	return svgIcons{
		"Bot":          `<rect x="4" y="8" width="16" height="12" rx="2"/><path d="M12 8V4H8"/><path d="M2 14h2"/><path d="M20 14h2"/><path d="M9 13v2"/><path d="M15 13v2"/>`,
		"Link":         `<path d="M10 13a5 5 0 0 0 7.5.5l3-3a5 5 0 0 0-7-7l-1.7 1.7"/><path d="M14 11a5 5 0 0 0-7.5-.5l-3 3a5 5 0 0 0 7 7l1.7-1.7"/>`,
		"Zap":          `<path d="M13 2 3 14h9l-1 8 10-12h-9l1-8z"/>`,
		"CheckCircle2": `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>`,
		"Image":        `<rect x="3" y="3" width="18" height="18" rx="2"/><circle cx="9" cy="9" r="2"/><path d="m21 15-3.1-3.1a2 2 0 0 0-2.8 0L6 21"/>`,
		"Users":        `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.9"/><path d="M16 3.1a4 4 0 0 1 0 7.8"/>`,
		"Clock":        `<circle cx="12" cy="12" r="10"/><path d="M12 6v6l4 2"/>`,
		"Terminal":     `<path d="m4 17 6-6-6-6"/><path d="M12 19h8"/>`,
		"Sparkles":     `<path d="M12 3 10 9l-6 2 6 2 2 6 2-6 6-2-6-2-2-6z"/><path d="M5 3v4"/><path d="M3 5h4"/>`,
		"ImagePlus":    `<path d="M21 12v7a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h7"/><path d="M16 5h6"/><path d="M19 2v6"/><circle cx="9" cy="9" r="2"/><path d="m21 15-3.1-3.1a2 2 0 0 0-2.8 0L6 21"/>`,
		"HelpCircle":   `<circle cx="12" cy="12" r="10"/><path d="M9.1 9a3 3 0 0 1 5.8 1c0 2-3 3-3 3"/><path d="M12 17h.01"/>`,
		"Info":         `<circle cx="12" cy="12" r="10"/><path d="M12 16v-4"/><path d="M12 8h.01"/>`,
	}
}

// Glyph returns an inline SVG element for name at the given pixel size.
func (s svgIcons) Glyph(name string, size int) template.HTML {
	body, ok := s[name]
	if !ok {
		body = fallbackIcon
	}
	// #nosec G203 -- icon bodies are compile-time constants, name is only used for lookup
	return template.HTML(fmt.Sprintf(
		`<svg class="icon" data-icon="%s" width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">%s</svg>`,
		template.HTMLEscapeString(name), size, size, body,
	))
}

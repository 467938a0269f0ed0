package button

import (
	"html"
	"html/template"
	"sort"
	"strings"
)

// Props describes one button render.
type Props struct {
	Config
	// Type defaults to "button".
	Type     string
	ID       string
	Name     string
	Value    string
	Disabled bool
	// Class is appended after the composed classes.
	Class string
	// Style is emitted verbatim as the style attribute.
	Style string
	// Attrs carries additional attributes (data-*, aria-*, form, ...).
	Attrs map[string]string
	// Children is HTML content; it is sanitised before rendering.
	Children string
}

// reservedAttrs are owned by Props fields and cannot be overridden via Attrs.
var reservedAttrs = map[string]struct{}{
	"class": {}, "type": {}, "disabled": {}, "id": {}, "name": {}, "value": {}, "style": {},
}

// Render produces the <button> markup for p.
func Render(p Props) template.HTML {
	var b strings.Builder

	kind := strings.TrimSpace(p.Type)
	if kind == "" {
		kind = "button"
	}

	b.WriteString(`<button type="`)
	b.WriteString(html.EscapeString(kind))
	b.WriteString(`" class="`)
	b.WriteString(html.EscapeString(Classes(p.Config, p.Class)))
	b.WriteString(`"`)
	writeAttr(&b, "id", p.ID)
	writeAttr(&b, "name", p.Name)
	writeAttr(&b, "value", p.Value)
	writeAttr(&b, "style", p.Style)
	writeAttr(&b, "data-variant", string(p.variant()))
	writeAttr(&b, "data-size", string(p.size()))

	// Keys that differ only by case collapse to one attribute; the
	// lexically first raw key wins.
	raw := make([]string, 0, len(p.Attrs))
	for name := range p.Attrs {
		raw = append(raw, name)
	}
	sort.Strings(raw)

	attrs := make(map[string]string, len(raw))
	names := make([]string, 0, len(raw))
	for _, name := range raw {
		clean := strings.ToLower(strings.TrimSpace(name))
		if clean == "" || !validAttrName(clean) {
			continue
		}
		if _, reserved := reservedAttrs[clean]; reserved {
			continue
		}
		if p.Disabled && clean == "aria-disabled" {
			continue
		}
		if _, seen := attrs[clean]; seen {
			continue
		}
		attrs[clean] = p.Attrs[name]
		names = append(names, clean)
	}
	sort.Strings(names)
	for _, name := range names {
		writeAttr(&b, name, attrs[name])
	}

	if p.Disabled {
		b.WriteString(` disabled aria-disabled="true"`)
	}
	b.WriteString(`>`)
	b.WriteString(SanitizeChildren(p.Children))
	b.WriteString(`</button>`)

	return template.HTML(b.String())
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(` `)
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteString(`"`)
}

func validAttrName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == ':':
		default:
			return false
		}
	}
	return !strings.HasPrefix(name, "on")
}

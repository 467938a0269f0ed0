package button

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	childrenPolicyOnce sync.Once
	childrenPolicy     *bluemonday.Policy
)

// SanitizeChildren strips scripts, event handlers and unknown markup from
// button content while keeping text, inline formatting and SVG icons.
func SanitizeChildren(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(childrenSanitizer().Sanitize(trimmed))
}

func childrenSanitizer() *bluemonday.Policy {
	childrenPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("span", "strong", "em", "b", "i", "small", "kbd")
		policy.AllowAttrs("class", "aria-hidden").OnElements("span", "i")

		policy.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "title")
		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")
		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}
		childrenPolicy = policy
	})
	return childrenPolicy
}

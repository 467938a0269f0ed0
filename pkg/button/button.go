// Package button renders the styled button primitive: a pure function from
// variant, size, disabled flag and children to an HTML <button>.
package button

import "strings"

// Variant selects the colour treatment.
type Variant string

const (
	VariantDefault Variant = "default"
	VariantOutline Variant = "outline"
	VariantGhost   Variant = "ghost"
	VariantLink    Variant = "link"
)

// Size selects the box dimensions.
type Size string

const (
	SizeDefault Size = "default"
	SizeSmall   Size = "sm"
	SizeLarge   Size = "lg"
	SizeIcon    Size = "icon"
)

// Variants lists every supported variant.
func Variants() []Variant {
	return []Variant{VariantDefault, VariantOutline, VariantGhost, VariantLink}
}

// Sizes lists every supported size.
func Sizes() []Size {
	return []Size{SizeDefault, SizeSmall, SizeLarge, SizeIcon}
}

// BaseClasses apply to every button.
const BaseClasses = "inline-flex items-center justify-center rounded-md font-medium transition-colors " +
	"focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2 " +
	"disabled:opacity-50 disabled:pointer-events-none"

var variantClasses = map[Variant]string{
	VariantDefault: "bg-blue-500 text-white hover:bg-blue-600",
	VariantOutline: "border border-gray-300 dark:border-gray-700 bg-transparent hover:bg-gray-100 dark:hover:bg-gray-800",
	VariantGhost:   "hover:bg-gray-100 dark:hover:bg-gray-800",
	VariantLink:    "underline-offset-4 hover:underline text-blue-500 dark:text-blue-400",
}

var sizeClasses = map[Size]string{
	SizeDefault: "h-10 py-2 px-4",
	SizeSmall:   "h-9 px-3 rounded-md",
	SizeLarge:   "h-11 px-8 rounded-md",
	SizeIcon:    "h-10 w-10",
}

// Config is the immutable per-render configuration. Empty values select the
// defaults; values outside the enumerations are a caller error and simply
// contribute no classes.
type Config struct {
	Variant Variant
	Size    Size
}

func (c Config) variant() Variant {
	if c.Variant == "" {
		return VariantDefault
	}
	return c.Variant
}

func (c Config) size() Size {
	if c.Size == "" {
		return SizeDefault
	}
	return c.Size
}

// Classes composes base, variant, size and the caller's extra classes.
func Classes(cfg Config, extra ...string) string {
	parts := make([]string, 0, 3+len(extra))
	parts = append(parts, BaseClasses, variantClasses[cfg.variant()], sizeClasses[cfg.size()])
	parts = append(parts, extra...)
	return Join(parts...)
}

// Join concatenates class lists, dropping blanks and repeated tokens while
// keeping first-seen order.
func Join(lists ...string) string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0, 16)
	for _, list := range lists {
		for _, token := range strings.Fields(list) {
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, " ")
}

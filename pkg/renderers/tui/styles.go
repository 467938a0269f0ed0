package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-confform/pkg/button"
	"github.com/goliatone/go-confform/pkg/toast"
)

var (
	colorPrimary      = lipgloss.Color("#3b82f6")
	colorPrimaryHover = lipgloss.Color("#2563eb")
	colorBorder       = lipgloss.Color("#d1d5db")
	colorText         = lipgloss.Color("#374151")
	colorDanger       = lipgloss.Color("#ef4444")
	colorDangerBg     = lipgloss.Color("#fef2f2")
	colorSuccess      = lipgloss.Color("#16a34a")
	colorWhite        = lipgloss.Color("#ffffff")
)

// Styles groups the lipgloss styles used by a session.
type Styles struct {
	Title   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Hint    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(colorText).MarginBottom(1),
		Error: lipgloss.NewStyle().
			Foreground(colorDanger).
			Background(colorDangerBg).
			Padding(0, 1),
		Success: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
		Hint:    lipgloss.NewStyle().Faint(true),
	}
}

// Toast renders a toast line with the style of its kind.
func (s Styles) Toast(t toast.Toast) string {
	if t.Kind == toast.KindError {
		return s.Failure.Render("✗ " + t.Message)
	}
	return s.Success.Render("✓ " + t.Message)
}

type styleApplier func(lipgloss.Style) lipgloss.Style

// ButtonStyle is the terminal rendition of the button matrix. Unknown
// variants and sizes contribute nothing, like their class fragments.
func ButtonStyle(cfg button.Config, disabled bool) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, apply := range variantAppliers(cfg.Variant) {
		style = apply(style)
	}
	for _, apply := range sizeAppliers(cfg.Size) {
		style = apply(style)
	}
	if disabled {
		style = style.Faint(true)
	}
	return style
}

// RenderButton renders label with ButtonStyle.
func RenderButton(label string, cfg button.Config, disabled bool) string {
	return ButtonStyle(cfg, disabled).Render(label)
}

func variantAppliers(v button.Variant) []styleApplier {
	if v == "" {
		v = button.VariantDefault
	}
	switch v {
	case button.VariantDefault:
		return []styleApplier{
			func(s lipgloss.Style) lipgloss.Style { return s.Background(colorPrimary) },
			func(s lipgloss.Style) lipgloss.Style { return s.Foreground(colorWhite) },
			func(s lipgloss.Style) lipgloss.Style { return s.Bold(true) },
		}
	case button.VariantOutline:
		return []styleApplier{
			func(s lipgloss.Style) lipgloss.Style { return s.Border(lipgloss.RoundedBorder()) },
			func(s lipgloss.Style) lipgloss.Style { return s.BorderForeground(colorBorder) },
			func(s lipgloss.Style) lipgloss.Style { return s.Foreground(colorText) },
		}
	case button.VariantGhost:
		return []styleApplier{
			func(s lipgloss.Style) lipgloss.Style { return s.Foreground(colorText) },
		}
	case button.VariantLink:
		return []styleApplier{
			func(s lipgloss.Style) lipgloss.Style { return s.Foreground(colorPrimaryHover) },
			func(s lipgloss.Style) lipgloss.Style { return s.Underline(true) },
		}
	default:
		return nil
	}
}

func sizeAppliers(size button.Size) []styleApplier {
	if size == "" {
		size = button.SizeDefault
	}
	switch size {
	case button.SizeDefault:
		return []styleApplier{
			func(s lipgloss.Style) lipgloss.Style { return s.Padding(0, 2) },
		}
	case button.SizeSmall:
		return []styleApplier{
			func(s lipgloss.Style) lipgloss.Style { return s.Padding(0, 1) },
		}
	case button.SizeLarge:
		return []styleApplier{
			func(s lipgloss.Style) lipgloss.Style { return s.Padding(1, 4) },
		}
	case button.SizeIcon:
		return []styleApplier{
			func(s lipgloss.Style) lipgloss.Style { return s.Width(3) },
			func(s lipgloss.Style) lipgloss.Style { return s.Align(lipgloss.Center) },
		}
	default:
		return nil
	}
}

package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/goliatone/go-confform/pkg/button"
	"github.com/goliatone/go-confform/pkg/toast"
)

func TestButtonStyle_MatrixIsDistinct(t *testing.T) {
	seen := make(map[string]string)
	for _, v := range button.Variants() {
		for _, s := range button.Sizes() {
			style := ButtonStyle(button.Config{Variant: v, Size: s}, false)
			key := fmt.Sprintf("%v|%v|%v|%d|%d|%d",
				style.GetBackground(),
				style.GetUnderline(),
				style.GetBorderLeft(),
				style.GetPaddingTop(),
				style.GetPaddingLeft(),
				style.GetWidth(),
			)
			combo := string(v) + "/" + string(s)
			if other, ok := seen[key]; ok {
				t.Fatalf("%s renders the same as %s", combo, other)
			}
			seen[key] = combo
		}
	}
	if len(seen) != 16 {
		t.Fatalf("expected 16 distinct styles, got %d", len(seen))
	}
}

func TestButtonStyle_DisabledIsFaint(t *testing.T) {
	for _, v := range button.Variants() {
		for _, s := range button.Sizes() {
			cfg := button.Config{Variant: v, Size: s}
			if !ButtonStyle(cfg, true).GetFaint() {
				t.Fatalf("%s/%s: expected faint when disabled", v, s)
			}
			if ButtonStyle(cfg, false).GetFaint() {
				t.Fatalf("%s/%s: expected normal when enabled", v, s)
			}
		}
	}
}

func TestButtonStyle_DefaultsAndUnknown(t *testing.T) {
	zero := ButtonStyle(button.Config{}, false)
	explicit := ButtonStyle(button.Config{Variant: button.VariantDefault, Size: button.SizeDefault}, false)
	if zero.GetPaddingLeft() != explicit.GetPaddingLeft() || zero.GetBold() != explicit.GetBold() {
		t.Fatalf("expected zero config to match default variant and size")
	}

	unknown := ButtonStyle(button.Config{Variant: "neon", Size: "xl"}, false)
	if unknown.GetPaddingLeft() != 0 || unknown.GetBold() || unknown.GetUnderline() {
		t.Fatalf("expected unknown variant and size to contribute nothing")
	}
}

func TestRenderButton_KeepsLabel(t *testing.T) {
	out := RenderButton("Create Conference", button.Config{}, false)
	if !strings.Contains(out, "Create Conference") {
		t.Fatalf("expected label in %q", out)
	}
}

func TestStyles_Toast(t *testing.T) {
	styles := DefaultStyles()
	if got := styles.Toast(toast.Success("ok")); !strings.Contains(got, "✓ ok") {
		t.Fatalf("unexpected success toast %q", got)
	}
	if got := styles.Toast(toast.Error("bad")); !strings.Contains(got, "✗ bad") {
		t.Fatalf("unexpected error toast %q", got)
	}
}

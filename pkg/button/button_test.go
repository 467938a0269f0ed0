package button

import (
	"strings"
	"testing"
)

func TestClasses_MatrixIsDistinctAndDeterministic(t *testing.T) {
	seen := make(map[string]Config)
	for _, variant := range Variants() {
		for _, size := range Sizes() {
			cfg := Config{Variant: variant, Size: size}
			first := Classes(cfg)
			if second := Classes(cfg); first != second {
				t.Fatalf("classes for %+v not deterministic: %q vs %q", cfg, first, second)
			}
			if other, dup := seen[first]; dup {
				t.Fatalf("classes for %+v collide with %+v: %q", cfg, other, first)
			}
			seen[first] = cfg
			if !strings.HasPrefix(first, "inline-flex items-center") {
				t.Fatalf("base classes missing for %+v: %q", cfg, first)
			}
		}
	}
	if len(seen) != 16 {
		t.Fatalf("expected 16 compositions, got %d", len(seen))
	}
}

func TestClasses_DefaultsAndOverride(t *testing.T) {
	got := Classes(Config{}, "w-full p-3 rounded-md")
	want := BaseClasses + " bg-blue-500 text-white hover:bg-blue-600 h-10 py-2 px-4 w-full p-3"
	if got != want {
		t.Fatalf("unexpected classes\nwant: %q\n got: %q", want, got)
	}
}

func TestClasses_UnknownValuesContributeNothing(t *testing.T) {
	got := Classes(Config{Variant: "neon", Size: "xxl"})
	if got != Join(BaseClasses) {
		t.Fatalf("unknown variant/size should only keep base classes, got %q", got)
	}
}

func TestRender_DisabledAlwaysDisables(t *testing.T) {
	for _, variant := range Variants() {
		for _, size := range Sizes() {
			out := string(Render(Props{
				Config:   Config{Variant: variant, Size: size},
				Disabled: true,
				Attrs:    map[string]string{"aria-disabled": "false"},
				Children: "Go",
			}))
			if !strings.Contains(out, ` disabled aria-disabled="true">`) {
				t.Fatalf("%s/%s: expected disabled attributes, got %s", variant, size, out)
			}
			if strings.Contains(out, `aria-disabled="false"`) {
				t.Fatalf("%s/%s: caller attrs must not re-enable the button: %s", variant, size, out)
			}
		}
	}
}

func TestRender_Markup(t *testing.T) {
	out := string(Render(Props{
		Config:   Config{Variant: VariantOutline, Size: SizeSmall},
		Type:     "submit",
		Name:     "action",
		Value:    `save "draft"`,
		Style:    "min-width: 8rem",
		Attrs:    map[string]string{"data-testid": "save", "onclick": "alert(1)", "class": "ignored"},
		Children: `Save <script>alert(1)</script><strong>now</strong>`,
	}))

	for _, want := range []string{
		`<button type="submit" class="`,
		`name="action"`,
		`value="save &#34;draft&#34;"`,
		`style="min-width: 8rem"`,
		`data-variant="outline"`,
		`data-size="sm"`,
		`data-testid="save"`,
		`<strong>now</strong></button>`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %s", want, out)
		}
	}
	for _, banned := range []string{"<script", "onclick", "ignored", "disabled aria-disabled"} {
		if strings.Contains(out, banned) {
			t.Fatalf("unexpected %q in %s", banned, out)
		}
	}
}

func TestRender_AttrsCollapseCaseVariants(t *testing.T) {
	out := string(Render(Props{
		Attrs: map[string]string{
			"Data-X":      "upper",
			"data-x":      "lower",
			" DATA-X ":    "padded",
			"aria-label":  "Save",
			"ARIA-LABEL":  "shout",
			"data-testid": "save",
		},
		Children: "Go",
	}))

	if got := strings.Count(out, ` data-x=`); got != 1 {
		t.Fatalf("expected one data-x attribute, got %d in %s", got, out)
	}
	if got := strings.Count(out, ` aria-label=`); got != 1 {
		t.Fatalf("expected one aria-label attribute, got %d in %s", got, out)
	}
	if !strings.Contains(out, ` aria-label="shout" data-testid="save" data-x="padded">`) {
		t.Fatalf("unexpected attribute order or values: %s", out)
	}
}

func TestSanitizeChildren_KeepsIcons(t *testing.T) {
	out := SanitizeChildren(`<svg class="h-4 w-4" onload="x()"><path d="M0 0h24v24H0z"/></svg>`)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, `d="M0 0h24v24H0z"`) {
		t.Fatalf("svg icon stripped: %s", out)
	}
	if strings.Contains(out, "onload") {
		t.Fatalf("event handler kept: %s", out)
	}
}

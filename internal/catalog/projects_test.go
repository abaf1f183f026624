package catalog

import "testing"

func TestProjectTemplateStyles(t *testing.T) {
	counts := map[StyleTag]int{}
	for _, tpl := range ProjectTemplates {
		switch tpl.Style {
		case StyleFemale, StyleMale, StyleBoth:
			counts[tpl.Style]++
		default:
			t.Fatalf("template %q carries unknown style %q", tpl.Name, tpl.Style)
		}
	}

	for _, style := range []StyleTag{StyleFemale, StyleMale, StyleBoth} {
		if counts[style] == 0 {
			t.Fatalf("no templates tagged %q", style)
		}
		if got := len(TemplatesByStyle(style)); got != counts[style] {
			t.Fatalf("TemplatesByStyle(%q) = %d, want %d", style, got, counts[style])
		}
	}
}

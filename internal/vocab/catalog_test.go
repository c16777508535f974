package vocab

import (
	"errors"
	"testing"
	"testing/fstest"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEmbeddedCatalogLoadsEveryCategory(t *testing.T) {
	cat, err := Load(NewFSSource(Embedded()), nil)
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if got := len(cat.Loaded()); got != len(Categories) {
		t.Errorf("loaded %d categories, want %d", got, len(Categories))
	}
	for _, c := range Categories {
		for _, w := range cat.Words(c) {
			if w.Category != c {
				t.Fatalf("word %q tagged %q, want %q", w.German, w.Category, c)
			}
			if w.German == "" || w.English == "" {
				t.Fatalf("word in %s missing text: %+v", c, w)
			}
		}
	}
}

func TestMissingCategoryIsOmitted(t *testing.T) {
	fsys := fstest.MapFS{
		"colors.json": {Data: []byte(`[{"de":"rot","en":"red"},{"de":"blau","en":"blue"}]`)},
	}
	cat, err := Load(NewFSSource(fsys), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cat.Loaded(); len(got) != 1 || got[0] != "colors" {
		t.Errorf("Loaded() = %v, want [colors]", got)
	}
	if n := cat.Count("verbs"); n != 0 {
		t.Errorf("verbs count = %d, want 0", n)
	}
}

func TestMalformedCategoryIsOmitted(t *testing.T) {
	fsys := fstest.MapFS{
		"colors.json": {Data: []byte(`[{"de":"rot","en":"red"}]`)},
		"days.json":   {Data: []byte(`[{"de":"Montag"}]`)},
		"verbs.json":  {Data: []byte(`not json`)},
	}
	cat, err := Load(NewFSSource(fsys), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cat.Count("days") != 0 || cat.Count("verbs") != 0 {
		t.Errorf("expected invalid categories to be skipped")
	}
	if cat.Count("colors") != 1 {
		t.Errorf("colors count = %d, want 1", cat.Count("colors"))
	}
}

func TestEmptyCatalogIsFatal(t *testing.T) {
	_, err := Load(NewFSSource(fstest.MapFS{}), nil)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestAllConcatenatesInMenuOrder(t *testing.T) {
	cat := NewCatalog(map[Category][]Word{
		"colors":  {{German: "rot", English: "red"}},
		"numbers": {{German: "eins", English: "one"}, {German: "zwei", English: "two"}},
	})
	all := cat.Words(All)
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
	// numbers precedes colors in the menu.
	if all[0].Category != "numbers" || all[2].Category != "colors" {
		t.Errorf("unexpected order: %+v", all)
	}
}

func TestLayeredPrefersFirstNonEmpty(t *testing.T) {
	override := NewFSSource(fstest.MapFS{
		"colors.json": {Data: []byte(`[{"de":"türkis","en":"turquoise"}]`)},
	})
	src := NewLayered(nil, override, NewFSSource(Embedded()))

	colors, err := src.Category("colors")
	if err != nil {
		t.Fatalf("colors: %v", err)
	}
	if len(colors) != 1 || colors[0].German != "türkis" {
		t.Errorf("colors = %+v, want override list", colors)
	}

	days, err := src.Category("days")
	if err != nil {
		t.Fatalf("days: %v", err)
	}
	if len(days) == 0 {
		t.Error("expected days to fall back to the built-in list")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"1", "numbers", false},
		{"11", "pronouns", false},
		{"Verbs", "verbs", false},
		{"a", All, false},
		{"all", All, false},
		{"12", "", true},
		{"x", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDetailsSkipsEmptyFields(t *testing.T) {
	w := Word{German: "groß", English: "big", Opposite: "klein"}
	d := w.Details()
	if len(d) != 1 || d[0].Label != "Opposite" || d[0].Value != "klein" {
		t.Errorf("Details() = %+v", d)
	}
}

func TestLayeredLogsShadowedOverrideError(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	broken := NewFSSource(fstest.MapFS{
		"colors.json": {Data: []byte(`{not json`)},
	})
	src := NewLayered(zap.New(core), broken, NewFSSource(Embedded()))

	colors, err := src.Category("colors")
	if err != nil {
		t.Fatalf("colors: %v", err)
	}
	if len(colors) == 0 {
		t.Fatal("expected the built-in colors")
	}
	entries := logs.FilterMessage("ignoring unreadable category override").All()
	if len(entries) != 1 {
		t.Fatalf("warnings = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["category"]; got != "colors" {
		t.Errorf("category field = %v", got)
	}

	if _, err := NewLayered(nil, broken).Category("colors"); err == nil {
		t.Error("with no fallback the override error should be returned")
	}
}

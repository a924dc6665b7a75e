package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  map[string]string
	}{
		{
			name:  "nested",
			input: map[string]any{"colors": map[string]any{"primary": map[string]any{"500": "#112233"}}},
			want:  map[string]string{"colors-primary-500": "#112233"},
		},
		{
			name:  "flat",
			input: map[string]any{"brand": "#1a1a1a", "accent": "#f5f5f5"},
			want:  map[string]string{"brand": "#1a1a1a", "accent": "#f5f5f5"},
		},
		{
			name: "mixed depth",
			input: map[string]any{
				"white": "#fff",
				"gray":  map[string]string{"100": "#f7fafc", "900": "#1a202c"},
			},
			want: map[string]string{"white": "#fff", "gray-100": "#f7fafc", "gray-900": "#1a202c"},
		},
		{
			name:  "empty",
			input: map[string]any{},
			want:  map[string]string{},
		},
		{
			name:  "empty branch",
			input: map[string]any{"primary": map[string]any{}},
			want:  map[string]string{},
		},
		{
			name:  "sequence",
			input: map[string]any{"ramp": []any{"#000", "#fff"}},
			want:  map[string]string{"ramp-0": "#000", "ramp-1": "#fff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(FromMap(tt.input)).Map()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	tree := FromMap(map[string]any{
		"blue": map[string]any{"light": "#85d7ff", "DEFAULT": "#1fb6ff"},
		"pink": "#ff49db",
	})

	first := Extract(tree)
	second := Extract(tree)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Extract() not idempotent (-first +second):\n%s", diff)
	}
}

func TestExtractNil(t *testing.T) {
	if got := Extract(nil); len(got) != 0 {
		t.Errorf("Extract(nil) = %v, want empty", got)
	}
	if got := Extract(Leaf("#fff")); len(got) != 0 {
		t.Errorf("Extract(leaf) = %v, want empty", got)
	}
}

func TestDecodePreservesOrder(t *testing.T) {
	data := []byte(`
zeta: "#000"
alpha:
  "900": "#111"
  "100": "#eee"
mid: white
`)

	tree, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := Entries{
		{Name: "zeta", Raw: "#000"},
		{Name: "alpha-900", Raw: "#111"},
		{Name: "alpha-100", Raw: "#eee"},
		{Name: "mid", Raw: "white"},
	}
	if diff := cmp.Diff(want, Extract(tree)); diff != "" {
		t.Errorf("Extract(Decode()) mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSON(t *testing.T) {
	tree, err := Decode([]byte(`{"brand": "#1a1a1a", "ui": {"bg": "rgb(1, 2, 3)", "level": 5}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := Entries{
		{Name: "brand", Raw: "#1a1a1a"},
		{Name: "ui-bg", Raw: "rgb(1, 2, 3)"},
		{Name: "ui-level", Raw: "5"},
	}
	if diff := cmp.Diff(want, Extract(tree)); diff != "" {
		t.Errorf("Extract(Decode()) mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMergeKeys(t *testing.T) {
	data := []byte(`
base: &base
  fg: "#fff"
theme:
  <<: *base
  bg: "#000"
`)
	tree, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	sub, ok := tree.Lookup("theme")
	if !ok {
		t.Fatal("Lookup(theme) not found")
	}
	want := Entries{{Name: "fg", Raw: "#fff"}, {Name: "bg", Raw: "#000"}}
	if diff := cmp.Diff(want, Extract(sub)); diff != "" {
		t.Errorf("merge keys mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeMergeKeyOverrides(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Entries
		wantRed string
	}{
		{
			name:    "ExplicitAfterMerge",
			data:    "base: &b\n  red: '#000'\n  blue: '#00f'\ncolors:\n  <<: *b\n  red: '#fff'\n",
			want:    Entries{{Name: "blue", Raw: "#00f"}, {Name: "red", Raw: "#fff"}},
			wantRed: "#fff",
		},
		{
			name:    "ExplicitBeforeMerge",
			data:    "base: &b\n  red: '#000'\ncolors:\n  red: '#fff'\n  <<: *b\n",
			want:    Entries{{Name: "red", Raw: "#fff"}},
			wantRed: "#fff",
		},
		{
			name:    "FirstSourceWins",
			data:    "a: &a\n  red: '#111'\nb: &b\n  red: '#222'\n  green: '#0f0'\ncolors:\n  <<: [*a, *b]\n",
			want:    Entries{{Name: "red", Raw: "#111"}, {Name: "green", Raw: "#0f0"}},
			wantRed: "#111",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Decode([]byte(tt.data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			colors, ok := tree.Lookup("colors")
			if !ok {
				t.Fatal("Lookup(colors) not found")
			}
			if diff := cmp.Diff(tt.want, Extract(colors)); diff != "" {
				t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
			}
			if red, _ := colors.Lookup("red"); red.Value() != tt.wantRed {
				t.Errorf("Lookup(red) = %q, want %q", red.Value(), tt.wantRed)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode([]byte("a: [unclosed")); err == nil {
		t.Error("Decode() expected error for malformed YAML")
	}
}

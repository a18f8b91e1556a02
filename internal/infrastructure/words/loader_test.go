package words

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoader_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "dedupe preserves first-seen order",
			in:   []string{"A", "a", "b", "A"},
			want: []string{"a", "b"},
		},
		{
			name: "trim and lowercase",
			in:   []string{"  NeoWare ", "neoware"},
			want: []string{"neoware"},
		},
		{
			name: "idempotent",
			in:   []string{"a", "b"},
			want: []string{"a", "b"},
		},
		{
			name: "empty labels dropped",
			in:   []string{"", "  ", "x"},
			want: []string{"x"},
		},
		{
			name: "non-ascii folded to punycode",
			in:   []string{"münchen"},
			want: []string{"xn--mnchen-3ya"},
		},
	}

	l := NewLoader(zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Normalize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoader_LoadStructured(t *testing.T) {
	l := NewLoader(zerolog.Nop())

	t.Run("cartesian expansion", func(t *testing.T) {
		path := writeTemp(t, "words.json", `{"prefixes":["neo"],"roots":["byte","ware"]}`)
		got, err := l.LoadStructured(path)
		if err != nil {
			t.Fatalf("LoadStructured() error = %v", err)
		}
		if want := []string{"neobyte", "neoware"}; !reflect.DeepEqual(got, want) {
			t.Errorf("LoadStructured() = %v, want %v", got, want)
		}
	})

	t.Run("flat words union combinations", func(t *testing.T) {
		path := writeTemp(t, "words.json", `{"words":["Solo","neobyte"],"prefixes":["neo"],"roots":["byte"]}`)
		got, err := l.LoadStructured(path)
		if err != nil {
			t.Fatalf("LoadStructured() error = %v", err)
		}
		// neobyte aparece en ambas fuentes; se deduplica.
		if want := []string{"solo", "neobyte"}; !reflect.DeepEqual(got, want) {
			t.Errorf("LoadStructured() = %v, want %v", got, want)
		}
	})

	t.Run("missing keys default empty", func(t *testing.T) {
		path := writeTemp(t, "words.json", `{}`)
		got, err := l.LoadStructured(path)
		if err != nil {
			t.Fatalf("LoadStructured() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("LoadStructured() = %v, want empty", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := l.LoadStructured(filepath.Join(t.TempDir(), "nope.json"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("error = %v, want fs.ErrNotExist", err)
		}
	})
}

func TestLoader_LoadPlain(t *testing.T) {
	l := NewLoader(zerolog.Nop())

	t.Run("blank lines skipped, labels normalized", func(t *testing.T) {
		path := writeTemp(t, "words.txt", "Alpha\n\n  beta  \nALPHA\n")
		got, err := l.LoadPlain(path)
		if err != nil {
			t.Fatalf("LoadPlain() error = %v", err)
		}
		if want := []string{"alpha", "beta"}; !reflect.DeepEqual(got, want) {
			t.Errorf("LoadPlain() = %v, want %v", got, want)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := l.LoadPlain(filepath.Join(t.TempDir(), "nope.txt"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("error = %v, want fs.ErrNotExist", err)
		}
	})
}

package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"domaincheck/internal/core/domain"
)

func TestSaver_SaveResults(t *testing.T) {
	dir := t.TempDir()
	s := NewSaver(zerolog.Nop())
	s.now = func() time.Time {
		return time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	}

	tally := domain.RunTally{
		Available: []string{"neoware.com"},
		Taken:     []string{"google.com"},
		Unknown:   []string{"slow.io", "nowhere.zz"},
		Checked:   4,
	}

	path, err := s.SaveResults(tally, dir)
	if err != nil {
		t.Fatalf("SaveResults() error = %v", err)
	}

	if want := filepath.Join(dir, "domain_results_20260830_150405.csv"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "domain,status\n" +
		"neoware.com,available\n" +
		"google.com,taken\n" +
		"slow.io,unknown\n" +
		"nowhere.zz,unknown\n"
	if string(data) != want {
		t.Errorf("file = %q, want %q", string(data), want)
	}
}

func TestSaver_SaveResultsBadDir(t *testing.T) {
	s := NewSaver(zerolog.Nop())
	_, err := s.SaveResults(domain.RunTally{Available: []string{"a.com"}}, filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("SaveResults() expected error for missing directory")
	}
}

package filter_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/JohnnyFabiostine/CS579-Foundation-of-Cryptography/internal/filter"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		name        string
		includes    []string
		excludes    []string
		hasIncludes bool
		path        string
		want        bool
	}{
		{name: "no patterns matches all", path: "dir/file.txt", want: true},
		{name: "include hit", includes: []string{"*.txt"}, hasIncludes: true, path: "notes.txt", want: true},
		{name: "include miss", includes: []string{"*.txt"}, hasIncludes: true, path: "notes.md", want: false},
		{name: "exclude wins", includes: []string{"*.txt"}, excludes: []string{"secret*"}, hasIncludes: true, path: "secret.txt", want: false},
		{name: "exclude without includes", excludes: []string{"*.bak"}, path: "file.bak", want: false},
		{name: "dot-slash prefix stripped", includes: []string{"./docs/*"}, hasIncludes: true, path: "docs/readme.md", want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := filter.New(tc.includes, tc.excludes)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			if got := f.Match(tc.path, tc.hasIncludes); got != tc.want {
				t.Errorf("Match(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestNewRejectsBadPattern(t *testing.T) {
	if _, err := filter.New([]string{"[unterminated"}, nil); err == nil {
		t.Error("malformed pattern was accepted")
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.txt", "b.txt", "c.md", "skip.bak"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o700); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(sub, "d.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	files, scanned, err := filter.Resolve([]string{dir}, []string{"*.txt"}, []string{"*skip*"}, true)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if scanned != 5 {
		t.Errorf("scanned %d candidates, want 5", scanned)
	}

	want := []string{
		filepath.ToSlash(filepath.Join(dir, "a.txt")),
		filepath.ToSlash(filepath.Join(dir, "b.txt")),
		filepath.ToSlash(filepath.Join(sub, "d.txt")),
	}

	slices.Sort(files)

	if !slices.Equal(files, want) {
		t.Errorf("got %v, want %v", files, want)
	}
}

func TestResolveFileArgBypassesFilter(t *testing.T) {
	dir := t.TempDir()

	direct := filepath.Join(dir, "direct.md")
	if err := os.WriteFile(direct, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	// The include pattern would reject it if it went through matching.
	files, _, err := filter.Resolve([]string{direct, direct}, []string{"*.txt"}, nil, true)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(files) != 1 || files[0] != filepath.ToSlash(direct) {
		t.Errorf("got %v, want just %q", files, direct)
	}
}

func TestLoadPatterns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.jsonc")

	content := `[
	// documents
	"*.txt",
	"*.md", // trailing comment
]`

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	patterns, err := filter.LoadPatterns(path)
	if err != nil {
		t.Fatalf("LoadPatterns failed: %v", err)
	}

	if want := []string{"*.txt", "*.md"}; !slices.Equal(patterns, want) {
		t.Errorf("got %v, want %v", patterns, want)
	}
}

func TestLoadPatternsMissingFile(t *testing.T) {
	if _, err := filter.LoadPatterns(filepath.Join(t.TempDir(), "absent.jsonc")); err == nil {
		t.Error("missing patterns file did not error")
	}
}

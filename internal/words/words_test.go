package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	t.Parallel()

	l, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	answers, allowed := l.Stats()
	if answers == 0 || allowed <= answers {
		t.Fatalf("Stats() = %d, %d", answers, allowed)
	}
	for _, w := range []string{"crane", "apple", "speed", "slate", "erase"} {
		if !l.IsAllowed(w) {
			t.Errorf("%q should be allowed", w)
		}
	}
	if !l.IsAllowed("CRANE") {
		t.Error("lookup should be case-insensitive")
	}
	for _, w := range l.All() {
		if !valid(w) {
			t.Fatalf("invalid word %q in list", w)
		}
	}
}

func TestLoad_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ans := filepath.Join(dir, "answers.txt")
	all := filepath.Join(dir, "allowed.txt")
	writeFile(t, ans, "Crane slate\n# comment line\nAPPLE  toolong x1234 # trailing\n")
	writeFile(t, all, "moths\nmoths crane\n")

	l, err := Load(ans, all)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := strings.Join(l.Answers(), ","); got != "crane,slate,apple" {
		t.Fatalf("Answers() = %s", got)
	}
	if got := strings.Join(l.All(), ","); got != "crane,slate,apple,moths" {
		t.Fatalf("All() = %s", got)
	}
	if l.IsAllowed("comme") || l.IsAllowed("toolong") {
		t.Fatal("comment or invalid entry leaked into list")
	}
}

func TestLoad_AllowedOnly(t *testing.T) {
	t.Parallel()

	all := filepath.Join(t.TempDir(), "allowed.txt")
	writeFile(t, all, "crane slate")
	l, err := Load("", all)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if a, g := l.Stats(); a != 2 || g != 2 {
		t.Fatalf("Stats() = %d, %d, want 2, 2", a, g)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), ""); err == nil {
		t.Fatal("expected error for missing file")
	}
	empty := filepath.Join(t.TempDir(), "empty.txt")
	writeFile(t, empty, "# nothing here\nab cd\n")
	if _, err := Load(empty, ""); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}

func TestAdd(t *testing.T) {
	t.Parallel()

	l, err := New([]string{"crane"}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Add("ZYMIC")
	l.Add("abc")
	l.Add("crane")
	l.Add("ab1cd")
	l.Add("ab cd")
	if !l.IsAllowed("zymic") {
		t.Fatal("added word should be allowed")
	}
	if !l.IsAllowed("ab1cd") {
		t.Fatal("any 5 characters may be added")
	}
	if !l.IsAllowed("ab cd") {
		t.Fatal("inner spaces count as characters")
	}
	if _, g := l.Stats(); g != 4 {
		t.Fatalf("allowed = %d, want 4", g)
	}
}

func TestRandom(t *testing.T) {
	t.Parallel()

	if got := Random(nil); got != "crane" {
		t.Fatalf("Random(nil) = %q", got)
	}
	pool := []string{"crane", "slate"}
	for i := 0; i < 20; i++ {
		if got := Random(pool); got != "crane" && got != "slate" {
			t.Fatalf("Random() = %q, not in pool", got)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

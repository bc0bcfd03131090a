package game

import (
	"reflect"
	"testing"
)

const (
	C = MarkCorrect
	P = MarkPresent
	A = MarkAbsent
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		answer string
		guess  string
		want   []Mark
	}{
		{"exact match", "apple", "apple", []Mark{C, C, C, C, C}},
		{"no overlap", "crane", "moths", []Mark{A, A, A, A, A}},
		{"repeated letter in answer, none exact", "speed", "erase", []Mark{P, A, A, P, P}},
		{"exact claimed before misplaced", "hello", "lllll", []Mark{A, A, C, C, A}},
		{"single copy guessed twice", "abide", "speed", []Mark{A, A, P, A, P}},
		{"mixed", "apple", "paper", []Mark{P, P, C, P, A}},
		{"case insensitive", "APPLE", "apple", []Mark{C, C, C, C, C}},
		{"non letters in allow-all", "crane", "cr4n3", []Mark{C, C, A, C, A}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(tt.answer, tt.guess)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Evaluate(%q, %q) = %v, want %v", tt.answer, tt.guess, got, tt.want)
			}
		})
	}
}

func TestEvaluate_LengthAndPurity(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{{"crane", "slate"}, {"speed", "erase"}, {"geese", "eeeee"}, {"abbey", "babes"}}
	for _, p := range pairs {
		first := Evaluate(p[0], p[1])
		if len(first) != WordLength {
			t.Fatalf("Evaluate(%q, %q) returned %d marks", p[0], p[1], len(first))
		}
		if second := Evaluate(p[0], p[1]); !reflect.DeepEqual(first, second) {
			t.Fatalf("Evaluate(%q, %q) not deterministic: %v vs %v", p[0], p[1], first, second)
		}
	}
}

func TestEvaluate_NeverOvercountsRepeatedLetters(t *testing.T) {
	t.Parallel()

	answers := []string{"speed", "geese", "abbey", "crane", "hello", "mamma"}
	guesses := []string{"eeeee", "erase", "bobby", "lllll", "mmmmm", "apple", "llama"}
	for _, a := range answers {
		for _, g := range guesses {
			marks := Evaluate(a, g)
			hits := map[byte]int{}
			for i, m := range marks {
				if m != MarkAbsent {
					hits[g[i]]++
				}
			}
			for letter, n := range hits {
				if have := countByte(a, letter); n > have {
					t.Errorf("Evaluate(%q, %q): %c marked %d times, answer has %d", a, g, letter, n, have)
				}
			}
		}
	}
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	t.Parallel()

	got := Evaluate("crane", "cranes")
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	for i, m := range got {
		if m != MarkAbsent {
			t.Fatalf("mark[%d] = %v, want absent", i, m)
		}
	}
}

func countByte(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}

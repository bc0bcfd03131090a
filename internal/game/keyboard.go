package game

import "unicode"

// Keyboard is the hint map: the best mark seen so far for each letter A–Z.
// Entries start unset and only ever move up (Absent → Present → Correct).
// The zero value is an empty keyboard.
type Keyboard struct {
	marks [26]Mark
	seen  [26]bool
}

// Apply merges one evaluated guess into the keyboard. Characters outside A–Z
// (possible in allow-all mode) are ignored.
func (k *Keyboard) Apply(word string, marks []Mark) {
	i := 0
	for _, r := range word {
		if i >= len(marks) {
			return
		}
		k.upgrade(r, marks[i])
		i++
	}
}

func (k *Keyboard) upgrade(r rune, m Mark) {
	if !isLetter(r) {
		return
	}
	j := unicode.ToUpper(r) - 'A'
	if !k.seen[j] || m.Outranks(k.marks[j]) {
		k.marks[j] = m
		k.seen[j] = true
	}
}

// Lookup returns the stored mark for r. ok is false while the letter has not
// appeared in any guess (or r is not a letter).
func (k *Keyboard) Lookup(r rune) (m Mark, ok bool) {
	if !isLetter(r) {
		return MarkAbsent, false
	}
	j := unicode.ToUpper(r) - 'A'
	return k.marks[j], k.seen[j]
}

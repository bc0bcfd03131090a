// assets/embed.go
//
// Embedded default word lists, used when no word files are configured.
//   - answers.txt: words the secret can be drawn from.
//   - allowed.txt: extra words accepted as guesses.

package assets

import (
	"embed"
	"io"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

func open(name string) (io.ReadCloser, error) {
	return FS.Open(name)
}

// Answers opens the embedded answer list.
func Answers() (io.ReadCloser, error) {
	return open("answers.txt")
}

// Allowed opens the embedded extra-guess list.
func Allowed() (io.ReadCloser, error) {
	return open("allowed.txt")
}

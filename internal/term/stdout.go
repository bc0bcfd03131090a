package term

import (
	"io"

	"github.com/mattn/go-colorable"
)

// Stdout returns standard output wrapped so ANSI sequences also work on
// Windows consoles.
func Stdout() io.Writer { return colorable.NewColorableStdout() }

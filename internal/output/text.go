package output

import (
	"fmt"
	"io"

	"github.com/sidekick-cli/sidekick/internal/assist"
)

// TextWriter outputs the bare response, prefixed only when it came from the
// cache. This is the default format and is what the interactive session
// prints.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, res assist.Result) error {
	if res.Cached {
		if _, err := fmt.Fprintln(w, "Using cached response:"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, res.Response)
	return err
}

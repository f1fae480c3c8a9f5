package output

import (
	"fmt"
	"io"

	"github.com/sidekick-cli/sidekick/internal/assist"
)

// MarkdownWriter wraps the response in a small header block, handy for
// piping into notes or pull-request comments.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, res assist.Result) error {
	ew := &errWriter{w: w}

	ew.printf("## %s (%s)\n\n", res.Task.MenuLabel(), res.Language)
	if res.Cached {
		ew.printf("_Served from cache._\n\n")
	} else {
		ew.printf("_%s / %s, %dms._\n\n", res.Provider, res.Model, res.RTTMs)
	}
	ew.printf("%s\n", res.Response)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

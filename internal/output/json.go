package output

import (
	"encoding/json"
	"io"

	"github.com/sidekick-cli/sidekick/internal/assist"
)

// JSONWriter outputs the full result as an indented JSON object.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, res assist.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

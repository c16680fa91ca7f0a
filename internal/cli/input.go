package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/harjula/fitadvisor/internal/analysis"
	"github.com/harjula/fitadvisor/internal/workout"
)

// configurationInput is the JSON document the analyze and validate
// subcommands read.
type configurationInput struct {
	Configuration analysis.Snapshot `json:"configuration"`
	Context       workout.Context   `json:"context"`
}

// readInput decodes JSON from the given path into dst. "-" reads stdin.
func readInput(path string, dst any) error {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	if err := json.NewDecoder(reader).Decode(dst); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	return nil
}

// printJSON writes v to stdout with indentation.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

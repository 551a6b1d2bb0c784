package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/graphsh/internal/config"
)

// Schema displays or exports the JSON Schema for graphsh filter files
func Schema(outputPath string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}
	schemaJSON := config.GetSchemaJSON()

	// If output path is provided, write to file
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(schemaJSON), 0644); err != nil {
			return fmt.Errorf("failed to write schema to %s: %w", outputPath, err)
		}
		_, err := fmt.Fprintf(out, "JSON Schema written to: %s\n", outputPath)
		return err
	}

	_, err := fmt.Fprint(out, schemaJSON)
	return err
}

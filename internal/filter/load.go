package filter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// LoadPatterns reads a JSONC file holding an array of pattern strings.
// Comments and trailing commas are tolerated.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading patterns file %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSON(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing patterns file %q: %w", path, err)
	}

	return patterns, nil
}

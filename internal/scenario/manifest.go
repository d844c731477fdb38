package scenario

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one job in the output manifest.
type ManifestEntry struct {
	Name    string `json:"name"`
	Op      string `json:"op"`
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
	Preview string `json:"preview,omitempty"`
	Error   string `json:"error,omitempty"`
	Kind    string `json:"kind,omitempty"`
}

// WriteManifest writes the job results as indented JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry(r)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

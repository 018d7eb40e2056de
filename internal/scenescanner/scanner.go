package scenescanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneEntry represents a discoverable scene file
type SceneEntry struct {
	Name string // Display name (file name without extension)
	Path string // Path to the JSON file
}

// ScanDirectory scans dir for scene files.
// Returns one SceneEntry per JSON file, sorted by name.
func ScanDirectory(dir string) ([]SceneEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene directory: %w", err)
	}

	var scenes []SceneEntry

	for _, entry := range entries {
		// Skip directories
		if entry.IsDir() {
			continue
		}

		// Skip hidden files
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		ext := filepath.Ext(name)
		if !strings.EqualFold(ext, ".json") {
			continue
		}

		scenes = append(scenes, SceneEntry{
			Name: strings.TrimSuffix(name, ext),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

package locales

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decode unmarshals a locale document, choosing the decoder by the file
// name's extension. Supported formats: JSON, YAML (.yaml/.yml), TOML.
func Decode(name string, data []byte) (map[string]any, error) {
	var unmarshal func([]byte, any) error

	// Case-insensitive comparison handles .JSON and .json alike.
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		unmarshal = json.Unmarshal
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	case ".toml":
		unmarshal = toml.Unmarshal
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}

	var doc map[string]any
	if err := unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
	}
	return doc, nil
}

// Load reads and decodes one locale document from the filesystem.
func Load(fsys fs.FS, filePath string) (map[string]any, error) {
	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filePath, err)
	}
	return Decode(filePath, data)
}

// Discover lists candidate locale files in the root of fsys: regular files
// with a recognized extension whose name does not start with the reserved
// prefix (the template itself and other non-locale files carry the prefix).
// Results come back in directory order, which fs.ReadDir keeps sorted.
func Discover(fsys fs.FS, extensions []string, reservedPrefix string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading locales directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if reservedPrefix != "" && strings.HasPrefix(name, reservedPrefix) {
			continue
		}
		if !hasExtension(name, extensions) {
			continue
		}
		files = append(files, name)
	}
	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, candidate := range extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

package subtitle

import (
	"os"
	"path/filepath"
	"strings"
)

// default name when the user gives none
const DefaultOutputName = "output"

// OutputPath appends the .srt extension unless name already ends with it.
func OutputPath(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultOutputName
	}
	if strings.EqualFold(filepath.Ext(name), Extension) {
		return name
	}
	return name + Extension
}

// writes a rendered document, creating missing parent directories
func WriteDocument(path, document string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(document), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

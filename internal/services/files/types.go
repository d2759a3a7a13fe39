package files

import (
	"path/filepath"
	"strings"
)

// TypeLabel returns the human label for an allow-listed file name.
func TypeLabel(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return "Text (.txt)"
	case ".json":
		return "JSON (.json)"
	default:
		return "CSV (.csv)"
	}
}

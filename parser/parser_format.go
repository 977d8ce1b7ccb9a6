package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// FormatBytes renders a size with binary units, e.g. "1.5 KiB" or "10.0 MiB".
// Sizes under 1 KiB, and negative sizes, are printed as plain bytes.
func FormatBytes(size int64) string {
	const units = "KMGTPE"
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	value := float64(size)
	i := -1
	for value >= 1024 && i < len(units)-1 {
		value /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %ciB", value, units[i])
}

// detectFormatFromPath reports the format implied by a file extension.
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	}
	return SourceFormatUnknown
}

// detectFormatFromContent treats a document opening with '{' or '[' as JSON
// and anything else non-blank as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case len(trimmed) == 0:
		return SourceFormatUnknown
	case trimmed[0] == '{', trimmed[0] == '[':
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

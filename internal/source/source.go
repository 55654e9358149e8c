// Package source loads input documents from disk.
package source

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// DefaultPath is the input file read when no other path is configured,
// relative to the working directory.
const DefaultPath = "declaration.txt"

// LoadFile reads path as UTF-8 text. A missing or unreadable file and
// invalid UTF-8 content are both fatal; no fallback content is produced.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read input: %s is not valid UTF-8", path)
	}
	return string(data), nil
}

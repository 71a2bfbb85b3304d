package util

import (
	"errors"
	"strings"
)

// SanitizeFileName reduces a client-provided name to a safe flat file name,
// rejecting traversal patterns and control characters.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" || strings.ContainsAny(s, "\x00\n\r") {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

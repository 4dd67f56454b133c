package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// VaultRelative returns the path to target relative to the provided vault directory.
// The returned path always uses forward slashes to simplify downstream processing
// and ensure platform agnosticism.
func VaultRelative(vaultDir, target string) (string, error) {
	base := NormalizePath(vaultDir)
	cleanedTarget := NormalizePath(target)

	rel, err := filepath.Rel(base, cleanedTarget)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// WithinFolder reports whether rel (a vault-relative, forward-slash path) sits
// inside folder: either folder equals rel's directory chain exactly or rel is
// prefixed by folder + "/". An empty folder matches everything.
func WithinFolder(folder, rel string) bool {
	if folder == "" {
		return true
	}
	folder = strings.Trim(filepath.ToSlash(folder), "/")
	if folder == "" {
		return true
	}
	return rel == folder || strings.HasPrefix(rel, folder+"/")
}

// Ext returns the lowercased extension of path without the leading dot.
func Ext(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return strings.ToLower(ext)
}

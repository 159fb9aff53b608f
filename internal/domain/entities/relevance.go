package entities

import (
	"path/filepath"
	"slices"
	"strings"
)

// FileFilters holds the three exclusion lists applied to every walked file.
type FileFilters struct {
	Extensions []string `yaml:"irrelevant_extensions"` // e.g. ".lock", ".o"
	Filenames  []string `yaml:"irrelevant_filenames"`  // exact base names
	Folders    []string `yaml:"irrelevant_folders"`    // exact directory names
}

// IsRelevant reports whether a file survives the folder, filename and
// extension exclusions, checked in that order.
func IsRelevant(path string, excludedExtensions, excludedFilenames, excludedFolders []string) bool {
	for _, segment := range directorySegments(path) {
		if slices.Contains(excludedFolders, segment) {
			return false
		}
	}

	base := filepath.Base(path)
	if slices.Contains(excludedFilenames, base) {
		return false
	}

	if ext := Extension(base); ext != "" && slices.Contains(excludedExtensions, ext) {
		return false
	}

	return true
}

// Relevant applies IsRelevant with the receiver's lists.
func (f FileFilters) Relevant(path string) bool {
	return IsRelevant(path, f.Extensions, f.Filenames, f.Folders)
}

// ExcludesFolder reports whether a directory with the given name is excluded.
func (f FileFilters) ExcludesFolder(name string) bool {
	return slices.Contains(f.Folders, name)
}

// Extension returns the extension of a file name including the leading dot.
// Leading dots are not separators, so ".gitignore" has no extension while
// "archive.tar.gz" has ".gz".
func Extension(name string) string {
	base := filepath.Base(name)
	trimmed := strings.TrimLeft(base, ".")
	if trimmed == "" {
		return ""
	}
	return filepath.Ext(trimmed)
}

// directorySegments splits the directory part of a path into its names.
func directorySegments(path string) []string {
	dir := filepath.Dir(filepath.Clean(path))
	if dir == "." || dir == string(filepath.Separator) {
		return nil
	}

	var segments []string
	for _, segment := range strings.Split(filepath.ToSlash(dir), "/") {
		if segment == "" || segment == "." {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

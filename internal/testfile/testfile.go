// Package testfile discovers declarative test files and extracts their
// category marks, so the CLI can refuse to run a category that has no
// matching tests.
package testfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Suffix is the filename suffix identifying declarative test files.
const Suffix = ".tavern.yaml"

// File is a discovered test file together with the category marks it
// declares.
type File struct {
	Path  string
	Marks []string
}

// HasMark reports whether the file declares the given mark.
func (f File) HasMark(mark string) bool {
	for _, m := range f.Marks {
		if m == mark {
			return true
		}
	}
	return false
}

// AnyHasMark reports whether any file in the set declares the given mark.
func AnyHasMark(files []File, mark string) bool {
	for _, f := range files {
		if f.HasMark(mark) {
			return true
		}
	}
	return false
}

// Discover finds all test files in dir and parses their marks. The
// directory must exist; an empty directory yields an empty set. Files that
// fail to parse are included with no marks — the engine reports the parse
// error itself when it reaches them.
func Discover(dir string) ([]File, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("test directory not found at %s", dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*"+Suffix))
	if err != nil {
		return nil, fmt.Errorf("error scanning test directory: %w", err)
	}
	sort.Strings(paths)

	files := make([]File, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading test file %s: %w", path, err)
		}
		files = append(files, File{Path: path, Marks: parseMarks(data)})
	}

	return files, nil
}

// testDocument is the subset of a test file document we care about. A file
// may hold several YAML documents, each one test with its own marks.
type testDocument struct {
	Marks []interface{} `yaml:"marks"`
}

// parseMarks collects the marks declared across every document in a test
// file. Mark entries are either plain strings ("auth") or single-key
// mappings ("parametrize: {...}"); for mappings the key is the mark name.
func parseMarks(data []byte) []string {
	seen := make(map[string]bool)
	var marks []string

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc testDocument
		if err := dec.Decode(&doc); err != nil {
			if err == io.EOF {
				break
			}
			// Malformed document; leave remaining marks undetected.
			break
		}

		for _, entry := range doc.Marks {
			name := markName(entry)
			if name != "" && !seen[name] {
				seen[name] = true
				marks = append(marks, name)
			}
		}
	}

	return marks
}

// markName extracts the mark name from a decoded marks entry.
func markName(entry interface{}) string {
	switch v := entry.(type) {
	case string:
		return v
	case map[string]interface{}:
		// Single-key mapping form; tavern only allows one key per entry.
		for key := range v {
			return key
		}
	}
	return ""
}

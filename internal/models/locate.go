// Package models locates recognition model artifacts on disk and can
// download the published model files for first-time setup.
package models

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultGraphName is the acoustic model filename assumed when the model
// directory contains no file with a recognized model extension. The path
// is returned even if the file does not exist; the engine load reports
// the failure.
const DefaultGraphName = "output_graph.pb"

// modelExts are the file extensions recognized as acoustic model artifacts.
var modelExts = map[string]bool{
	".pb":     true,
	".pbmm":   true,
	".tflite": true,
}

// Selection is the result of scanning a model directory: the acoustic
// model to load and, when present, an external scorer.
type Selection struct {
	ModelPath  string
	ScorerPath string // empty when the directory has no scorer
}

// HasScorer reports whether a scorer file was found next to the model.
func (s Selection) HasScorer() bool {
	return s.ScorerPath != ""
}

// Locate scans the direct entries of dir and picks the model artifacts:
// files ending in .pb, .pbmm or .tflite fill the model slot, files ending
// in .scorer fill the scorer slot. When several candidates exist the last
// one scanned wins. os.ReadDir returns entries sorted by filename, which
// makes the policy deterministic here, but callers should not depend on
// which of several model files is chosen.
//
// Entries that are not regular files (after following symlinks) are
// skipped. An unreadable directory is an error.
func Locate(dir string) (Selection, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Selection{}, fmt.Errorf("models: reading model dir: %w", err)
	}

	sel := Selection{ModelPath: filepath.Join(dir, DefaultGraphName)}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		switch ext := filepath.Ext(entry.Name()); {
		case modelExts[ext]:
			sel.ModelPath = path
		case ext == ".scorer":
			sel.ScorerPath = path
		}
	}
	return sel, nil
}

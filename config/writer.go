package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Dump writes the document to path as canonical Terraform JSON: two-space
// indentation, object keys in lexicographic order and a trailing newline.
// Identical logical content always produces byte-identical output, whatever
// order the document's maps were built in.
//
// Parent directories are created as needed.
func Dump(fs afero.Fs, path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal output")
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create output directory")
		}
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return errors.Wrap(err, "write output")
	}
	return nil
}

package config

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// Load reads a Terraform configuration file from fs.
//
// Files with a .json extension are parsed as Terraform JSON, producing the
// map-shaped resource section. Any other extension (.tf, .hcl) is parsed as
// HCL, producing the list-shaped resource section. Numbers from JSON input
// are kept as json.Number so re-serializing them does not change their
// textual form.
//
// A load failure is fatal to the conversion: the returned error wraps the
// underlying read or parse problem and no partial document is produced.
func Load(fs afero.Fs, path string) (Document, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "read input")
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.UseNumber()
		var doc Document
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
		return doc, nil
	}

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, &DiagnosticsError{Diagnostics: diags, files: parser.Files()}
	}
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		// ParseHCL always produces a native syntax body.
		return nil, errors.Errorf("parse %s: unexpected body type", path)
	}
	return documentFromHCL(body, src), nil
}

// A DiagnosticsError carries HCL parse diagnostics together with the source
// files needed to render them with context.
type DiagnosticsError struct {
	Diagnostics hcl.Diagnostics

	files map[string]*hcl.File
}

func (e *DiagnosticsError) Error() string {
	return e.Diagnostics.Error()
}

// WriteTo writes the diagnostics as a human readable report. If a TTY is
// attached, the output is colorized and wraps at the terminal width.
// Otherwise, wrap occurs at 78 characters without ANSI escape characters.
func (e *DiagnosticsError) WriteTo(w io.Writer) {
	cols, _, err := term.GetSize(0)
	if err != nil {
		cols = 78
	}
	color := term.IsTerminal(0)
	wr := hcl.NewDiagnosticTextWriter(w, e.files, uint(cols), color)
	_ = wr.WriteDiagnostics(e.Diagnostics)
}

// WriteDiagnostics renders err to w with source context if it carries HCL
// diagnostics. It reports whether diagnostics were written; for any other
// error it writes nothing and returns false.
func WriteDiagnostics(w io.Writer, err error) bool {
	var diagErr *DiagnosticsError
	if !errors.As(err, &diagErr) {
		return false
	}
	diagErr.WriteTo(w)
	return true
}

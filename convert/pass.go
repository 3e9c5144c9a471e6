package convert

import (
	"fmt"

	"github.com/marcuscabrera/terracognita-fork/config"
	"github.com/marcuscabrera/terracognita-fork/suggest"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// A Pass converts one source document into one target document.
//
// Registry, ProviderBlock and UnsupportedHint are supplied by a provider pair
// package. Fs defaults to the OS filesystem and Logger to a no-op logger.
//
// A Pass holds no state between runs; the same Pass may be run any number of
// times and concurrent runs are safe as long as the filesystem is.
type Pass struct {
	Fs              afero.Fs
	Logger          *zap.Logger
	Registry        Registry
	ProviderBlock   config.Body
	UnsupportedHint string
}

// Run executes the conversion: load the source document, convert every
// resource, assemble the output document and write it to outputPath.
//
// Per-resource problems (unsupported types, missing required fields, manual
// migration refusals) are recorded in the report and never interrupt the
// pass. An error is returned only when the input cannot be read or parsed,
// or the output cannot be written; no report is produced in that case.
func (p *Pass) Run(inputPath, outputPath string) (*Report, error) {
	fs := p.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := config.Load(fs, inputPath)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	var converted []config.Resource
	for _, res := range config.Resources(doc) {
		conv, ok := p.Registry[res.Type]
		if !ok {
			report.failure(p.unsupported(res))
			logger.Warn("unsupported resource",
				zap.String("type", res.Type),
				zap.String("name", res.Name))
			continue
		}

		targets, err := conv.Convert(res.Name, res.Body)
		if err != nil {
			report.failure(fmt.Sprintf("%s: %s", res.ID(), err))
			logger.Warn("conversion failed",
				zap.String("type", res.Type),
				zap.String("name", res.Name),
				zap.Error(err))
			continue
		}
		for _, t := range targets {
			converted = append(converted, t)
			report.success(t.ID())
			logger.Debug("converted resource",
				zap.String("source", res.ID()),
				zap.String("target", t.ID()))
		}
	}

	out := config.BuildOutput(doc, converted)
	config.MergeProviders(out, p.ProviderBlock)

	if err := config.Dump(fs, outputPath, out); err != nil {
		return nil, err
	}
	logger.Info("conversion pass complete",
		zap.Int("converted", len(report.Successes)),
		zap.Int("errors", len(report.Errors)))
	return report, nil
}

func (p *Pass) unsupported(res config.Resource) string {
	msg := fmt.Sprintf("Unsupported resource '%s'.", res.ID())
	if p.UnsupportedHint != "" {
		msg += " " + p.UnsupportedHint
	}
	if s := suggest.String(res.Type, p.Registry.Types()); s != "" {
		msg += fmt.Sprintf(" Did you mean %q?", s)
	}
	return msg
}

// Package convert implements the generic conversion engine that rewrites
// Terraform resources from one provider into their closest equivalents for
// another.
//
// The engine is a single sequential pass: resources are pulled from the
// source document in a deterministic order, dispatched against a Registry of
// per-type Converters, and the results are assembled into a fresh output
// document together with a Report of what succeeded and what did not.
// Per-resource failures never abort the pass; only a failure to load the
// input or write the output is fatal.
//
// Provider pairs (aws, azurerm, google packages) supply the Registry, the
// provider configuration block to inject, and a remediation hint for
// unsupported resource types.
package convert

import (
	"sort"

	"github.com/marcuscabrera/terracognita-fork/config"
)

// A Converter maps a single source resource to zero or more target
// resources.
//
// Converters must be pure: they read only their arguments, never mutate the
// given body, and always return the same output for the same input. A
// returned error of type *ValidationError or *ManualMigrationError is
// recorded in the report; any other error is recorded the same way.
type Converter interface {
	Convert(name string, body config.Body) ([]config.Resource, error)
}

// Func adapts an ordinary function to the Converter interface.
type Func func(name string, body config.Body) ([]config.Resource, error)

// Convert calls f.
func (f Func) Convert(name string, body config.Body) ([]config.Resource, error) {
	return f(name, body)
}

// A Registry maps source resource type names to their converters. Dispatch is
// exact string match only; there are no wildcards and no version-suffix
// stripping.
//
// Registries are fixed literal maps built by the provider pair packages and
// are never mutated after initialization.
type Registry map[string]Converter

// Types returns the registered source type names in lexicographic order.
func (r Registry) Types() []string {
	tt := make([]string, 0, len(r))
	for k := range r {
		tt = append(tt, k)
	}
	sort.Strings(tt)
	return tt
}

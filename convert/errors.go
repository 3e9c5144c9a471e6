package convert

import (
	"fmt"
	"strings"
)

// A ValidationError is returned by a converter when a recognized resource is
// missing fields the target mapping cannot do without. Every missing field is
// named, not just the first one found.
type ValidationError struct {
	Resource string
	Missing  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("resource %q is missing required fields: %s", e.Resource, strings.Join(e.Missing, ", "))
}

// A ManualMigrationError is returned by a converter for a resource it
// recognizes but deliberately refuses to map, because no automatic mapping
// would be safe. The reason tells the user what to recreate by hand; silently
// dropping the data would be worse than failing loudly.
type ManualMigrationError struct {
	Reason string
}

func (e *ManualMigrationError) Error() string {
	return e.Reason
}

// A ReportError aggregates every error recorded during a conversion pass. It
// is returned by Report.Err and is the only way per-resource failures
// escalate into a hard failure; the engine itself never raises them.
type ReportError struct {
	Errors []string
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("conversion completed with %d errors:\n%s", len(e.Errors), strings.Join(e.Errors, "\n"))
}

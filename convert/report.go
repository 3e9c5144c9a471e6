package convert

// A Report is the accumulated outcome of a conversion pass.
//
// Successes lists the "<type>.<name>" identifier of every target resource
// that was produced; a converter that fans one source resource out into
// several targets contributes one entry per target. Errors lists one human
// readable message per source resource that was skipped or failed.
//
// Both lists are append-only while the pass runs and must be treated as
// immutable once the pass has returned.
type Report struct {
	Successes []string
	Errors    []string
}

func (r *Report) success(id string) {
	r.Successes = append(r.Successes, id)
}

func (r *Report) failure(msg string) {
	r.Errors = append(r.Errors, msg)
}

// Err returns a *ReportError carrying every recorded error message, or nil if
// the pass recorded none. Escalating a partially failed conversion is the
// caller's explicit decision; the engine never escalates on its own.
func (r *Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return &ReportError{Errors: r.Errors}
}

// Package suggest proposes close matches for mistyped resource type names.
package suggest

import "github.com/agext/levenshtein"

// String suggests the candidate closest to want, for use in "Did you mean"
// hints on unsupported resource types.
//
// Terraform type names are long ("aws_security_group"), so the allowed edit
// distance scales with the input length, capped at one quarter of it. The
// exact heuristic may change; callers should only rely on getting either a
// candidate or an empty string.
func String(want string, candidates []string) string {
	maxDist := len(want) / 4
	if maxDist == 0 {
		maxDist = 1
	}

	best := ""
	bestDist := maxDist + 1
	for _, cand := range candidates {
		if cand == want {
			return want
		}
		if d := levenshtein.Distance(want, cand, nil); d < bestDist {
			best = cand
			bestDist = d
		}
	}
	return best
}

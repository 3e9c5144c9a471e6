package convert

import "strings"

// A ReferenceRule rewrites interpolation strings that reference a source
// provider resource type, substituting the target provider's type token and,
// optionally, the attribute suffix the target schema uses differently
// ("aws_vpc.main.name" style references become "huaweicloud_vpc.main.id"
// style). An empty TargetSuffix drops the source suffix.
type ReferenceRule struct {
	SourceType   string
	TargetType   string
	SourceSuffix string
	TargetSuffix string
}

// RewriteReference applies the first rule whose source type token occurs in
// s, replacing every occurrence of the type token and the attribute suffix.
// Strings that reference no known source type are returned unchanged.
//
// This is a best-effort textual substitution over a fixed rule list, not an
// interpolation expression parser. It does not verify that the referenced
// resource exists or was itself converted, and unusual reference formats may
// be rewritten incorrectly or left alone.
func RewriteReference(s string, rules []ReferenceRule) string {
	for _, r := range rules {
		if !strings.Contains(s, r.SourceType) {
			continue
		}
		s = strings.ReplaceAll(s, r.SourceType, r.TargetType)
		if r.SourceSuffix != "" {
			s = strings.ReplaceAll(s, r.SourceSuffix, r.TargetSuffix)
		}
		return s
	}
	return s
}

package config

import "sort"

// A Body holds the attribute values of a single configuration block. Values
// are strings, bools, numbers (json.Number or int64/float64), []interface{}
// slices, nested Body maps, or interpolation strings ("${...}") that are
// passed through verbatim for the target tooling to resolve.
type Body = map[string]interface{}

// A Document is a parsed Terraform configuration. The reserved "resource" key
// holds the resource section; all other top-level sections ("provider",
// "variable", "output", ...) are opaque to the converter and pass through
// unchanged.
type Document = map[string]interface{}

// A Resource is a single typed, named resource declaration.
type Resource struct {
	Type string
	Name string
	Body Body
}

// ID returns the "<type>.<name>" identifier for the resource.
func (r Resource) ID() string { return r.Type + "." + r.Name }

// Resources returns every resource declared in the document, in a
// deterministic order. The document is not modified and may be iterated any
// number of times.
//
// Two resource section shapes are supported. JSON documents use a map keyed
// by type, then by name. HCL documents use a list of single-key blocks, each
// mapping a type to either a {name: body} map or a list of such maps.
//
// Map-shaped sections are traversed in lexicographic key order so that the
// result does not depend on map iteration order. List-shaped sections keep
// their source order. Entries that do not match either shape are skipped;
// validating resource contents is the converters' job, not the iterator's.
func Resources(doc Document) []Resource {
	var out []Resource
	switch section := doc["resource"].(type) {
	case map[string]interface{}:
		out = appendTypedInstances(out, section)
	case []interface{}:
		for _, el := range section {
			block, ok := el.(map[string]interface{})
			if !ok {
				continue
			}
			for _, typ := range sortedKeys(block) {
				switch instances := block[typ].(type) {
				case []interface{}:
					for _, inst := range instances {
						m, ok := inst.(map[string]interface{})
						if !ok {
							continue
						}
						out = appendInstances(out, typ, m)
					}
				case map[string]interface{}:
					out = appendInstances(out, typ, instances)
				}
			}
		}
	}
	return out
}

func appendTypedInstances(dst []Resource, section map[string]interface{}) []Resource {
	for _, typ := range sortedKeys(section) {
		instances, ok := section[typ].(map[string]interface{})
		if !ok {
			continue
		}
		dst = appendInstances(dst, typ, instances)
	}
	return dst
}

func appendInstances(dst []Resource, typ string, instances map[string]interface{}) []Resource {
	for _, name := range sortedKeys(instances) {
		body, ok := instances[name].(map[string]interface{})
		if !ok {
			continue
		}
		dst = append(dst, Resource{Type: typ, Name: name, Body: body})
	}
	return dst
}

// BuildOutput assembles a new document from the converted resources and the
// non-resource sections of the source document. The resource section is
// always emitted in the map shape (type, then name), which the canonical JSON
// writer serializes with sorted keys. An empty resource list produces a
// document without a resource section.
func BuildOutput(src Document, resources []Resource) Document {
	out := make(Document, len(src))
	for k, v := range src {
		if k == "resource" {
			continue
		}
		out[k] = v
	}

	if len(resources) == 0 {
		return out
	}
	section := make(map[string]interface{})
	for _, r := range resources {
		instances, ok := section[r.Type].(map[string]interface{})
		if !ok {
			instances = make(map[string]interface{})
			section[r.Type] = instances
		}
		instances[r.Name] = r.Body
	}
	out["resource"] = section
	return out
}

// MergeProviders merges the given provider configuration block into the
// document's provider section. Keys already present in the document are never
// overwritten; the injected block only fills in providers the user did not
// configure themselves.
//
// When the existing section uses the HCL list shape, providers already named
// by any list element are skipped and the remainder is appended as a single
// new element.
func MergeProviders(doc Document, block Body) {
	if len(block) == 0 {
		return
	}
	switch existing := doc["provider"].(type) {
	case map[string]interface{}:
		for _, k := range sortedKeys(block) {
			if _, ok := existing[k]; !ok {
				existing[k] = block[k]
			}
		}
	case []interface{}:
		present := make(map[string]bool)
		for _, el := range existing {
			m, ok := el.(map[string]interface{})
			if !ok {
				continue
			}
			for k := range m {
				present[k] = true
			}
		}
		add := make(map[string]interface{})
		for k, v := range block {
			if !present[k] {
				add[k] = v
			}
		}
		if len(add) > 0 {
			doc["provider"] = append(existing, add)
		}
	default:
		injected := make(map[string]interface{}, len(block))
		for k, v := range block {
			injected[k] = v
		}
		doc["provider"] = injected
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

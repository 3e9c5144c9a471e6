package convert

import (
	"strings"

	"github.com/Jeffail/gabs/v2"
	"github.com/marcuscabrera/terracognita-fork/config"
)

// Lookup returns the value at a dotted path into the body, such as
// "boot_disk.initialize_params.image". Single-element lists introduced by HCL
// block syntax are unwrapped at every step, so the same path works for
// block-shaped and JSON-shaped input.
func Lookup(body config.Body, path string) (interface{}, bool) {
	node := gabs.Wrap(map[string]interface{}(body))
	for _, seg := range strings.Split(path, ".") {
		if arr, ok := node.Data().([]interface{}); ok {
			if len(arr) == 0 {
				return nil, false
			}
			node = gabs.Wrap(arr[0])
		}
		node = node.Search(seg)
		if node == nil {
			return nil, false
		}
	}
	return node.Data(), true
}

// LookupString returns the non-empty string at the dotted path.
func LookupString(body config.Body, path string) (string, bool) {
	v, ok := Lookup(body, path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

package config

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/marcuscabrera/terracognita-fork/ctyext"
	"github.com/zclconf/go-cty/cty"
)

// documentFromHCL converts a parsed HCL body into a generic Document.
//
// Top-level blocks are grouped by block type into lists, with block labels
// nested as single-key maps, so a resource block
//
//	resource "aws_vpc" "main" { ... }
//
// becomes {"resource": [{"aws_vpc": {"main": {...}}}]}. This is the
// list-of-single-key-blocks resource shape the iterator understands.
//
// Expressions are evaluated without a variable scope. Anything that cannot be
// statically evaluated (variable references, cross-resource references,
// function calls) is kept as its literal "${...}" source text; the converter
// rewrites such strings textually and never resolves them.
func documentFromHCL(body *hclsyntax.Body, src []byte) Document {
	doc := Document{}
	for name, attr := range body.Attributes {
		doc[name] = exprValue(attr.Expr, src)
	}
	for _, block := range body.Blocks {
		entry := blockEntry(block, src)
		existing, _ := doc[block.Type].([]interface{})
		doc[block.Type] = append(existing, entry)
	}
	return doc
}

// blockEntry nests a block's labels as single-key maps around its body.
func blockEntry(block *hclsyntax.Block, src []byte) interface{} {
	var entry interface{} = bodyValue(block.Body, src)
	for i := len(block.Labels) - 1; i >= 0; i-- {
		entry = map[string]interface{}{block.Labels[i]: entry}
	}
	return entry
}

func bodyValue(body *hclsyntax.Body, src []byte) map[string]interface{} {
	out := make(map[string]interface{}, len(body.Attributes)+len(body.Blocks))
	for name, attr := range body.Attributes {
		out[name] = exprValue(attr.Expr, src)
	}
	for _, block := range body.Blocks {
		existing, _ := out[block.Type].([]interface{})
		out[block.Type] = append(existing, blockEntry(block, src))
	}
	return out
}

// exprValue converts an expression to a native value, falling back to the
// expression's literal source text wrapped in "${...}" when it cannot be
// evaluated statically.
func exprValue(expr hclsyntax.Expression, src []byte) interface{} {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if v, err := ctyext.Native(e.Val); err == nil {
			return v
		}
	case *hclsyntax.TemplateExpr:
		return templateValue(e, src)
	case *hclsyntax.TemplateWrapExpr:
		// A quoted template that is a single interpolation, "${expr}".
		return interpolation(e.Wrapped.Range(), src)
	case *hclsyntax.TupleConsExpr:
		out := make([]interface{}, len(e.Exprs))
		for i, el := range e.Exprs {
			out[i] = exprValue(el, src)
		}
		return out
	case *hclsyntax.ObjectConsExpr:
		out := make(map[string]interface{}, len(e.Items))
		for _, item := range e.Items {
			out[objectKey(item.KeyExpr, src)] = exprValue(item.ValueExpr, src)
		}
		return out
	default:
		if v, diags := expr.Value(nil); !diags.HasErrors() && v.IsWhollyKnown() {
			if nv, err := ctyext.Native(v); err == nil {
				return nv
			}
		}
	}
	return interpolation(expr.Range(), src)
}

// templateValue renders a string template, keeping interpolated parts as
// their "${...}" source text.
func templateValue(e *hclsyntax.TemplateExpr, src []byte) interface{} {
	var sb strings.Builder
	for _, part := range e.Parts {
		if lit, ok := part.(*hclsyntax.LiteralValueExpr); ok && lit.Val.Type() == cty.String {
			sb.WriteString(lit.Val.AsString())
			continue
		}
		sb.WriteString(interpolation(part.Range(), src))
	}
	return sb.String()
}

// objectKey resolves an object key expression. Bare identifier keys evaluate
// to their own name; anything unevaluable falls back to its source text.
func objectKey(expr hclsyntax.Expression, src []byte) string {
	if v, diags := expr.Value(nil); !diags.HasErrors() && v.IsKnown() && v.Type() == cty.String {
		return v.AsString()
	}
	return strings.TrimSpace(string(rangeBytes(expr.Range(), src)))
}

func interpolation(rng hcl.Range, src []byte) string {
	text := string(rangeBytes(rng, src))
	if strings.HasPrefix(text, "${") {
		return text
	}
	return "${" + text + "}"
}

func rangeBytes(rng hcl.Range, src []byte) []byte {
	start, end := rng.Start.Byte, rng.End.Byte
	if start < 0 || end > len(src) || start > end {
		return nil
	}
	return src[start:end]
}

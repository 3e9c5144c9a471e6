package ctyext

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
)

// Native converts a known cty value to a plain Go value: strings, bools,
// int64/float64 numbers, []interface{} slices and map[string]interface{}
// maps. Null values become nil.
//
// Whole numbers are returned as int64 so they serialize without a decimal
// point, matching the way they were written in the source configuration.
//
// In case a value cannot be represented (unknown or capsule values), a
// PathError is returned describing where in the value the conversion failed.
func Native(val cty.Value) (interface{}, error) {
	return native(val, nil)
}

func native(val cty.Value, path cty.Path) (interface{}, error) {
	if !val.IsKnown() {
		return nil, PathError{Path: path, Err: fmt.Errorf("value is not known")}
	}
	if val.IsNull() {
		return nil, nil
	}

	ty := val.Type()
	switch ty {
	case cty.String:
		return val.AsString(), nil
	case cty.Bool:
		return val.True(), nil
	case cty.Number:
		bf := val.AsBigFloat()
		if i64, acc := bf.Int64(); acc == big.Exact {
			return i64, nil
		}
		f64, _ := bf.Float64()
		return f64, nil
	}

	switch {
	case ty.IsListType(), ty.IsSetType(), ty.IsTupleType():
		out := make([]interface{}, 0, val.LengthInt())
		i := 0
		for it := val.ElementIterator(); it.Next(); i++ {
			_, ev := it.Element()
			v, err := native(ev, append(path, cty.IndexStep{Key: cty.NumberIntVal(int64(i))}))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case ty.IsMapType():
		out := make(map[string]interface{}, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			key := kv.AsString()
			v, err := native(ev, append(path, cty.GetAttrStep{Name: key}))
			if err != nil {
				return nil, err
			}
			out[key] = v
		}
		return out, nil
	case ty.IsObjectType():
		atys := ty.AttributeTypes()
		out := make(map[string]interface{}, len(atys))
		for name := range atys {
			v, err := native(val.GetAttr(name), append(path, cty.GetAttrStep{Name: name}))
			if err != nil {
				return nil, err
			}
			out[name] = v
		}
		return out, nil
	default:
		return nil, PathError{Path: path, Err: fmt.Errorf("unsupported type %s", ty.FriendlyName())}
	}
}

// Package rawops holds the primitive operations the shape predicates are
// built on. Every structural fact is read from the concrete representation
// of a value through the reflect package; no method on a value under test
// is ever invoked. A hostile type therefore cannot influence a predicate
// by shadowing Len, String, or a presence check of its own.
package rawops

import (
	"math"
	"reflect"
	"strconv"
)

// maxIndirect caps pointer/interface unwrapping so a self-referential
// value (x = &x) cannot make a predicate loop.
const maxIndirect = 32

// Ops is the one-time capture of the primitive bindings. Construct it
// with Capture during package init; it is read-only afterwards.
type Ops struct {
	isNaN func(float64) bool
	isInf func(float64, int) bool
	trunc func(float64) float64
}

// Capture pins the float-classification bindings. The returned Ops is
// shared by every predicate for the life of the process.
func Capture() *Ops {
	return &Ops{
		isNaN: math.IsNaN,
		isInf: math.IsInf,
		trunc: math.Trunc,
	}
}

// Finite reports whether f is a real, bounded number (not NaN, not ±Inf).
func (o *Ops) Finite(f float64) bool {
	return !o.isNaN(f) && !o.isInf(f, 0)
}

// Whole reports whether f is finite with no fractional part.
func (o *Ops) Whole(f float64) bool {
	return o.Finite(f) && o.trunc(f) == f
}

// Float extracts the numeric value of x, reaching through non-nil
// pointers. Named numeric types are read through their kind. Bools,
// strings, and everything non-numeric are rejected.
func (o *Ops) Float(x any) (float64, bool) {
	v, ok := settle(x)
	if !ok {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

// IsBool reports whether x has boolean kind.
func (o *Ops) IsBool(x any) bool {
	v, ok := settle(x)
	return ok && v.Kind() == reflect.Bool
}

// IsFunc reports whether x is a callable function value.
func (o *Ops) IsFunc(x any) bool {
	v, ok := settle(x)
	return ok && v.Kind() == reflect.Func && !v.IsNil()
}

// IsObject reports whether x carries named or indexed structure: a map,
// struct, slice, or array, reached through any depth of non-nil pointers.
// Nil maps and nil slices qualify (readable, simply empty); nil pointers
// and the nil interface do not.
func (o *Ops) IsObject(x any) bool {
	v, ok := settle(x)
	if !ok {
		return false
	}
	switch v.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// StrLen returns the byte length of a string-kinded value.
func (o *Ops) StrLen(x any) (int, bool) {
	v, ok := settle(x)
	if !ok || v.Kind() != reflect.String {
		return 0, false
	}
	return v.Len(), true
}

// SeqLen returns the element count of a slice or array.
func (o *Ops) SeqLen(x any) (int, bool) {
	v, ok := settle(x)
	if !ok {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return v.Len(), true
	}
	return 0, false
}

// Length returns the element count of any indexable value: byte length
// for strings, element count for slices and arrays.
func (o *Ops) Length(x any) (int, bool) {
	if n, ok := o.StrLen(x); ok {
		return n, true
	}
	return o.SeqLen(x)
}

// HasOwn reports whether name is defined directly on x: a map key, a
// struct field declared at embedding depth zero, or an in-range index of
// a slice or array. Promoted fields and methods do not count.
func (o *Ops) HasOwn(x any, name string) bool {
	v, ok := settle(x)
	if !ok {
		return false
	}
	switch v.Kind() {
	case reflect.Map:
		_, found := mapEntry(v, name)
		return found
	case reflect.Struct:
		f, found := v.Type().FieldByName(name)
		return found && f.PkgPath == "" && len(f.Index) == 1
	case reflect.Slice, reflect.Array:
		_, found := seqIndex(name, v.Len())
		return found
	}
	return false
}

// HasAny reports whether name is reachable on x at all: own per HasOwn,
// promoted from an embedded struct, or a method in the full method set
// (value and pointer receivers) of the underlying type.
func (o *Ops) HasAny(x any, name string) bool {
	if o.HasOwn(x, name) {
		return true
	}
	v, ok := settle(x)
	if !ok {
		return false
	}
	if v.Kind() == reflect.Struct {
		if f, found := v.Type().FieldByName(name); found && f.PkgPath == "" {
			return true
		}
	}
	_, found := reflect.PointerTo(v.Type()).MethodByName(name)
	return found
}

// GetOwn extracts the value of an own property for a path walk.
func (o *Ops) GetOwn(x any, name string) (any, bool) {
	v, ok := settle(x)
	if !ok {
		return nil, false
	}
	switch v.Kind() {
	case reflect.Map:
		ev, found := mapEntry(v, name)
		if !found {
			return nil, false
		}
		return ev.Interface(), true
	case reflect.Struct:
		f, found := v.Type().FieldByName(name)
		if !found || f.PkgPath != "" || len(f.Index) != 1 {
			return nil, false
		}
		return v.Field(f.Index[0]).Interface(), true
	case reflect.Slice, reflect.Array:
		i, found := seqIndex(name, v.Len())
		if !found {
			return nil, false
		}
		return v.Index(i).Interface(), true
	}
	return nil, false
}

// GetAny extracts own properties, promoted fields, and bound method
// values. A property that is present at the type level but unreachable on
// this particular value (a promoted field behind a nil embedded pointer,
// a pointer-receiver method on a non-addressable value) yields false.
func (o *Ops) GetAny(x any, name string) (any, bool) {
	if ev, ok := o.GetOwn(x, name); ok {
		return ev, true
	}
	v, ok := settle(x)
	if !ok {
		return nil, false
	}
	if v.Kind() == reflect.Struct {
		if f, found := v.Type().FieldByName(name); found && f.PkgPath == "" {
			fv, err := v.FieldByIndexErr(f.Index)
			if err != nil || !fv.CanInterface() {
				return nil, false
			}
			return fv.Interface(), true
		}
	}
	// Method value bound to the original, so pointer receivers stay usable
	// when the caller handed us a pointer.
	if m := reflect.ValueOf(x).MethodByName(name); m.IsValid() {
		return m.Interface(), true
	}
	if m := v.MethodByName(name); m.IsValid() {
		return m.Interface(), true
	}
	return nil, false
}

// settle follows non-nil pointers (and pointer-wrapped interfaces) down
// to the concrete value, up to maxIndirect levels deep.
func settle(x any) (reflect.Value, bool) {
	if x == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(x)
	for i := 0; i < maxIndirect; i++ {
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		default:
			return v, true
		}
	}
	return reflect.Value{}, false
}

// mapEntry looks up name in a map with string-kinded or empty-interface
// keys. Maps with other key types have no string-named entries.
func mapEntry(v reflect.Value, name string) (reflect.Value, bool) {
	kt := v.Type().Key()
	kv := reflect.ValueOf(name)
	switch {
	case kt.Kind() == reflect.String:
		if kt != kv.Type() {
			kv = kv.Convert(kt)
		}
	case kt.Kind() == reflect.Interface && kt.NumMethod() == 0:
		// key stays as the plain string
	default:
		return reflect.Value{}, false
	}
	ev := v.MapIndex(kv) // safe on nil maps
	if !ev.IsValid() {
		return reflect.Value{}, false
	}
	return ev, true
}

// seqIndex parses name as a base-10 element index and bounds-checks it
// against a sequence of length n.
func seqIndex(name string, n int) (int, bool) {
	i, err := strconv.ParseUint(name, 10, 63)
	if err != nil || int64(i) >= int64(n) {
		return 0, false
	}
	return int(i), true
}

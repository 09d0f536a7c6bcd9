package typeguard

// HasProp reports whether every name is reachable on x: defined directly
// on it, promoted from an embedded struct, or a method in the underlying
// type's method set — Go's rendition of "anywhere on the chain". x must
// be an object per IsObj. Zero names is an ambiguous request and yields
// false.
func HasProp(x any, names ...string) bool {
	if len(names) == 0 || !IsObj(x) {
		return false
	}
	for _, name := range names {
		if !ops.HasAny(x, name) {
			return false
		}
	}
	return true
}

// HasOwnProp reports whether every name is defined directly on x: a map
// key, a struct field declared at embedding depth zero, or an in-range
// slice index. Promoted fields and methods do not count, so an identifier
// a type merely inherits — a promoted field, a String method — never
// satisfies it. Zero names yields false.
func HasOwnProp(x any, names ...string) bool {
	if len(names) == 0 || !IsObj(x) {
		return false
	}
	for _, name := range names {
		if !ops.HasOwn(x, name) {
			return false
		}
	}
	return true
}

// HasPath walks names left to right, requiring at each step that the
// current scope is an object holding the current name per HasProp's
// semantics, then descends into that property's value. Returns false on
// the first missing link, for a property unreachable on this particular
// value (e.g. behind a nil embedded pointer), and for zero names.
func HasPath(x any, names ...string) bool {
	return walkPath(x, names, ops.HasAny, ops.GetAny)
}

// HasOwnPath is HasPath with HasOwnProp's semantics at every step: each
// link must be an own property of the scope it is found on.
func HasOwnPath(x any, names ...string) bool {
	return walkPath(x, names, ops.HasOwn, ops.GetOwn)
}

func walkPath(x any, names []string, has func(any, string) bool, get func(any, string) (any, bool)) bool {
	if len(names) == 0 {
		return false
	}
	scope := x
	for _, name := range names {
		if !IsObj(scope) || !has(scope, name) {
			return false
		}
		next, ok := get(scope, name)
		if !ok {
			return false
		}
		scope = next
	}
	return true
}

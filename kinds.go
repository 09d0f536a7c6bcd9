package typeguard

// IsObj reports whether x carries named or indexed structure: a map,
// struct, slice, or array, reached through any depth of non-nil pointers.
// Functions are not objects, nil is not an object. Nil maps and nil
// slices are objects — readable, simply empty.
func IsObj(x any) bool {
	return ops.IsObject(x)
}

// IsFn reports whether x is a callable function value. A typed nil
// function is not callable and yields false.
func IsFn(x any) bool {
	return ops.IsFunc(x)
}

// IsNum reports whether x is a finite number within the given inclusive
// bounds. Any numeric kind qualifies, including named numeric types;
// NaN and ±Inf do not. Bound handling follows IsBound.
func IsNum(x any, bounds ...float64) bool {
	return IsBound(x, bounds...)
}

// IsInt reports whether x is an integer-valued finite number within the
// given inclusive bounds. IsInt(3.0) is true, IsInt(3.5) is false.
func IsInt(x any, bounds ...float64) bool {
	f, ok := ops.Float(x)
	if !ok || !ops.Whole(f) {
		return false
	}
	return inBounds(f, bounds)
}

// IsBool reports whether x has boolean kind.
func IsBool(x any) bool {
	return ops.IsBool(x)
}

// IsStr reports whether x is a string whose byte length satisfies the
// given inclusive limits: IsStr(x) any length, IsStr(x, min) at least
// min, IsStr(x, min, max) between min and max. More than two limits is a
// malformed call and yields false.
func IsStr(x any, lens ...int) bool {
	n, ok := ops.StrLen(x)
	if !ok {
		return false
	}
	return lengthOK(n, lens)
}

// IsArr reports whether x is a slice or array whose element count
// satisfies the given inclusive limits, with the same positional rules as
// IsStr.
func IsArr(x any, lens ...int) bool {
	n, ok := ops.SeqLen(x)
	if !ok {
		return false
	}
	return lengthOK(n, lens)
}

// lengthOK is the integer rendition of inBounds for length limits, with
// the lower limit defaulting to zero.
func lengthOK(n int, lens []int) bool {
	switch len(lens) {
	case 0:
		return true
	case 1:
		return n >= lens[0]
	case 2:
		return n >= lens[0] && n <= lens[1]
	}
	return false
}

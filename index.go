package typeguard

// IsIdx reports whether x is a safe, in-bounds access index into target:
// a non-negative whole number i with i < len(target). The target may be a
// string (byte indexing), slice, or array; anything else yields false.
// Replaces unchecked numeric indexing into untrusted collections.
func IsIdx(x, target any) bool {
	f, ok := ops.Float(x)
	if !ok || !ops.Whole(f) || f < 0 {
		return false
	}
	n, ok := ops.Length(target)
	if !ok {
		return false
	}
	return f < float64(n)
}

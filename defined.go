package typeguard

// IsDef reports whether a value was supplied at all. A typed nil pointer
// is a supplied value — empty, but defined — so IsDef((*T)(nil)) is true.
func IsDef(x any) bool {
	return x != nil
}

// IsUndef reports whether x is the nil interface, i.e. no value was
// supplied. The counterpart of IsDef.
func IsUndef(x any) bool {
	return x == nil
}

// Package typeguard provides runtime shape predicates for untrusted
// values: data decoded from JSON or YAML, arguments crossing module
// boundaries, anything whose static type is any.
//
// Every predicate is total: for any input, including nil, typed nil
// pointers, self-referential values, and types with hostile method sets,
// it returns a definite bool, never panics, and never mutates its
// argument. Callers decide what a false result means; the package itself
// raises nothing and logs nothing.
//
// Structural facts are read from the concrete representation only.
// Methods on a candidate value are never invoked, so a type that shadows
// Len, String, or a presence check of its own cannot skew a result.
package typeguard

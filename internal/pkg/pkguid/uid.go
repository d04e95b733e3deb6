package pkguid

// StringID generates unique string identifiers.
type StringID interface {
	// Generate generates a unique identifier as a string.
	Generate() string
}

// NumberID generates unique numeric identifiers.
//
// Implementations must generate values that increase over time so callers can
// use them as supersede tokens ("is this result still the newest?").
type NumberID interface {
	// Generate generates a unique identifier as an int64 number.
	Generate() int64
}

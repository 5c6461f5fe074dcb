package identity

import "strings"

// Identity is a host-authenticated account reference. The host runtime
// verifies it before an invocation reaches the registry; the registry only
// compares identities, never parses or derives them.
type Identity struct {
	value string
}

// New wraps a host-supplied identifier. Surrounding whitespace is not part of
// an identity; everything else, including case, is significant.
func New(value string) Identity {
	return Identity{value: strings.TrimSpace(value)}
}

func (i Identity) String() string {
	return i.value
}

// IsZero reports whether the host supplied no identity at all.
func (i Identity) IsZero() bool {
	return i.value == ""
}

// Equal is an exact, case-sensitive comparison.
func (i Identity) Equal(other Identity) bool {
	return i.value == other.value
}

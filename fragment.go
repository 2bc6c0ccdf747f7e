package agenturi

// Fragment is an opaque, identity-irrelevant string restricted to the
// pchar / "/" / "?" character class (spec §3, §4.E).
type Fragment struct {
	raw string
}

// ParseFragment validates and wraps the fragment component (the text
// after "#").
func ParseFragment(raw string) (Fragment, error) {
	if raw == "" {
		return Fragment{}, nil
	}

	if _, err := percentDecodeAndValidate(raw, isQueryOrFragmentByte); err != nil {
		return Fragment{}, err
	}

	return Fragment{raw: raw}, nil
}

// String reproduces the exact raw wire form.
func (f Fragment) String() string { return f.raw }

// IsEmpty reports whether no fragment was present.
func (f Fragment) IsEmpty() bool { return f.raw == "" }

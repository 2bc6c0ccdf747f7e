package agenturi

// MarshalText yields an AgentUri as UTF8-encoded bytes, in its full
// textual form (including query and fragment when present).
func (u AgentUri) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// MarshalBinary is like MarshalText.
func (u AgentUri) MarshalBinary() ([]byte, error) {
	return u.MarshalText()
}

// UnmarshalText unmarshals an AgentUri from UTF8-encoded bytes.
func (u *AgentUri) UnmarshalText(b []byte) error {
	v, err := ParseAgentUri(string(b))
	if err != nil {
		return err
	}

	*u = v

	return nil
}

// UnmarshalBinary is like UnmarshalText.
func (u *AgentUri) UnmarshalBinary(b []byte) error {
	return u.UnmarshalText(b)
}

// MarshalText yields a TrustRoot in its canonical textual form.
func (t TrustRoot) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText unmarshals a TrustRoot from its textual form.
func (t *TrustRoot) UnmarshalText(b []byte) error {
	v, err := ParseTrustRoot(string(b))
	if err != nil {
		return err
	}

	*t = v

	return nil
}

// MarshalText yields a CapabilityPath in its canonical "/"-joined form.
func (p CapabilityPath) MarshalText() ([]byte, error) {
	return []byte(p.AsStr()), nil
}

// UnmarshalText unmarshals a CapabilityPath from its "/"-joined form.
func (p *CapabilityPath) UnmarshalText(b []byte) error {
	v, err := ParseCapabilityPath(string(b))
	if err != nil {
		return err
	}

	*p = v

	return nil
}

// MarshalText yields an AgentId in its canonical "prefix_suffix" form.
func (a AgentId) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText unmarshals an AgentId from its "prefix_suffix" form.
func (a *AgentId) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}

	*a = v

	return nil
}

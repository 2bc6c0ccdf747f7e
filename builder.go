package agenturi

// Builder assembles an AgentUri through a fixed sequence of stages:
// trust root, then capability path, then agent id (the three
// together make it Buildable), then optionally query and fragment.
// Go has no phantom-typed states, so the sequence is enforced at
// runtime: calling a setter out of order sets ErrBuilderState and all
// further calls become no-ops, sticking the first error and returning
// the builder unchanged.
type builderState uint8

const (
	builderEmpty builderState = iota
	builderHasTrust
	builderHasPath
	builderHasID // Buildable: query/fragment become settable here
)

// Builder methods

type Builder struct {
	err   error
	state builderState

	trustRoot TrustRoot
	path      CapabilityPath
	id        AgentId

	query    Query
	hasQuery bool

	fragment    Fragment
	hasFragment bool
}

// NewBuilder starts an empty builder.
func NewBuilder() Builder {
	return Builder{}
}

// Err is the inner error state of the builder.
func (b Builder) Err() error {
	return b.err
}

func (b Builder) wrongStage(expect builderState, what string) Builder {
	if b.state != expect {
		b.err = newParseError(ErrBuilderState, 0, 0, "%s can only be set when the builder is in stage %d, currently in stage %d", what, expect, b.state)
	}

	return b
}

// WithTrustRoot sets an already-validated trust root. Must be the
// first thing set on an empty builder.
func (b Builder) WithTrustRoot(tr TrustRoot) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderEmpty, "trust root"); b.Err() != nil {
		return b
	}

	b.trustRoot = tr
	b.state = builderHasTrust

	return b
}

// TryTrustRoot parses and sets the trust root.
func (b Builder) TryTrustRoot(raw string) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderEmpty, "trust root"); b.Err() != nil {
		return b
	}

	tr, err := ParseTrustRoot(raw)
	if err != nil {
		b.err = err

		return b
	}

	b.trustRoot = tr
	b.state = builderHasTrust

	return b
}

// WithCapabilityPath sets an already-validated capability path. Must
// follow a trust root.
func (b Builder) WithCapabilityPath(p CapabilityPath) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderHasTrust, "capability path"); b.Err() != nil {
		return b
	}

	b.path = p
	b.state = builderHasPath

	return b
}

// TryCapabilityPath parses and sets the capability path.
func (b Builder) TryCapabilityPath(raw string) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderHasTrust, "capability path"); b.Err() != nil {
		return b
	}

	p, err := ParseCapabilityPath(raw)
	if err != nil {
		b.err = err

		return b
	}

	b.path = p
	b.state = builderHasPath

	return b
}

// WithAgentId sets an already-built agent id, completing the
// Buildable stage.
func (b Builder) WithAgentId(id AgentId) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderHasPath, "agent id"); b.Err() != nil {
		return b
	}

	b.id = id
	b.state = builderHasID

	return b
}

// TryAgentId parses "prefix_suffix" and sets the agent id.
func (b Builder) TryAgentId(raw string) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderHasPath, "agent id"); b.Err() != nil {
		return b
	}

	id, err := Parse(raw)
	if err != nil {
		b.err = err

		return b
	}

	b.id = id
	b.state = builderHasID

	return b
}

// NewAgentId generates a fresh agent id for prefix (a new UUIDv7
// suffix) and sets it, completing the Buildable stage.
func (b Builder) NewAgentId(prefix string) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderHasPath, "agent id"); b.Err() != nil {
		return b
	}

	id, err := New(prefix)
	if err != nil {
		b.err = err

		return b
	}

	b.id = id
	b.state = builderHasID

	return b
}

// WithQuery sets an already-parsed query. Only available once
// Buildable (trust root, path and agent id all set).
func (b Builder) WithQuery(q Query) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderHasID, "query"); b.Err() != nil {
		return b
	}

	b.query = q
	b.hasQuery = true

	return b
}

// TryQuery parses and sets the query.
func (b Builder) TryQuery(raw string) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderHasID, "query"); b.Err() != nil {
		return b
	}

	q, err := ParseQuery(raw)
	if err != nil {
		b.err = err

		return b
	}

	b.query = q
	b.hasQuery = true

	return b
}

// WithFragment sets an already-parsed fragment. Only available once
// Buildable.
func (b Builder) WithFragment(f Fragment) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderHasID, "fragment"); b.Err() != nil {
		return b
	}

	b.fragment = f
	b.hasFragment = true

	return b
}

// TryFragment parses and sets the fragment.
func (b Builder) TryFragment(raw string) Builder {
	if b.Err() != nil {
		return b
	}

	if b = b.wrongStage(builderHasID, "fragment"); b.Err() != nil {
		return b
	}

	f, err := ParseFragment(raw)
	if err != nil {
		b.err = err

		return b
	}

	b.fragment = f
	b.hasFragment = true

	return b
}

// Build finalizes the AgentUri, enforcing the total length bound.
// It fails if any stage up to agent id was skipped, or if an earlier
// setter failed.
func (b Builder) Build() (AgentUri, error) {
	if b.Err() != nil {
		return AgentUri{}, b.err
	}

	if b.state != builderHasID {
		return AgentUri{}, newParseError(ErrBuilderState, 0, 0,
			"builder is missing a trust root, capability path or agent id")
	}

	u := AgentUri{
		trustRoot:   b.trustRoot,
		path:        b.path,
		id:          b.id,
		query:       b.query,
		hasQuery:    b.hasQuery,
		fragment:    b.fragment,
		hasFragment: b.hasFragment,
	}

	if rendered := u.String(); len(rendered) > maxURILength {
		return AgentUri{}, newParseError(ErrTotalTooLong, 0, len(rendered),
			"built agent URI is %d bytes, exceeds the %d byte limit", len(rendered), maxURILength)
	}

	return u, nil
}

package tlsext

import "github.com/tlsext/tlsext/wire"

// MapRegistry is the default CustomRegistry: a simple ordered set of
// application-defined extensions, each with its own parse/construct pair.
// It never overrides a built-in Type other than signed_certificate_timestamp
// (spec.md §4.2): registering any other built-in is a configuration error
// caught at Register time, not at handshake time.
type MapRegistry struct {
	entries []customEntry
	order   map[Type]int
}

type customEntry struct {
	Type      Type
	Roles     []Role
	Contexts  Context
	ParseFn   func(ctx Context, data []byte, chainIdx int) error
	ConstructFn func(w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error)
}

// NewMapRegistry returns an empty custom extension registry.
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{order: make(map[Type]int)}
}

// Register adds a custom extension. roles lists which role(s) parse it
// (RoleServer for a ClientHello-borne extension, RoleClient for one a
// server response carries); contexts is the set of message sites it may
// appear in.
func (m *MapRegistry) Register(t Type, roles []Role, contexts Context,
	parse func(ctx Context, data []byte, chainIdx int) error,
	construct func(w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error),
) error {
	if _, builtin := typeIndex[t]; builtin && t != TypeSignedCertificateTimestamp {
		return fail(AlertInternalError, ErrInternal, "extension %s is built in and cannot be overridden", t)
	}
	if _, dup := m.order[t]; dup {
		return fail(AlertInternalError, ErrInternal, "extension %s already registered", t)
	}
	m.order[t] = len(m.entries)
	m.entries = append(m.entries, customEntry{
		Type: t, Roles: roles, Contexts: contexts, ParseFn: parse, ConstructFn: construct,
	})
	return nil
}

func (m *MapRegistry) Init() {}

func (m *MapRegistry) Find(role Role, t Type) (bool, int) {
	i, ok := m.order[t]
	if !ok {
		return false, 0
	}
	e := m.entries[i]
	for _, r := range e.Roles {
		if r == role {
			return true, i
		}
	}
	return false, 0
}

// Parse ignores (returns nil for) a type with no registered handler, which
// is what a built-in row with no parser for this direction falls through to.
func (m *MapRegistry) Parse(ctx Context, t Type, data []byte, chainIdx int) error {
	i, ok := m.order[t]
	if !ok {
		return nil
	}
	e := m.entries[i]
	if e.Contexts&ctx == 0 {
		return fail(AlertIllegalParameter, ErrIllegalParameter, "extension %s not allowed in this context", t)
	}
	return e.ParseFn(ctx, data, chainIdx)
}

func (m *MapRegistry) Add(w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) error {
	for _, e := range m.entries {
		if e.Contexts&ctx == 0 || e.ConstructFn == nil {
			continue
		}
		scratch, finish := wire.NewBuilder()
		result, err := e.ConstructFn(scratch, ctx, maxVersion, chainIdx)
		if err != nil {
			return err
		}
		if result != ExtSent {
			continue
		}
		body, ferr := finish()
		if ferr != nil {
			return fail(AlertInternalError, ErrInternal, "encoding custom extension %s: %v", e.Type, ferr)
		}
		w.PutUint16(uint16(e.Type))
		w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
			inner.PutBytes(body)
		})
	}
	return nil
}

func (m *MapRegistry) Count() int { return len(m.entries) }

package tlsext

import "github.com/tlsext/tlsext/wire"

// ExtensionReader and ExtensionWriter name the wire codec contract
// (spec.md §6) at the granularity leaf parsers/constructors and the
// CustomRegistry bridge actually use: a view over one extension's body,
// not the whole message.
type (
	ExtensionReader = wire.Reader
	ExtensionWriter = wire.Writer
)

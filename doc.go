// Package tlsext implements the extension-processing core of a TLS 1.2/1.3
// endpoint: the table-driven pipeline that collects, dispatches, parses,
// constructs, and validates the optional extensions carried by handshake
// messages (ClientHello, ServerHello, EncryptedExtensions, Certificate,
// CertificateRequest, NewSessionTicket, HelloRetryRequest).
//
// The package does not implement a TLS connection. It is the orchestration
// layer that a record-layer/handshake-state-machine implementation calls
// into through three entry points: collecting a received extension block,
// parsing it (which also runs every initialiser and finaliser), and
// constructing an outgoing one:
//
//	raws, aerr := tlsext.CollectExtensions(sess, ctx, wire.NewReader(body), clientSide)
//	aerr = tlsext.ParseAll(sess, ctx, raws, chainIdx)
//	block, aerr := tlsext.ConstructAll(sess, ctx, maxVersion, chainIdx)
//
// Each built-in extension is a row in a static, compile-time table
// (registry.go). Rows carry up to six optional callbacks (init, parse from
// peer, construct to peer for each role, finalise) and a [Context] bitset
// describing which handshake messages and protocol versions the extension
// applies to. Cross-extension invariants that make the handshake safe —
// renegotiation, extended master secret consistency, TLS 1.3
// signature_algorithms presence, key_share/HelloRetryRequest selection,
// early_data acceptance, EC point format compatibility, server_name
// dispatch — live in the finalisers (ext_*.go) and run in table order, so
// that later rows may depend on earlier rows having already run.
//
// A [SessionState] value carries everything that must survive across
// messages of one handshake (which extensions have been sent, SNI/ALPN
// state, PSK key-exchange modes, early-data state, HelloRetryRequest flag).
// There is no global or package-level mutable state; nothing here is safe
// for concurrent use from two goroutines processing the same connection,
// because TLS handshakes aren't processed that way.
package tlsext

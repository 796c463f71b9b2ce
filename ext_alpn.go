package tlsext

// Grounded on the application_layer_protocol_negotiation row in ext_defs
// (RFC 7301). The server picks its first supported protocol present in the
// client's list; no ALPN finaliser exists in the original, so this row's
// Final stays nil and the position-after-server_name constraint in
// registry.go is the only ordering guarantee.

func initALPN(sess *SessionState, ctx Context) error {
	sess.ALPNSelected = ""
	return nil
}

func parseALPNCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() || list.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed alpn protocol list")
	}
	var proposed []string
	for !list.Empty() {
		proto, ok := list.ReadUint8LengthPrefixed()
		if !ok || proto.Empty() {
			return fail(AlertDecodeError, ErrDecodeError, "malformed alpn protocol entry")
		}
		proposed = append(proposed, string(proto.Bytes()))
	}
	sess.ALPNProposed = proposed
	for _, want := range sess.Policy.ALPNProtocols {
		for _, have := range proposed {
			if want == have {
				sess.ALPNSelected = have
				return nil
			}
		}
	}
	return nil
}

func parseALPNSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed alpn response")
	}
	proto, ok := list.ReadUint8LengthPrefixed()
	if !ok || !list.Empty() || proto.Empty() {
		return fail(AlertIllegalParameter, ErrIllegalParameter, "alpn response must name exactly one protocol")
	}
	sess.ALPNSelected = string(proto.Bytes())
	return nil
}

func constructALPNCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Policy.ALPNProtocols) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(list ExtensionWriter) {
		for _, p := range sess.Policy.ALPNProtocols {
			list.PutUint8LengthPrefixed(func(inner ExtensionWriter) {
				inner.PutBytes([]byte(p))
			})
		}
	})
	return ExtSent, nil
}

func constructALPNSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.ALPNSelected == "" {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(list ExtensionWriter) {
		list.PutUint8LengthPrefixed(func(inner ExtensionWriter) {
			inner.PutBytes([]byte(sess.ALPNSelected))
		})
	})
	return ExtSent, nil
}

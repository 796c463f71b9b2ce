package tlsext

// Grounded on init_npn and the next_proto_neg row in ext_defs. Superseded
// by ALPN in practice but kept for interop with peers that only speak the
// older draft, as SPEC_FULL.md §4 notes among the retained extensions.

func initNPN(sess *SessionState, ctx Context) error {
	sess.NPNSelected = ""
	return nil
}

func parseNPNCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	if !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "next_proto_neg request must be empty")
	}
	return nil
}

func parseNPNSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	var offered []string
	for !r.Empty() {
		proto, ok := r.ReadUint8LengthPrefixed()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "truncated next_proto_neg entry")
		}
		offered = append(offered, string(proto.Bytes()))
	}
	if len(offered) == 0 {
		return fail(AlertDecodeError, ErrDecodeError, "empty next_proto_neg list")
	}
	sess.NPNSelected = offered[0]
	for _, want := range sess.Policy.NPNProtocols {
		for _, have := range offered {
			if want == have {
				sess.NPNSelected = have
				return nil
			}
		}
	}
	return nil
}

func constructNPNCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Policy.NPNProtocols) == 0 {
		return ExtNotSent, nil
	}
	return ExtSent, nil
}

func constructNPNSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Policy.NPNProtocols) == 0 {
		return ExtNotSent, nil
	}
	for _, p := range sess.Policy.NPNProtocols {
		w.PutUint8LengthPrefixed(func(inner ExtensionWriter) {
			inner.PutBytes([]byte(p))
		})
	}
	return ExtSent, nil
}

package tlsext

// Grounded on init_srtp and the use_srtp row (RFC 5764). DTLS-only, as
// reflected in its registry Context gate.

func initSRTP(sess *SessionState, ctx Context) error {
	sess.SRTPSelected = 0
	return nil
}

func parseSRTPCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint16LengthPrefixed()
	if !ok || list.Empty() || list.Remaining()%2 != 0 {
		return fail(AlertDecodeError, ErrDecodeError, "malformed use_srtp profile list")
	}
	mki, ok := r.ReadUint8LengthPrefixed()
	if !ok || !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed use_srtp mki")
	}
	_ = mki
	var offered []uint16
	for !list.Empty() {
		p, ok := list.ReadUint16()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "truncated use_srtp entry")
		}
		offered = append(offered, p)
	}
	for _, want := range sess.Policy.SRTPProfiles {
		for _, have := range offered {
			if want == have {
				sess.SRTPSelected = have
				return nil
			}
		}
	}
	return nil
}

func parseSRTPSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint16LengthPrefixed()
	if !ok {
		return fail(AlertDecodeError, ErrDecodeError, "malformed use_srtp response")
	}
	profile, ok := list.ReadUint16()
	if !ok || !list.Empty() {
		return fail(AlertIllegalParameter, ErrIllegalParameter, "use_srtp response must name exactly one profile")
	}
	mki, ok := r.ReadUint8LengthPrefixed()
	if !ok || !r.Empty() || !mki.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed use_srtp mki")
	}
	sess.SRTPSelected = profile
	return nil
}

func constructSRTPCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Policy.SRTPProfiles) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
		for _, p := range sess.Policy.SRTPProfiles {
			inner.PutUint16(p)
		}
	})
	w.PutUint8LengthPrefixed(func(ExtensionWriter) {})
	return ExtSent, nil
}

func constructSRTPSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.SRTPSelected == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
		inner.PutUint16(sess.SRTPSelected)
	})
	w.PutUint8LengthPrefixed(func(ExtensionWriter) {})
	return ExtSent, nil
}

package tlsext

// Grounded on tls_parse_ctos_renegotiate / tls_parse_stoc_renegotiate /
// tls_construct_ctos_renegotiate / tls_construct_stoc_renegotiate /
// final_renegotiate in ssl/statem/extensions.c. The secure_renegotiation
// verify-data comparison itself is the record layer's job (it needs the
// previous Finished messages); this package only tracks whether the
// extension was present, per spec.md §1 Non-goals.

func parseRenegotiateCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	body, ok := r.ReadUint8LengthPrefixed()
	if !ok || !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed renegotiation_info")
	}
	if sess.Renegotiating && body.Remaining() == 0 {
		return fail(AlertHandshakeFailure, ErrHandshakeFailure, "renegotiation_info must carry verify data when renegotiating")
	}
	sess.RenegotiateReceived = true
	return nil
}

func parseRenegotiateSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	return parseRenegotiateCTOS(sess, ctx, r, chainIdx)
}

func constructRenegotiateCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.Policy.AllowUnsafeLegacyRenegotiation && !sess.Renegotiating {
		return ExtNotSent, nil
	}
	w.PutUint8LengthPrefixed(func(ExtensionWriter) {})
	return ExtSent, nil
}

func constructRenegotiateSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if !sess.RenegotiateReceived {
		return ExtNotSent, nil
	}
	w.PutUint8LengthPrefixed(func(ExtensionWriter) {})
	return ExtSent, nil
}

func finalRenegotiate(sess *SessionState, ctx Context, sent bool) error {
	if sess.Renegotiating && !sess.RenegotiateReceived && !sess.Policy.AllowUnsafeLegacyRenegotiation && !sess.Policy.LegacyServerConnect {
		return fail(AlertHandshakeFailure, ErrHandshakeFailure, "peer does not support secure renegotiation")
	}
	return nil
}

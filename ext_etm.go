package tlsext

// Grounded on init_etm and the encrypt_then_mac row (RFC 7366). Empty
// bodies on both sides; presence alone is the signal.

func initETM(sess *SessionState, ctx Context) error {
	sess.UseETM = false
	return nil
}

func parseETM(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	if !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "encrypt_then_mac must be empty")
	}
	sess.UseETM = true
	return nil
}

func constructETM(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.IsTLS13() {
		// Superseded by AEAD-only record protection in TLS 1.3.
		return ExtNotSent, nil
	}
	if ctx&ClientHello != 0 {
		return ExtSent, nil
	}
	if !sess.UseETM {
		return ExtNotSent, nil
	}
	return ExtSent, nil
}

package tlsext

// Grounded on the cookie row (RFC 8446 §4.2.2), used to carry HelloRetryRequest
// state statelessly across the client's second ClientHello.

func parseCookieSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	cookie, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() || cookie.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed cookie")
	}
	sess.Cookie = append([]byte(nil), cookie.Bytes()...)
	return nil
}

func constructCookieCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Cookie) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
		inner.PutBytes(sess.Cookie)
	})
	return ExtSent, nil
}

func parseCookieCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	cookie, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() || cookie.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed cookie")
	}
	if string(cookie.Bytes()) != string(sess.Cookie) {
		return fail(AlertIllegalParameter, ErrIllegalParameter, "cookie does not match the one we sent")
	}
	return nil
}

func constructCookieSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Cookie) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
		inner.PutBytes(sess.Cookie)
	})
	return ExtSent, nil
}

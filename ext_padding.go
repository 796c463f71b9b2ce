package tlsext

// Grounded on the padding row (RFC 7685), used historically to work around
// buggy TLS implementations that mishandle certain ClientHello lengths.
// A precise pad-to-length computation needs the fully encoded message size,
// which is a layer above this package's per-extension view; callers that
// need exact RFC 7685 framing compute the shortfall themselves and set
// Policy.PadClientHelloToLength to the number of padding bytes to emit.

func constructPadding(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.Policy.PadClientHelloToLength <= 0 {
		return ExtNotSent, nil
	}
	w.PutBytes(make([]byte, sess.Policy.PadClientHelloToLength))
	return ExtSent, nil
}

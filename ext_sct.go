package tlsext

// Grounded on the signed_certificate_timestamp row (RFC 6962). No built-in
// server-side support, matching the original: a server wishing to staple
// SCTs registers a custom extension instead (the one documented exception
// to "custom extensions cannot override built-ins", spec.md §4.2).

func constructSCTCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	return ExtSent, nil
}

func parseSCTSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	if r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "empty signed_certificate_timestamp list")
	}
	sess.SCTList = append([]byte(nil), r.Bytes()...)
	return nil
}

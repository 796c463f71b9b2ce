package tlsext

// Grounded on init_srp / tls_parse_ctos_srp in ssl/statem/extensions.c. SRP
// key exchange itself is out of scope (spec.md §1 Non-goals); this leaf
// only captures the login name for the application to act on.

func initSRP(sess *SessionState, ctx Context) error {
	sess.SRPLoginName = ""
	return nil
}

func parseSRPCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	name, ok := r.ReadUint8LengthPrefixed()
	if !ok || !r.Empty() || name.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed srp extension")
	}
	sess.SRPLoginName = string(name.Bytes())
	return nil
}

func constructSRPCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.SRPLoginName == "" {
		return ExtNotSent, nil
	}
	w.PutUint8LengthPrefixed(func(inner ExtensionWriter) {
		inner.PutBytes([]byte(sess.SRPLoginName))
	})
	return ExtSent, nil
}

package tlsext

// Grounded on init_ems / tls_parse_ctos_ems / tls_construct_ctos_ems /
// final_ems (RFC 7627). final_ems enforces the consistency invariant from
// spec.md §3: a resumption whose EMS flag disagrees with the new
// handshake's negotiated EMS state fails the handshake.

func initEMS(sess *SessionState, ctx Context) error {
	sess.ReceivedEMS = false
	return nil
}

func parseEMS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	if !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "extended_master_secret must be empty")
	}
	sess.ReceivedEMS = true
	return nil
}

func constructEMS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.IsTLS13() {
		return ExtNotSent, nil
	}
	if ctx&ClientHello != 0 {
		return ExtSent, nil
	}
	if !sess.ReceivedEMS {
		return ExtNotSent, nil
	}
	return ExtSent, nil
}

func finalEMS(sess *SessionState, ctx Context, sent bool) error {
	if sess.IsTLS13() || !sess.IsResumed || sess.Session == nil {
		return nil
	}
	if sess.Session.ExtendedMasterSecret() != sess.ReceivedEMS {
		return fail(AlertHandshakeFailure, ErrHandshakeFailure, "extended_master_secret state changed across resumption")
	}
	if sess.Policy.RequireEMS && !sess.ReceivedEMS {
		return fail(AlertHandshakeFailure, ErrHandshakeFailure, "extended_master_secret required by policy")
	}
	return nil
}

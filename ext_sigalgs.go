package tlsext

// Grounded on init_sig_algs / tls_parse_ctos_sig_algs /
// tls_construct_ctos_sig_algs / final_sig_algs. The same function serves
// both parse slots and both construct slots, because signature_algorithms
// carries the same kind of list (the sender's supported algorithms)
// whether it appears in a ClientHello or a CertificateRequest.

func initSigAlgs(sess *SessionState, ctx Context) error {
	sess.PeerSigAlgs = nil
	return nil
}

func parseSigAlgs(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() || list.Empty() || list.Remaining()%2 != 0 {
		return fail(AlertDecodeError, ErrDecodeError, "malformed signature_algorithms")
	}
	var algs []uint16
	for !list.Empty() {
		a, ok := list.ReadUint16()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "truncated signature_algorithms entry")
		}
		algs = append(algs, a)
	}
	sess.PeerSigAlgs = algs
	return nil
}

func constructSigAlgs(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Policy.SignatureAlgorithms) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
		for _, a := range sess.Policy.SignatureAlgorithms {
			inner.PutUint16(a)
		}
	})
	return ExtSent, nil
}

func finalSigAlgs(sess *SessionState, ctx Context, sent bool) error {
	if ctx&ClientHello != 0 && !sent && !sess.IsTLS13() {
		// Pre-TLS-1.3 peers that omit signature_algorithms are assumed
		// to support only the legacy defaults; the cipher-suite layer
		// decides what that implies, not this package.
		return nil
	}
	if ctx&ClientHello != 0 && !sent && sess.IsTLS13() {
		return fail(AlertMissingExtension, ErrMissingExtension, "signature_algorithms required for TLS 1.3")
	}
	return nil
}

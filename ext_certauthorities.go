package tlsext

// Grounded on init_certificate_authorities / tls_construct_certificate_authorities
// / tls_parse_certificate_authorities (RFC 8446 §4.2.4). The same pair of
// functions serves both directions, as in the original: whichever side
// sends CertificateRequest or a TLS 1.3 ClientHello names the CA list it
// will accept certificates issued under.

func initCertificateAuthorities(sess *SessionState, ctx Context) error {
	sess.PeerCANames = nil
	return nil
}

func parseCertificateAuthorities(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() || list.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed certificate_authorities")
	}
	var names [][]byte
	for !list.Empty() {
		name, ok := list.ReadUint16LengthPrefixed()
		if !ok || name.Empty() {
			return fail(AlertDecodeError, ErrDecodeError, "malformed certificate_authorities entry")
		}
		names = append(names, append([]byte(nil), name.Bytes()...))
	}
	sess.PeerCANames = names
	return nil
}

func constructCertificateAuthorities(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Policy.CertificateAuthorities) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(list ExtensionWriter) {
		for _, name := range sess.Policy.CertificateAuthorities {
			list.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
				inner.PutBytes(name)
			})
		}
	})
	return ExtSent, nil
}

package tlsext

// Grounded on tls_construct_ctos_supported_versions. Construct-only: the
// server doesn't echo a supported_versions list of its own in the same
// shape (TLS 1.3's negotiated version travels in supported_versions only
// on the ClientHello side; the server's equivalent signal lives in the
// ServerHello's legacy_version/HelloRetryRequest fields, outside this
// package's extension table).

func constructSupportedVersionsCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Policy.SupportedVersions) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint8LengthPrefixed(func(inner ExtensionWriter) {
		for _, v := range sess.Policy.SupportedVersions {
			inner.PutUint16(v)
		}
	})
	return ExtSent, nil
}

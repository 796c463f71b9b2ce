package tlsext

// Grounded on the cryptopro_bug row: an unsolicited, empty-bodied
// ServerHello extension OpenSSL sends to interoperate with old CryptoPro
// CSP clients that otherwise mishandle standard GOST cipher suites.

func constructCryptoProBug(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if !sess.Policy.CryptoProBug {
		return ExtNotSent, nil
	}
	return ExtSent, nil
}

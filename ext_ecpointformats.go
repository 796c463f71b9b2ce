package tlsext

// Grounded on tls_parse_ctos_ec_pt_formats / tls_construct_ctos_ec_pt_formats
// / final_ec_pt_formats. Used identically for both message directions, as
// in the original's ext_defs row.

const ecPointFormatUncompressed = 0

func parseECPointFormats(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint8LengthPrefixed()
	if !ok || !r.Empty() || list.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed ec_point_formats")
	}
	sess.ECPointFormats = append([]byte(nil), list.Bytes()...)
	return nil
}

func constructECPointFormats(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if !sess.Cipher.ECDHEKeyExchange && !sess.Cipher.ECDSAAuthSig {
		return ExtNotSent, nil
	}
	w.PutUint8LengthPrefixed(func(inner ExtensionWriter) {
		inner.PutUint8(ecPointFormatUncompressed)
	})
	return ExtSent, nil
}

func finalECPointFormats(sess *SessionState, ctx Context, sent bool) error {
	if sess.IsTLS13() {
		return nil
	}
	if sess.Role == RoleClient && sent && (sess.Cipher.ECDHEKeyExchange || sess.Cipher.ECDSAAuthSig) {
		uncompressed := false
		for _, f := range sess.ECPointFormats {
			if f == ecPointFormatUncompressed {
				uncompressed = true
			}
		}
		if !uncompressed {
			return fail(AlertHandshakeFailure, ErrHandshakeFailure, "server ec_point_formats lacks uncompressed")
		}
	}
	if (sess.Cipher.ECDHEKeyExchange || sess.Cipher.ECDSAAuthSig) && len(sess.ECPointFormats) == 0 {
		sess.ECPointFormats = []byte{ecPointFormatUncompressed}
	}
	return nil
}

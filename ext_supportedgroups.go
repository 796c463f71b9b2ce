package tlsext

// Grounded on tls_parse_ctos_supported_groups / tls_construct_stoc_supported_groups
// / tls_construct_ctos_supported_groups.

func parseSupportedGroupsCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() || list.Empty() || list.Remaining()%2 != 0 {
		return fail(AlertDecodeError, ErrDecodeError, "malformed supported_groups")
	}
	var groups []uint16
	for !list.Empty() {
		g, ok := list.ReadUint16()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "truncated supported_groups entry")
		}
		groups = append(groups, g)
	}
	sess.PeerGroups = groups
	return nil
}

func constructSupportedGroupsSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	// Only meaningful as a TLS 1.3 EncryptedExtensions hint; the server
	// otherwise never echoes its group list.
	if ctx&TLS13EncryptedExtensions == 0 || len(sess.Policy.PreferredGroups) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
		for _, g := range sess.Policy.PreferredGroups {
			inner.PutUint16(g)
		}
	})
	return ExtSent, nil
}

func constructSupportedGroupsCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Policy.PreferredGroups) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
		for _, g := range sess.Policy.PreferredGroups {
			inner.PutUint16(g)
		}
	})
	return ExtSent, nil
}

package tlsext

// Grounded on tls_parse_ctos_key_share / tls_parse_stoc_key_share /
// tls_construct_ctos_key_share / tls_construct_stoc_key_share /
// final_key_share (RFC 8446 §4.2.8). This package negotiates which group
// to use and records the peer's raw key_exchange bytes; it never performs
// the ECDHE/ML-KEM math itself (spec.md §1 Non-goals) — that belongs to
// the record layer, keyed off sess.KeyShareSelected and
// sess.PeerKeyShares[sess.KeyShareSelected].

func parseKeyShareCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed key_share client list")
	}
	shares := make(map[uint16][]byte)
	for !list.Empty() {
		group, ok := list.ReadUint16()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "truncated key_share entry")
		}
		ke, ok := list.ReadUint16LengthPrefixed()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "truncated key_share key_exchange")
		}
		if _, dup := shares[group]; dup {
			return fail(AlertIllegalParameter, ErrIllegalParameter, "duplicate key_share group %d", group)
		}
		shares[group] = ke.Bytes()
	}
	sess.PeerKeyShares = shares
	return nil
}

func parseKeyShareSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	if ctx&TLS13HelloRetryRequest != 0 {
		group, ok := r.ReadUint16()
		if !ok || !r.Empty() {
			return fail(AlertDecodeError, ErrDecodeError, "malformed key_share HelloRetryRequest")
		}
		sess.HelloRetryRequest = true
		sess.GroupID = group
		return nil
	}
	group, ok := r.ReadUint16()
	if !ok {
		return fail(AlertDecodeError, ErrDecodeError, "malformed key_share server entry")
	}
	ke, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed key_share key_exchange")
	}
	sess.KeyShareSelected = group
	sess.PeerKeyShares = map[uint16][]byte{group: ke.Bytes()}
	return nil
}

func constructKeyShareCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Policy.PreferredGroups) == 0 || len(sess.KeyShareOwnPublic) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(list ExtensionWriter) {
		list.PutUint16(sess.Policy.PreferredGroups[0])
		list.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
			inner.PutBytes(sess.KeyShareOwnPublic)
		})
	})
	return ExtSent, nil
}

func constructKeyShareSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if ctx&TLS13HelloRetryRequest != 0 {
		if sess.GroupID == 0 {
			return ExtNotSent, nil
		}
		w.PutUint16(sess.GroupID)
		return ExtSent, nil
	}
	if sess.KeyShareSelected == 0 || len(sess.KeyShareOwnPublic) == 0 {
		return ExtNotSent, nil
	}
	w.PutUint16(sess.KeyShareSelected)
	w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
		inner.PutBytes(sess.KeyShareOwnPublic)
	})
	return ExtSent, nil
}

// finalKeyShare runs after supported_groups (registry index 4) and
// key_share's own parse, choosing a mutually supported group or flagging a
// HelloRetryRequest when the client offered a supported group without a
// matching key_share.
func finalKeyShare(sess *SessionState, ctx Context, sent bool) error {
	if sess.Role != RoleServer || ctx&ClientHello == 0 || !sess.IsTLS13() {
		return nil
	}
	if !sent {
		if sess.PSKKexModes&PSKKexModeDHEKE == 0 {
			return nil
		}
		return fail(AlertMissingExtension, ErrMissingExtension, "key_share required for (EC)DHE key exchange")
	}
	for _, want := range sess.Policy.PreferredGroups {
		if ke, ok := sess.PeerKeyShares[want]; ok {
			sess.KeyShareSelected = want
			sess.PeerKeyShares = map[uint16][]byte{want: ke}
			return nil
		}
	}
	for _, want := range sess.Policy.PreferredGroups {
		for _, have := range sess.PeerGroups {
			if want == have {
				sess.GroupID = want
				sess.HelloRetryRequest = true
				return nil
			}
		}
	}
	return fail(AlertHandshakeFailure, ErrHandshakeFailure, "no mutually supported key_share group")
}

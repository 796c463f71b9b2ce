package tlsext

// Grounded on the pre_shared_key row and tls_psk_do_binder
// (RFC 8446 §4.2.11). Binder cryptography itself lives in binder.go; this
// leaf only parses/constructs the wire shapes and records where the
// binders list starts, so a caller can truncate the transcript correctly
// before calling ComputeBinder/VerifyBinder.

func parsePSKCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	identities, ok := r.ReadUint16LengthPrefixed()
	if !ok || identities.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed pre_shared_key identities")
	}
	var ids [][]byte
	for !identities.Empty() {
		id, ok := identities.ReadUint16LengthPrefixed()
		if !ok || id.Empty() {
			return fail(AlertDecodeError, ErrDecodeError, "malformed pre_shared_key identity")
		}
		_, ok = identities.ReadUint16()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "malformed pre_shared_key identity (age high half)")
		}
		_, ok = identities.ReadUint16()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "malformed pre_shared_key identity (age low half)")
		}
		ids = append(ids, append([]byte(nil), id.Bytes()...))
	}

	sess.PSKBindersEncodedLen = r.Remaining()
	binders, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() || binders.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed pre_shared_key binders")
	}
	var bs [][]byte
	for !binders.Empty() {
		b, ok := binders.ReadUint8LengthPrefixed()
		if !ok || b.Empty() {
			return fail(AlertDecodeError, ErrDecodeError, "malformed pre_shared_key binder")
		}
		bs = append(bs, append([]byte(nil), b.Bytes()...))
	}
	if len(bs) != len(ids) {
		return fail(AlertIllegalParameter, ErrIllegalParameter, "pre_shared_key binder count does not match identity count")
	}
	sess.PSKIdentities = ids
	sess.PSKBinders = bs
	return nil
}

func parsePSKSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	idx, ok := r.ReadUint16()
	if !ok || !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed pre_shared_key selected_identity")
	}
	if int(idx) >= len(sess.PSKIdentities) {
		return fail(AlertIllegalParameter, ErrIllegalParameter, "selected_identity out of range")
	}
	sess.PSKSelected = int(idx)
	return nil
}

// constructPSKCTOS writes a single external PSK identity with a
// zero-filled binder placeholder of binderLen bytes; the caller must
// locate and overwrite that placeholder with ComputeBinder's output once
// the full ClientHello has been serialised (the binder itself can only be
// computed after the message containing it has otherwise been built).
func constructPSKCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if len(sess.Policy.PSKIdentity) == 0 || len(sess.Policy.PSKKey) == 0 {
		return ExtNotSent, nil
	}
	const binderLen = 32 // SHA-256 HMAC output; see binder.go.
	w.PutUint16LengthPrefixed(func(identities ExtensionWriter) {
		identities.PutUint16LengthPrefixed(func(id ExtensionWriter) {
			id.PutBytes(sess.Policy.PSKIdentity)
		})
		identities.PutUint16(0) // obfuscated_ticket_age high half
		identities.PutUint16(0) // obfuscated_ticket_age low half
	})
	w.PutUint16LengthPrefixed(func(binders ExtensionWriter) {
		binders.PutUint8LengthPrefixed(func(binder ExtensionWriter) {
			binder.PutBytes(make([]byte, binderLen))
		})
	})
	return ExtSent, nil
}

func constructPSKSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.PSKSelected < 0 {
		return ExtNotSent, nil
	}
	w.PutUint16(uint16(sess.PSKSelected))
	return ExtSent, nil
}

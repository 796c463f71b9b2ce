package tlsext

// Grounded on init_psk_kex_modes and the psk_key_exchange_modes row
// (RFC 8446 §4.2.9).

func initPSKKexModes(sess *SessionState, ctx Context) error {
	sess.PSKKexModes = PSKKexModeNone
	return nil
}

func parsePSKKexModesCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint8LengthPrefixed()
	if !ok || !r.Empty() || list.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed psk_key_exchange_modes")
	}
	var modes PSKKexModeSet
	for !list.Empty() {
		m, ok := list.ReadUint8()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "truncated psk_key_exchange_modes entry")
		}
		switch m {
		case 0:
			modes |= PSKKexModeKE
		case 1:
			modes |= PSKKexModeDHEKE
		}
	}
	sess.PSKKexModes = modes
	return nil
}

func constructPSKKexModesCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.PSKKexModes == PSKKexModeNone {
		return ExtNotSent, nil
	}
	w.PutUint8LengthPrefixed(func(inner ExtensionWriter) {
		if sess.PSKKexModes&PSKKexModeKE != 0 {
			inner.PutUint8(0)
		}
		if sess.PSKKexModes&PSKKexModeDHEKE != 0 {
			inner.PutUint8(1)
		}
	})
	return ExtSent, nil
}

package tlsext

// Grounded on final_early_data (RFC 8446 §4.2.10, §2.3). early_data appears
// in three different shapes depending on context: presence-only in a
// ClientHello, presence-only in EncryptedExtensions (the accept signal),
// and a uint32 max_early_data_size in NewSessionTicket.

func parseEarlyDataCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	if !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "early_data in ClientHello must be empty")
	}
	sess.EarlyData = EarlyDataAccepting
	return nil
}

func parseEarlyDataSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	if ctx&TLS13NewSessionTicket != 0 {
		hi, ok1 := r.ReadUint16()
		lo, ok2 := r.ReadUint16()
		if !ok1 || !ok2 || !r.Empty() {
			return fail(AlertDecodeError, ErrDecodeError, "malformed max_early_data_size")
		}
		sess.PeerMaxEarlyData = uint32(hi)<<16 | uint32(lo)
		return nil
	}
	if !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "early_data in EncryptedExtensions must be empty")
	}
	sess.EarlyData = EarlyDataAccepted
	return nil
}

func constructEarlyDataCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.EarlyData != EarlyDataAccepting {
		return ExtNotSent, nil
	}
	return ExtSent, nil
}

func constructEarlyDataSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if ctx&TLS13NewSessionTicket != 0 {
		if sess.Policy.MaxEarlyData == 0 {
			return ExtNotSent, nil
		}
		w.PutUint16(uint16(sess.Policy.MaxEarlyData >> 16))
		w.PutUint16(uint16(sess.Policy.MaxEarlyData))
		return ExtSent, nil
	}
	if sess.EarlyData != EarlyDataAccepted {
		return ExtNotSent, nil
	}
	return ExtSent, nil
}

// finalEarlyData makes the server's accept/reject decision once every
// other ClientHello extension (ALPN, psk, key_share, psk_kex_modes) has
// been parsed; it rejects early_data whenever sess.HelloRetryRequest is set
// (spec.md's Open Question: early_data never survives a retried
// ClientHello).
func finalEarlyData(sess *SessionState, ctx Context, sent bool) error {
	if ctx&ClientHello == 0 || sess.Role != RoleServer {
		return nil
	}
	if !sent {
		sess.EarlyData = EarlyDataNone
		return nil
	}
	if sess.HelloRetryRequest ||
		!sess.Policy.EarlyDataOK ||
		sess.Policy.MaxEarlyData == 0 ||
		!sess.IsResumed ||
		sess.PSKSelected < 0 ||
		sess.PSKKexModes == PSKKexModeNone {
		sess.EarlyData = EarlyDataRejected
		return nil
	}
	sess.EarlyData = EarlyDataAccepted
	return nil
}

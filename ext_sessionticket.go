package tlsext

// Grounded on init_session_ticket / the session_ticket row's parse/construct
// pair in ssl/statem/extensions.c. Ticket issuance and decryption are a
// resumption-layer concern (spec.md §1 Non-goals); this leaf only carries
// the opaque ticket bytes and the "we're willing to issue one" signal.

func initSessionTicket(sess *SessionState, ctx Context) error {
	sess.SessionTicketData = nil
	return nil
}

func parseSessionTicket(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	sess.SessionTicketData = append([]byte(nil), r.Bytes()...)
	if ctx&ClientHello != 0 {
		sess.TicketExpected = true
	}
	return nil
}

func constructSessionTicket(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if ctx&ClientHello != 0 {
		w.PutBytes(sess.SessionTicketData)
		return ExtSent, nil
	}
	if !sess.TicketExpected {
		return ExtNotSent, nil
	}
	return ExtSent, nil
}

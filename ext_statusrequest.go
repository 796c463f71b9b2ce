package tlsext

// Grounded on init_status_request in ssl/statem/extensions.c. OCSP
// stapling's actual responder lookup is out of scope (spec.md §1
// Non-goals); this leaf only negotiates whether it happens.

const statusTypeOCSP = 1

func initStatusRequest(sess *SessionState, ctx Context) error {
	if ctx&ClientHello != 0 {
		sess.StatusRequested = false
	}
	return nil
}

func parseStatusRequestCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	statusType, ok := r.ReadUint8()
	if !ok {
		return fail(AlertDecodeError, ErrDecodeError, "malformed status_request")
	}
	if statusType == statusTypeOCSP {
		sess.StatusRequested = true
	}
	return nil
}

func parseStatusRequestSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	if ctx&TLS13Certificate != 0 {
		sess.OCSPResponse = append([]byte(nil), r.Bytes()...)
		return nil
	}
	if !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "status_request acknowledgement must be empty")
	}
	sess.StatusRequested = true
	return nil
}

func constructStatusRequestCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if !sess.StatusRequested {
		return ExtNotSent, nil
	}
	w.PutUint8(statusTypeOCSP)
	w.PutUint16LengthPrefixed(func(ExtensionWriter) {}) // no responder ID list
	w.PutUint16LengthPrefixed(func(ExtensionWriter) {}) // no request extensions
	return ExtSent, nil
}

func constructStatusRequestSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if !sess.StatusRequested {
		return ExtNotSent, nil
	}
	if ctx&TLS13Certificate != 0 {
		if len(sess.OCSPResponse) == 0 {
			return ExtNotSent, nil
		}
		w.PutUint8(statusTypeOCSP)
		w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
			// Nested uint24 length would be needed for a real
			// OCSPResponse; this package treats the response as an
			// opaque blob the caller has already framed.
			inner.PutBytes(sess.OCSPResponse)
		})
		return ExtSent, nil
	}
	return ExtSent, nil
}

package tlsext

import "go.uber.org/zap"

// Grounded on init_server_name / tls_parse_ctos_server_name /
// tls_parse_stoc_server_name / tls_construct_ctos_server_name /
// tls_construct_stoc_server_name / final_server_name.

const serverNameTypeHostName = 0

func initServerName(sess *SessionState, ctx Context) error {
	if sess.Role == RoleServer {
		sess.ServerNameDone = false
	}
	return nil
}

func parseServerNameCTOS(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	list, ok := r.ReadUint16LengthPrefixed()
	if !ok || !r.Empty() || list.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "malformed server_name list")
	}
	var found string
	for !list.Empty() {
		nameType, ok := list.ReadUint8()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "truncated server_name entry")
		}
		name, ok := list.ReadUint16LengthPrefixed()
		if !ok {
			return fail(AlertDecodeError, ErrDecodeError, "truncated server_name entry")
		}
		if nameType == serverNameTypeHostName && found == "" {
			if name.Empty() {
				return fail(AlertDecodeError, ErrDecodeError, "empty host_name")
			}
			found = string(name.Bytes())
		}
	}
	if found == "" {
		return fail(AlertIllegalParameter, ErrIllegalParameter, "server_name list has no host_name entry")
	}
	if sess.IsResumed && sess.Session != nil {
		// Resumption must target the same name as the original session;
		// this package leaves that comparison to the caller, which alone
		// knows the stored session's original name.
	}
	sess.ServerName = found
	return nil
}

func parseServerNameSTOC(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error {
	if !r.Empty() {
		return fail(AlertDecodeError, ErrDecodeError, "server_name acknowledgement must be empty")
	}
	sess.ServerNameDone = true
	return nil
}

func constructServerNameCTOS(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if sess.ServerName == "" {
		return ExtNotSent, nil
	}
	w.PutUint16LengthPrefixed(func(list ExtensionWriter) {
		list.PutUint8(serverNameTypeHostName)
		list.PutUint16LengthPrefixed(func(name ExtensionWriter) {
			name.PutBytes([]byte(sess.ServerName))
		})
	})
	return ExtSent, nil
}

func constructServerNameSTOC(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
	if !sess.ServerNameDone {
		return ExtNotSent, nil
	}
	return ExtSent, nil
}

func finalServerName(sess *SessionState, ctx Context, sent bool) error {
	if sess.Role != RoleServer {
		if ctx&TLS13EncryptedExtensions != 0 || ctx&TLS12ServerHello != 0 {
			if sent && sess.ServerName == "" {
				return fail(AlertUnrecognizedName, ErrUnsupportedExtension, "server acknowledged server_name we never sent")
			}
		}
		return nil
	}
	if sess.ServerNameFunc == nil {
		return nil
	}
	result, alert := sess.ServerNameFunc(sess)
	switch result {
	case SNIOk:
		sess.ServerNameDone = true
	case SNINoAck:
		sess.ServerNameDone = false
	case SNIAlertWarning:
		sess.Logger.Warn("server_name callback returned a warning", zap.String("name", sess.ServerName))
	case SNIAlertFatal:
		return fail(alert, ErrHandshakeFailure, "server_name callback rejected %q", sess.ServerName)
	}
	return nil
}

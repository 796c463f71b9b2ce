package tlsext

// InitFunc initialises an extension's scratch session state before
// parsing. It always runs for a relevant context, whether or not the
// extension was actually present in the message being processed.
type InitFunc func(sess *SessionState, ctx Context) error

// ParseFunc parses one extension's body as received from the peer.
// chainIdx identifies the certificate being processed, for Certificate-
// message extensions; it is -1 everywhere else.
type ParseFunc func(sess *SessionState, ctx Context, r ExtensionReader, chainIdx int) error

// ConstructResult is a leaf constructor's verdict, mirroring OpenSSL's
// EXT_RETURN.
type ConstructResult uint8

const (
	ExtNotSent ConstructResult = iota
	ExtSent
	ExtFail
)

// ConstructFunc writes one extension's body (if any) to w and reports
// whether it did so.
type ConstructFunc func(sess *SessionState, w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error)

// FinalFunc runs after every extension in a message has been parsed.
// sent reports whether this extension's row was present in the message
// (regardless of whether Init ran for a context where it wasn't).
type FinalFunc func(sess *SessionState, ctx Context, sent bool) error

// Definition is one immutable row of the extension registry: the type
// code, the contexts it applies to, and up to six optional callbacks. A
// nil callback is a no-op for that phase.
type Definition struct {
	Type          Type
	Context       Context
	Init          InitFunc
	ParseCTOS     ParseFunc
	ParseSTOC     ParseFunc
	ConstructSTOC ConstructFunc
	ConstructCTOS ConstructFunc
	Final         FinalFunc
}

// registry is the fixed-order, compile-time table of built-in extensions.
// Its slot index doubles as the stable identifier used by SentFlags and by
// the raw-extension array (spec.md §4.1). The order here is significant:
// initialisation, parsing, construction, and finalisation all run in this
// order, and later rows may depend on earlier ones (key_share depends on
// supported_groups; ALPN's row is placed after server_name's so that any
// future ALPN finaliser would run after the server_name callback). This
// mirrors ext_defs in ssl/statem/extensions.c index for index, including
// the extensions the distilled spec never names (srp, session_ticket,
// status_request, next_proto_neg, encrypt_then_mac,
// signed_certificate_timestamp, cryptopro_bug, certificate_authorities,
// padding) — see SPEC_FULL.md §5.
var registry = []Definition{
	{ // 0
		Type:          TypeRenegotiationInfo,
		Context:       ClientHello | TLS12ServerHello | SSL3Allowed | TLS12AndBelowOnly,
		ParseCTOS:     parseRenegotiateCTOS,
		ParseSTOC:     parseRenegotiateSTOC,
		ConstructSTOC: constructRenegotiateSTOC,
		ConstructCTOS: constructRenegotiateCTOS,
		Final:         finalRenegotiate,
	},
	{ // 1
		Type:          TypeServerName,
		Context:       ClientHello | TLS12ServerHello | TLS13EncryptedExtensions,
		Init:          initServerName,
		ParseCTOS:     parseServerNameCTOS,
		ParseSTOC:     parseServerNameSTOC,
		ConstructSTOC: constructServerNameSTOC,
		ConstructCTOS: constructServerNameCTOS,
		Final:         finalServerName,
	},
	{ // 2
		Type:          TypeSRP,
		Context:       ClientHello | TLS12AndBelowOnly,
		Init:          initSRP,
		ParseCTOS:     parseSRPCTOS,
		ConstructCTOS: constructSRPCTOS,
	},
	{ // 3
		Type:          TypeECPointFormats,
		Context:       ClientHello | TLS12ServerHello | TLS12AndBelowOnly,
		ParseCTOS:     parseECPointFormats,
		ParseSTOC:     parseECPointFormats,
		ConstructSTOC: constructECPointFormats,
		ConstructCTOS: constructECPointFormats,
		Final:         finalECPointFormats,
	},
	{ // 4
		Type:          TypeSupportedGroups,
		Context:       ClientHello | TLS13EncryptedExtensions,
		ParseCTOS:     parseSupportedGroupsCTOS,
		ConstructSTOC: constructSupportedGroupsSTOC,
		ConstructCTOS: constructSupportedGroupsCTOS,
	},
	{ // 5
		Type:          TypeSessionTicket,
		Context:       ClientHello | TLS12ServerHello | TLS12AndBelowOnly,
		Init:          initSessionTicket,
		ParseCTOS:     parseSessionTicket,
		ParseSTOC:     parseSessionTicket,
		ConstructSTOC: constructSessionTicket,
		ConstructCTOS: constructSessionTicket,
	},
	{ // 6
		Type:          TypeSignatureAlgorithms,
		Context:       ClientHello | TLS13CertificateRequest,
		Init:          initSigAlgs,
		ParseCTOS:     parseSigAlgs,
		ParseSTOC:     parseSigAlgs,
		ConstructSTOC: constructSigAlgs,
		ConstructCTOS: constructSigAlgs,
		Final:         finalSigAlgs,
	},
	{ // 7
		Type:          TypeStatusRequest,
		Context:       ClientHello | TLS12ServerHello | TLS13Certificate,
		Init:          initStatusRequest,
		ParseCTOS:     parseStatusRequestCTOS,
		ParseSTOC:     parseStatusRequestSTOC,
		ConstructSTOC: constructStatusRequestSTOC,
		ConstructCTOS: constructStatusRequestCTOS,
	},
	{ // 8
		Type:          TypeNextProtoNeg,
		Context:       ClientHello | TLS12ServerHello | TLS12AndBelowOnly,
		Init:          initNPN,
		ParseCTOS:     parseNPNCTOS,
		ParseSTOC:     parseNPNSTOC,
		ConstructSTOC: constructNPNSTOC,
		ConstructCTOS: constructNPNCTOS,
	},
	{ // 9: must stay after server_name (index 1) so any future ALPN
		// finaliser would run after the server_name callback.
		Type:          TypeALPN,
		Context:       ClientHello | TLS12ServerHello | TLS13EncryptedExtensions,
		Init:          initALPN,
		ParseCTOS:     parseALPNCTOS,
		ParseSTOC:     parseALPNSTOC,
		ConstructSTOC: constructALPNSTOC,
		ConstructCTOS: constructALPNCTOS,
	},
	{ // 10
		Type:          TypeUseSRTP,
		Context:       ClientHello | TLS12ServerHello | TLS13EncryptedExtensions | DTLSOnly,
		Init:          initSRTP,
		ParseCTOS:     parseSRTPCTOS,
		ParseSTOC:     parseSRTPSTOC,
		ConstructSTOC: constructSRTPSTOC,
		ConstructCTOS: constructSRTPCTOS,
	},
	{ // 11
		Type:          TypeEncryptThenMAC,
		Context:       ClientHello | TLS12ServerHello | TLS12AndBelowOnly,
		Init:          initETM,
		ParseCTOS:     parseETM,
		ParseSTOC:     parseETM,
		ConstructSTOC: constructETM,
		ConstructCTOS: constructETM,
	},
	{ // 12: no server-side support built in; a custom registry can
		// override it (the one documented exception to "custom
		// extensions cannot override built-ins", spec.md §4.2).
		Type:      TypeSignedCertificateTimestamp,
		Context:   ClientHello | TLS12ServerHello | TLS13Certificate,
		ParseSTOC: parseSCTSTOC,
		ConstructCTOS: constructSCTCTOS,
	},
	{ // 13
		Type:          TypeExtendedMasterSecret,
		Context:       ClientHello | TLS12ServerHello | TLS12AndBelowOnly,
		Init:          initEMS,
		ParseCTOS:     parseEMS,
		ParseSTOC:     parseEMS,
		ConstructSTOC: constructEMS,
		ConstructCTOS: constructEMS,
		Final:         finalEMS,
	},
	{ // 14
		Type:          TypeSupportedVersions,
		Context:       ClientHello | TLSImplementationOnly | TLS13Only,
		ConstructCTOS: constructSupportedVersionsCTOS,
	},
	{ // 15
		Type:          TypePSKKeyExchangeModes,
		Context:       ClientHello | TLSImplementationOnly | TLS13Only,
		Init:          initPSKKexModes,
		ParseCTOS:     parsePSKKexModesCTOS,
		ConstructCTOS: constructPSKKexModesCTOS,
	},
	{ // 16: must stay after supported_groups (index 4) so
		// final_key_share can rely on PeerGroups having been parsed.
		Type:          TypeKeyShare,
		Context:       ClientHello | TLS13ServerHello | TLS13HelloRetryRequest | TLSImplementationOnly | TLS13Only,
		ParseCTOS:     parseKeyShareCTOS,
		ParseSTOC:     parseKeyShareSTOC,
		ConstructSTOC: constructKeyShareSTOC,
		ConstructCTOS: constructKeyShareCTOS,
		Final:         finalKeyShare,
	},
	{ // 17: server sends this in HelloRetryRequest (STOC direction), the
		// client echoes it back in its second ClientHello (CTOS direction).
		Type:          TypeCookie,
		Context:       ClientHello | TLS13HelloRetryRequest | TLSImplementationOnly | TLS13Only,
		ParseCTOS:     parseCookieCTOS,
		ParseSTOC:     parseCookieSTOC,
		ConstructSTOC: constructCookieSTOC,
		ConstructCTOS: constructCookieCTOS,
	},
	{ // 18: unsolicited ServerHello-only row, construct-only.
		Type:          TypeCryptoProBug,
		Context:       TLS12ServerHello | TLS12AndBelowOnly,
		ConstructSTOC: constructCryptoProBug,
	},
	{ // 19
		Type:          TypeEarlyData,
		Context:       ClientHello | TLS13EncryptedExtensions | TLS13NewSessionTicket,
		ParseCTOS:     parseEarlyDataCTOS,
		ParseSTOC:     parseEarlyDataSTOC,
		ConstructSTOC: constructEarlyDataSTOC,
		ConstructCTOS: constructEarlyDataCTOS,
		Final:         finalEarlyData,
	},
	{ // 20
		Type:          TypeCertificateAuthorities,
		Context:       ClientHello | TLS13CertificateRequest | TLS13Only,
		Init:          initCertificateAuthorities,
		ParseCTOS:     parseCertificateAuthorities,
		ParseSTOC:     parseCertificateAuthorities,
		ConstructSTOC: constructCertificateAuthorities,
		ConstructCTOS: constructCertificateAuthorities,
	},
	{ // 21: must be immediately before pre_shared_key.
		Type:          TypePadding,
		Context:       ClientHello,
		ConstructCTOS: constructPadding,
	},
	{ // 22: required by RFC 8446 to always be the last extension in a
		// ClientHello; enforced positionally by the collector, not here.
		Type:          TypePreSharedKey,
		Context:       ClientHello | TLS13ServerHello | TLSImplementationOnly | TLS13Only,
		ParseCTOS:     parsePSKCTOS,
		ParseSTOC:     parsePSKSTOC,
		ConstructSTOC: constructPSKSTOC,
		ConstructCTOS: constructPSKCTOS,
	},
}

// typeIndex maps a built-in extension's wire type to its registry index,
// built once from the table above.
var typeIndex = func() map[Type]int {
	m := make(map[Type]int, len(registry))
	for i, d := range registry {
		if d.Type != TypeInvalid {
			m[d.Type] = i
		}
	}
	return m
}()

// validateContext is the positional check from spec.md §4.1:
// validate_context(ext_ctx, current_ctx).
func validateContext(sess *SessionState, extCtx, currentCtx Context) bool {
	if extCtx&currentCtx == 0 {
		return false
	}
	if sess.IsDTLS {
		if extCtx&TLSOnly != 0 {
			return false
		}
	} else if extCtx&DTLSOnly != 0 {
		return false
	}
	return true
}

// extensionIsRelevant is the runtime check from spec.md §4.1:
// extension_is_relevant.
func extensionIsRelevant(sess *SessionState, extCtx, currentCtx Context) bool {
	if sess.IsDTLS && extCtx&TLSImplementationOnly != 0 {
		return false
	}
	if sess.Version == VersionSSL30 && extCtx&SSL3Allowed == 0 {
		return false
	}
	if sess.IsTLS13() && extCtx&TLS12AndBelowOnly != 0 {
		return false
	}
	if !sess.IsTLS13() && extCtx&TLS13Only != 0 {
		return false
	}
	if sess.IsResumed && extCtx&IgnoreOnResumption != 0 {
		return false
	}
	return true
}

// shouldAddExtension is the constructor-side relevance check from
// spec.md §4.1: should_add_extension.
func shouldAddExtension(sess *SessionState, extCtx, currentCtx Context, maxVersion Version) bool {
	if extCtx&currentCtx == 0 {
		return false
	}
	if sess.IsDTLS && extCtx&TLSImplementationOnly != 0 {
		return false
	}
	if sess.Version == VersionSSL30 && extCtx&SSL3Allowed == 0 {
		return false
	}
	if sess.IsTLS13() && extCtx&TLS12AndBelowOnly != 0 {
		return false
	}
	if !sess.IsTLS13() && extCtx&TLS13Only != 0 && currentCtx&ClientHello == 0 {
		return false
	}
	if extCtx&TLS13Only != 0 && currentCtx&ClientHello != 0 &&
		(sess.IsDTLS || maxVersion < VersionTLS13) {
		return false
	}
	return true
}

// solicitedResponseContexts is the set of message sites where a built-in
// extension may carry a response the local endpoint did not request
// (spec.md §4.2 step 7: ClientHello, CertificateRequest, NewSessionTicket).
const solicitedResponseContexts = ClientHello | TLS13CertificateRequest | TLS13NewSessionTicket

// unsolicitedExceptions is the fixed set of built-in types allowed to
// appear unsolicited (spec.md §3 Invariants: Solicitedness exceptions).
var unsolicitedExceptions = map[Type]bool{
	TypeCookie:                     true,
	TypeRenegotiationInfo:          true,
	TypeSignedCertificateTimestamp: true,
}

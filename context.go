package tlsext

// Context is a bitset describing where an extension may appear and when.
// A "current context" passed to the collector, dispatcher, and constructor
// always contains exactly one message-site bit; an extension's own Context
// in its [Definition] row may combine any number of site bits with the
// version/transport/behaviour gates below.
type Context uint32

// Message sites. Exactly one is set in any "current context" value.
const (
	ClientHello Context = 1 << iota
	TLS12ServerHello
	TLS13ServerHello
	TLS13EncryptedExtensions
	TLS13HelloRetryRequest
	TLS13CertificateRequest
	TLS13Certificate
	TLS13NewSessionTicket

	// Version/transport gates.
	SSL3Allowed
	TLS12AndBelowOnly
	TLS13Only
	TLSOnly
	DTLSOnly
	TLSImplementationOnly

	// Behaviour gates.
	IgnoreOnResumption
)

// messageSites is every bit that identifies a handshake message, as opposed
// to a version/transport/behaviour gate.
const messageSites = ClientHello | TLS12ServerHello | TLS13ServerHello |
	TLS13EncryptedExtensions | TLS13HelloRetryRequest |
	TLS13CertificateRequest | TLS13Certificate | TLS13NewSessionTicket

// Intersects reports whether c and other share at least one bit.
func (c Context) Intersects(other Context) bool {
	return c&other != 0
}

// Has reports whether c contains every bit set in other.
func (c Context) Has(other Context) bool {
	return c&other == other
}

// String names the message-site bits present in c, for logging.
func (c Context) String() string {
	names := []struct {
		bit  Context
		name string
	}{
		{ClientHello, "ClientHello"},
		{TLS12ServerHello, "TLS1.2-ServerHello"},
		{TLS13ServerHello, "TLS1.3-ServerHello"},
		{TLS13EncryptedExtensions, "EncryptedExtensions"},
		{TLS13HelloRetryRequest, "HelloRetryRequest"},
		{TLS13CertificateRequest, "CertificateRequest"},
		{TLS13Certificate, "Certificate"},
		{TLS13NewSessionTicket, "NewSessionTicket"},
	}
	out := ""
	for _, n := range names {
		if c&n.bit != 0 {
			if out != "" {
				out += "|"
			}
			out += n.name
		}
	}
	if out == "" {
		return "none"
	}
	return out
}

// Type is a TLS ExtensionType, the 16-bit wire value that identifies an
// extension. TypeInvalid is outside the 16-bit wire space and is used only
// as the tombstone row type for a compile-time-disabled built-in extension,
// so that table indices stay stable.
type Type uint32

const TypeInvalid Type = 0x10000

// Built-in extension type codes (RFC numbers in comments for reference).
const (
	TypeRenegotiationInfo          Type = 0xff01 // RFC 5746
	TypeServerName                 Type = 0      // RFC 6066
	TypeSRP                        Type = 12     // RFC 5054
	TypeECPointFormats             Type = 11     // RFC 8422
	TypeSupportedGroups            Type = 10     // RFC 8446
	TypeSessionTicket              Type = 35     // RFC 5077
	TypeSignatureAlgorithms        Type = 13     // RFC 8446
	TypeStatusRequest              Type = 5      // RFC 6066
	TypeNextProtoNeg               Type = 13172  // draft-agl-tls-nextprotoneg
	TypeALPN                       Type = 16     // RFC 7301
	TypeUseSRTP                    Type = 14     // RFC 5764
	TypeEncryptThenMAC             Type = 22     // RFC 7366
	TypeSignedCertificateTimestamp Type = 18     // RFC 6962
	TypeExtendedMasterSecret       Type = 23     // RFC 7627
	TypeSupportedVersions          Type = 43     // RFC 8446
	TypePSKKeyExchangeModes        Type = 45     // RFC 8446
	TypeKeyShare                   Type = 51     // RFC 8446
	TypeCookie                     Type = 44     // RFC 8446
	TypeCryptoProBug               Type = 0xfde8 // OpenSSL SSL_OP_CRYPTOPRO_TLSEXT_BUG
	TypeEarlyData                  Type = 42     // RFC 8446
	TypeCertificateAuthorities     Type = 47     // RFC 8446
	TypePadding                    Type = 21     // RFC 7685
	TypePreSharedKey               Type = 41     // RFC 8446
)

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

var typeNames = map[Type]string{
	TypeServerName:                 "server_name",
	TypeSRP:                        "srp",
	TypeECPointFormats:             "ec_point_formats",
	TypeSupportedGroups:            "supported_groups",
	TypeSessionTicket:              "session_ticket",
	TypeSignatureAlgorithms:        "signature_algorithms",
	TypeStatusRequest:              "status_request",
	TypeNextProtoNeg:               "next_proto_neg",
	TypeALPN:                       "application_layer_protocol_negotiation",
	TypeUseSRTP:                    "use_srtp",
	TypeEncryptThenMAC:             "encrypt_then_mac",
	TypeSignedCertificateTimestamp: "signed_certificate_timestamp",
	TypeExtendedMasterSecret:       "extended_master_secret",
	TypeSupportedVersions:          "supported_versions",
	TypePSKKeyExchangeModes:        "psk_key_exchange_modes",
	TypeKeyShare:                   "key_share",
	TypeCookie:                     "cookie",
	TypeCryptoProBug:               "cryptopro_bug",
	TypeEarlyData:                  "early_data",
	TypeCertificateAuthorities:     "certificate_authorities",
	TypePadding:                    "padding",
	TypePreSharedKey:               "pre_shared_key",
	TypeRenegotiationInfo:          "renegotiate",
}

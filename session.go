package tlsext

import "go.uber.org/zap"

// Role identifies which side of the handshake a SessionState represents.
// Many finalisers behave differently for a server than for a client.
type Role uint8

const (
	RoleServer Role = iota
	RoleClient
)

// Version is a TLS/DTLS protocol version, using the wire values (e.g.
// 0x0303 for TLS 1.2, 0x0304 for TLS 1.3).
type Version uint16

const (
	VersionSSL30 Version = 0x0300
	VersionTLS12 Version = 0x0303
	VersionTLS13 Version = 0x0304
)

// EarlyDataState is the server's early_data acceptance decision, threaded
// through final_early_data (spec.md §4.5) and read by the record layer to
// decide whether to switch the read cipher to the early-data epoch.
type EarlyDataState uint8

const (
	EarlyDataNone EarlyDataState = iota
	EarlyDataAccepting
	EarlyDataAccepted
	EarlyDataRejected
)

// SNIResult is the application server_name callback's verdict, mapped from
// final_server_name's switch over SSL_TLSEXT_ERR_* in the original source.
type SNIResult uint8

const (
	SNIOk SNIResult = iota
	SNINoAck
	SNIAlertWarning
	SNIAlertFatal
)

// CipherInfo narrows the negotiated cipher suite down to the two bits the
// ec_point_formats constructor and finaliser actually need to know: whether
// key exchange and/or authentication use elliptic curves. The core never
// picks or evaluates cipher suites itself (spec.md §1 Non-goals).
type CipherInfo struct {
	ECDHEKeyExchange bool
	ECDSAAuthSig     bool
}

// ServerNameCallback is the narrow servername-dispatch contract from
// spec.md §6. It returns the application's verdict and, for a non-OK
// verdict that is fatal, the alert to send.
type ServerNameCallback func(sess *SessionState) (SNIResult, Alert)

// DebugCallback mirrors the original's s->ext.debug_cb: invoked with every
// raw extension the collector sees, before it is parsed.
type DebugCallback func(clientSide bool, t Type, data []byte)

// CustomRegistry is the narrow contract to an externally supplied registry
// of application-defined extensions (spec.md §6). The core only ever calls
// these five methods; it never inspects a custom extension's own state.
type CustomRegistry interface {
	// Init (re-)initialises the registry at the start of ClientHello
	// processing, as the server does when parsing and the client does
	// when constructing.
	Init()
	// Find looks up a custom handler for type t, applicable to the
	// given role (the role that would PARSE this extension: RoleServer
	// for a ClientHello-borne extension, RoleClient for one borne by a
	// server response). offset is this handler's position among the
	// custom registry's own entries, used to compute its slot index as
	// numBuiltin+offset.
	Find(role Role, t Type) (ok bool, offset int)
	// Parse parses a recognised custom extension's body. ctx is the
	// current message context, chainIdx identifies the certificate
	// being processed for Certificate-message extensions.
	Parse(ctx Context, t Type, data []byte, chainIdx int) error
	// Add constructs any custom extensions this registry wants to send
	// for the given context, writing them with w.
	Add(w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) error
	// Count returns how many slots this registry currently occupies,
	// used to size the raw-extension array.
	Count() int
}

// StoredSession is the narrow view of a resumable session (spec.md §3, "the
// stored session's EMS flag", §4.6). Inside this package only final_ems
// reads it, through ExtendedMasterSecret; the other accessors are not read
// here. tlsext/sessioncache provides an implementation backed by a bounded
// LRU.
type StoredSession interface {
	MasterKey() []byte
	ExtendedMasterSecret() bool
	TicketNonce() []byte
	ALPNSelected() string
}

// Policy carries the caller-configured, per-connection behaviour switches
// that OpenSSL keeps as SSL_OP_* bits on the SSL object. There is no file
// or environment-variable loader here (spec.md §1 scopes configuration
// loading out entirely); a caller populates Policy directly.
type Policy struct {
	// LegacyServerConnect allows connecting to a peer that doesn't
	// support safe renegotiation (SSL_OP_LEGACY_SERVER_CONNECT).
	LegacyServerConnect bool
	// AllowUnsafeLegacyRenegotiation disables the safe-renegotiation
	// check entirely (SSL_OP_ALLOW_UNSAFE_LEGACY_RENEGOTIATION).
	AllowUnsafeLegacyRenegotiation bool
	// EarlyDataOK is the local policy bit gating early-data acceptance.
	EarlyDataOK bool
	// MaxEarlyData is the maximum early application data this endpoint
	// is willing to accept; zero disables early data entirely.
	MaxEarlyData uint32
	// PreferredGroups is this endpoint's ordered key-exchange group
	// preference, used by final_key_share to pick an HRR group.
	PreferredGroups []uint16
	// SignatureAlgorithms is this endpoint's advertised/requested
	// signature_algorithms list.
	SignatureAlgorithms []uint16
	// SupportedVersions is this endpoint's advertised TLS version list,
	// most preferred first.
	SupportedVersions []uint16
	// ALPNProtocols is the server's supported-protocol list used to pick
	// an ALPN match against the client's offer.
	ALPNProtocols []string
	// NPNProtocols is the server's NPN protocol list.
	NPNProtocols []string
	// SRTPProfiles is this endpoint's offered DTLS-SRTP profile list.
	SRTPProfiles []uint16
	// CryptoProBug emits the OpenSSL CryptoPro-interop extension when set.
	CryptoProBug bool
	// CertificateAuthorities is the local set of CA distinguished names to
	// advertise in certificate_authorities.
	CertificateAuthorities [][]byte
	// PadClientHelloToLength, if positive, is the number of zero bytes the
	// padding extension (RFC 7685) carries; it is not a target ClientHello
	// length (see ext_padding.go).
	PadClientHelloToLength int
	// PSKIdentity and PSKKey configure a single externally-provisioned
	// PSK (as opposed to a resumption ticket) for the client to offer.
	PSKIdentity []byte
	PSKKey      []byte
	// RequireEMS rejects resuming a session that lacks the extended
	// master secret flag, per RFC 7627 §5.3.
	RequireEMS bool
}

// SessionState is the explicit, per-handshake value threaded through every
// operation in this package (spec.md §9: "there is no global"). It holds
// both the extflags bitset (SentFlags) and the extension-specific scratch
// fields the original keeps directly on SSL/SSL3_STATE.
type SessionState struct {
	Role       Role
	Version    Version
	MaxVersion Version
	IsDTLS     bool
	IsResumed  bool
	Renegotiating bool
	Cipher     CipherInfo

	// SentFlags[i] records whether row i's extension was sent by this
	// endpoint earlier in the handshake (the "SENT" bit). Sized to the
	// registry length by NewSessionState.
	SentFlags []bool

	// Per-extension scratch state, the Go equivalent of the assorted
	// s->ext.* / s->s3->tmp.* fields in the original.
	ServerName      string
	ServerNameDone  bool
	ALPNProposed    []string
	ALPNSelected    string
	PeerSigAlgs     []uint16
	PeerGroups      []uint16
	ECPointFormats  []byte
	PSKKexModes     PSKKexModeSet
	EarlyData       EarlyDataState
	PeerMaxEarlyData uint32
	HelloRetryRequest bool
	GroupID         uint16
	TicketExpected  bool
	UseETM          bool
	ReceivedEMS     bool
	PeerCANames     [][]byte

	RenegotiateReceived bool
	SRPLoginName        string
	SessionTicketData   []byte
	StatusRequested     bool
	OCSPResponse        []byte
	NPNSelected         string
	SRTPSelected        uint16
	SCTList             []byte
	Cookie              []byte

	// PeerKeyShares holds the raw (group, key_exchange) pairs the peer
	// offered; this package stores and selects among them but never
	// performs the ECDHE/ML-KEM math itself (spec.md §1 Non-goals).
	PeerKeyShares    map[uint16][]byte
	KeyShareSelected uint16
	KeyShareOwnPublic []byte

	PSKIdentities [][]byte
	PSKBinders    [][]byte
	// PSKSelected is the index into PSKIdentities the server chose to
	// resume, or -1 if none matched.
	PSKSelected int
	// PSKBindersEncodedLen is the wire-encoded size of the binders list
	// (its 2-byte length prefix plus contents), the suffix the binder
	// engine's transcript must exclude per RFC 8446 §4.2.11.2.
	PSKBindersEncodedLen int

	// EarlySecret holds the TLS 1.3 early secret for the record layer's
	// early traffic keys. Nothing in this package sets it: ComputeBinder
	// derives the early secret internally and does not store it here.
	EarlySecret []byte

	Session StoredSession

	Policy Policy

	Custom CustomRegistry

	Logger         *zap.Logger
	DebugCallback  DebugCallback
	ServerNameFunc ServerNameCallback
}

// PSKKexModeSet is a bitset over the TLS 1.3 psk_key_exchange_modes values.
type PSKKexModeSet uint8

const (
	PSKKexModeNone PSKKexModeSet = 0
	PSKKexModeKE   PSKKexModeSet = 1 << 0 // psk_ke
	PSKKexModeDHEKE PSKKexModeSet = 1 << 1 // psk_dhe_ke
)

// Option configures a SessionState at construction time.
type Option func(*SessionState)

// WithPolicy installs the session's policy bits.
func WithPolicy(p Policy) Option { return func(s *SessionState) { s.Policy = p } }

// WithLogger installs a structured logger; a nil logger is replaced with
// zap.NewNop() so callers never need to nil-check s.Logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *SessionState) {
		if l == nil {
			l = zap.NewNop()
		}
		s.Logger = l
	}
}

// WithDebugCallback installs the raw per-extension debug hook (spec.md
// §4.2 step 9), independent of structured logging.
func WithDebugCallback(cb DebugCallback) Option {
	return func(s *SessionState) { s.DebugCallback = cb }
}

// WithServerNameCallback installs the application's SNI dispatch callback
// used by final_server_name.
func WithServerNameCallback(cb ServerNameCallback) Option {
	return func(s *SessionState) { s.ServerNameFunc = cb }
}

// WithCustomRegistry installs the external custom-extension bridge.
func WithCustomRegistry(r CustomRegistry) Option {
	return func(s *SessionState) { s.Custom = r }
}

// WithStoredSession installs the resumed session a resumption handshake is
// being matched against (nil for a full handshake).
func WithStoredSession(sess StoredSession) Option {
	return func(s *SessionState) { s.Session = sess; s.IsResumed = sess != nil }
}

// NewSessionState builds a SessionState ready to drive one handshake.
func NewSessionState(role Role, opts ...Option) *SessionState {
	s := &SessionState{
		Role:       role,
		SentFlags:  make([]bool, len(registry)),
		Logger:     zap.NewNop(),
		PSKSelected: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.SentFlags == nil || len(s.SentFlags) < len(registry) {
		s.SentFlags = make([]bool, len(registry))
	}
	return s
}

// IsTLS13 reports whether the negotiated version is TLS 1.3.
func (s *SessionState) IsTLS13() bool { return s.Version == VersionTLS13 }

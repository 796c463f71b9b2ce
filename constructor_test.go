package tlsext

import (
	"testing"

	"github.com/tlsext/tlsext/wire"
)

func TestConstructAllRoundTripsServerName(t *testing.T) {
	sess := NewSessionState(RoleClient)
	sess.Version = VersionTLS12
	sess.ServerName = "example.com"

	out, aerr := ConstructAll(sess, ClientHello, VersionTLS12, -1)
	if aerr != nil {
		t.Fatalf("ConstructAll: %v", aerr)
	}

	server := NewSessionState(RoleServer)
	server.Version = VersionTLS12
	raws, aerr := CollectExtensions(server, ClientHello, wire.NewReader(out), false)
	if aerr != nil {
		t.Fatalf("CollectExtensions: %v", aerr)
	}
	if aerr := ParseAll(server, ClientHello, raws, -1); aerr != nil {
		t.Fatalf("ParseAll: %v", aerr)
	}
	if server.ServerName != "example.com" {
		t.Fatalf("ServerName = %q, want example.com", server.ServerName)
	}
}

func TestConstructAllOmitsExtensionsWithNothingToSend(t *testing.T) {
	sess := NewSessionState(RoleClient)
	sess.Version = VersionTLS12

	out, aerr := ConstructAll(sess, ClientHello, VersionTLS12, -1)
	if aerr != nil {
		t.Fatalf("ConstructAll: %v", aerr)
	}
	// renegotiation_info (RFC 5746), session_ticket, encrypt_then_mac,
	// signed_certificate_timestamp and extended_master_secret are sent
	// by default in a TLS 1.2 ClientHello; everything else this leaves
	// unconfigured should be absent.
	server := NewSessionState(RoleServer)
	server.Version = VersionTLS12
	raws, aerr := CollectExtensions(server, ClientHello, wire.NewReader(out), false)
	if aerr != nil {
		t.Fatalf("CollectExtensions: %v", aerr)
	}
	present := 0
	for _, r := range raws {
		if r.Present {
			present++
		}
	}
	want := []Type{TypeRenegotiationInfo, TypeSessionTicket, TypeEncryptThenMAC,
		TypeSignedCertificateTimestamp, TypeExtendedMasterSecret}
	for _, typ := range want {
		if !raws[typeIndex[typ]].Present {
			t.Fatalf("expected %s present", typ)
		}
	}
	if present != len(want) {
		t.Fatalf("expected only %d default extensions present, got %d extensions present", len(want), present)
	}
}

func TestConstructAllMarksSentFlags(t *testing.T) {
	sess := NewSessionState(RoleClient)
	sess.Version = VersionTLS12
	sess.Policy.ALPNProtocols = []string{"h2", "http/1.1"}

	if _, aerr := ConstructAll(sess, ClientHello, VersionTLS12, -1); aerr != nil {
		t.Fatalf("ConstructAll: %v", aerr)
	}
	if !sess.SentFlags[typeIndex[TypeALPN]] {
		t.Fatal("expected alpn's SentFlags bit to be set after constructing it")
	}
}

func TestConstructAllRespectsTLS13OnlyGate(t *testing.T) {
	sess := NewSessionState(RoleClient)
	sess.Version = VersionTLS12
	sess.Policy.SupportedVersions = []uint16{0x0304, 0x0303}

	out, aerr := ConstructAll(sess, ClientHello, VersionTLS12, -1)
	if aerr != nil {
		t.Fatalf("ConstructAll: %v", aerr)
	}
	server := NewSessionState(RoleServer)
	server.Version = VersionTLS12
	raws, aerr := CollectExtensions(server, ClientHello, wire.NewReader(out), false)
	if aerr != nil {
		t.Fatalf("CollectExtensions: %v", aerr)
	}
	if raws[typeIndex[TypeSupportedVersions]].Present {
		t.Fatal("supported_versions is TLS13Only and maxVersion is TLS 1.2; expected it to be omitted")
	}
}

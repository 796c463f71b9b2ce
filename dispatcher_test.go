package tlsext

import (
	"testing"

	"github.com/tlsext/tlsext/wire"
)

func TestParseAllServerName(t *testing.T) {
	sni, err := func() ([]byte, error) {
		w, finish := wire.NewBuilder()
		w.PutUint16LengthPrefixed(func(list wire.Writer) {
			list.PutUint8(0)
			list.PutUint16LengthPrefixed(func(name wire.Writer) {
				name.PutBytes([]byte("example.com"))
			})
		})
		return finish()
	}()
	if err != nil {
		t.Fatal(err)
	}
	raw := buildExtensionBlock(t, []testExt{{TypeServerName, sni}})

	sess := NewSessionState(RoleServer)
	raws, aerr := CollectExtensions(sess, ClientHello, wire.NewReader(raw), false)
	if aerr != nil {
		t.Fatalf("CollectExtensions: %v", aerr)
	}
	if aerr := ParseAll(sess, ClientHello, raws, -1); aerr != nil {
		t.Fatalf("ParseAll: %v", aerr)
	}
	if sess.ServerName != "example.com" {
		t.Fatalf("ServerName = %q, want example.com", sess.ServerName)
	}
}

func TestParseAllRejectsUnsolicitedResponseExtension(t *testing.T) {
	// The client never offered ALPN, so a client parsing an ALPN
	// extension in the ServerHello must reject it as unsolicited.
	body := []byte{0, 3, 2, 'h', '2'}
	raw := buildExtensionBlock(t, []testExt{{TypeALPN, body}})

	sess := NewSessionState(RoleClient)
	sess.Version = VersionTLS12
	raws, aerr := CollectExtensions(sess, TLS12ServerHello, wire.NewReader(raw), true)
	if aerr != nil {
		t.Fatalf("CollectExtensions: %v", aerr)
	}
	aerr = ParseAll(sess, TLS12ServerHello, raws, -1)
	if aerr == nil {
		t.Fatal("expected unsolicited alpn extension to be rejected")
	}
	if aerr.Alert != AlertUnsupportedExt {
		t.Fatalf("got alert %d, want %d", aerr.Alert, AlertUnsupportedExt)
	}
}

func TestParseAllAcceptsSolicitedResponseExtension(t *testing.T) {
	body := []byte{0, 3, 2, 'h', '2'}
	raw := buildExtensionBlock(t, []testExt{{TypeALPN, body}})

	sess := NewSessionState(RoleClient)
	sess.Version = VersionTLS12
	sess.SentFlags[typeIndex[TypeALPN]] = true
	raws, aerr := CollectExtensions(sess, TLS12ServerHello, wire.NewReader(raw), true)
	if aerr != nil {
		t.Fatalf("CollectExtensions: %v", aerr)
	}
	if aerr := ParseAll(sess, TLS12ServerHello, raws, -1); aerr != nil {
		t.Fatalf("ParseAll: %v", aerr)
	}
	if sess.ALPNSelected != "h2" {
		t.Fatalf("ALPNSelected = %q, want h2", sess.ALPNSelected)
	}
}

func TestParseAllRunsInitAndFinalWithNoExtensions(t *testing.T) {
	// extended_master_secret's finaliser only fires meaningfully once
	// Init has run for every relevant row; a smoke test that ParseAll
	// completes cleanly with no extensions present at all covers the
	// "Init always runs, Final always runs" invariant without any one
	// extension's specific behaviour getting in the way.
	sess := NewSessionState(RoleServer)
	sess.Version = VersionTLS12
	raws, aerr := CollectExtensions(sess, ClientHello, wire.NewReader(nil), false)
	if aerr != nil {
		t.Fatalf("CollectExtensions: %v", aerr)
	}
	if aerr := ParseAll(sess, ClientHello, raws, -1); aerr != nil {
		t.Fatalf("ParseAll: %v", aerr)
	}
}

package tlsext

import (
	"testing"

	"github.com/tlsext/tlsext/wire"
)

type testExt struct {
	t    Type
	body []byte
}

func buildExtensionBlock(t *testing.T, exts []testExt) []byte {
	t.Helper()
	w, finish := wire.NewBuilder()
	for _, e := range exts {
		w.PutUint16(uint16(e.t))
		body := e.body
		w.PutUint16LengthPrefixed(func(inner wire.Writer) {
			inner.PutBytes(body)
		})
	}
	out, err := finish()
	if err != nil {
		t.Fatalf("building test extension block: %v", err)
	}
	return out
}

func TestCollectExtensionsRoundTrip(t *testing.T) {
	sni := func() []byte {
		w, finish := wire.NewBuilder()
		w.PutUint16LengthPrefixed(func(list wire.Writer) {
			list.PutUint8(0)
			list.PutUint16LengthPrefixed(func(name wire.Writer) {
				name.PutBytes([]byte("example.com"))
			})
		})
		b, err := finish()
		if err != nil {
			t.Fatalf("building server_name body: %v", err)
		}
		return b
	}()

	raw := buildExtensionBlock(t, []testExt{{TypeServerName, sni}})

	sess := NewSessionState(RoleServer)
	raws, aerr := CollectExtensions(sess, ClientHello, wire.NewReader(raw), false)
	if aerr != nil {
		t.Fatalf("CollectExtensions: %v", aerr)
	}
	idx := typeIndex[TypeServerName]
	if !raws[idx].Present {
		t.Fatal("server_name extension should be present")
	}
	if string(raws[idx].Data) != string(sni) {
		t.Fatal("server_name extension data mismatch")
	}
}

func TestCollectExtensionsRejectsDuplicateType(t *testing.T) {
	raw := buildExtensionBlock(t, []testExt{
		{TypeALPN, []byte{0, 3, 2, 'h', '2'}},
		{TypeALPN, []byte{0, 3, 2, 'h', '2'}},
	})
	sess := NewSessionState(RoleServer)
	_, aerr := CollectExtensions(sess, ClientHello, wire.NewReader(raw), false)
	if aerr == nil {
		t.Fatal("expected duplicate extension type to be rejected")
	}
	if aerr.Alert != AlertIllegalParameter {
		t.Fatalf("got alert %d, want %d", aerr.Alert, AlertIllegalParameter)
	}
}

func TestCollectExtensionsRejectsExtensionAfterPSK(t *testing.T) {
	pskBody := buildExtensionBlock(t, nil) // malformed on purpose, collector shouldn't get far enough to mind
	raw := buildExtensionBlock(t, []testExt{
		{TypePreSharedKey, pskBody},
		{TypeCookie, []byte{0, 1, 0xAA}},
	})
	sess := NewSessionState(RoleServer)
	_, aerr := CollectExtensions(sess, ClientHello, wire.NewReader(raw), false)
	if aerr == nil {
		t.Fatal("expected extension-after-pre_shared_key to be rejected")
	}
}

func TestCollectExtensionsRejectsWrongContext(t *testing.T) {
	// psk_key_exchange_modes is ClientHello-only; offering it in a
	// ServerHello-shaped context must fail validateContext.
	raw := buildExtensionBlock(t, []testExt{{TypePSKKeyExchangeModes, []byte{1, 0}}})
	sess := NewSessionState(RoleClient)
	sess.Version = VersionTLS13
	_, aerr := CollectExtensions(sess, TLS13ServerHello, wire.NewReader(raw), true)
	if aerr == nil {
		t.Fatal("expected psk_key_exchange_modes in ServerHello to be rejected")
	}
	if aerr.Alert != AlertIllegalParameter {
		t.Fatalf("got alert %d, want %d", aerr.Alert, AlertIllegalParameter)
	}
}

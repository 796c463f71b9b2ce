package tlsext

import (
	"testing"

	"github.com/tlsext/tlsext/wire"
)

func TestParsePSKCTOSTracksBindersLength(t *testing.T) {
	w, finish := wire.NewBuilder()
	w.PutUint16LengthPrefixed(func(identities wire.Writer) {
		identities.PutUint16LengthPrefixed(func(id wire.Writer) {
			id.PutBytes([]byte("identity-1"))
		})
		identities.PutUint16(0)
		identities.PutUint16(0)
	})
	w.PutUint16LengthPrefixed(func(binders wire.Writer) {
		binders.PutUint8LengthPrefixed(func(b wire.Writer) {
			b.PutBytes(make([]byte, 32))
		})
	})
	body, err := finish()
	if err != nil {
		t.Fatal(err)
	}

	sess := NewSessionState(RoleServer)
	if err := parsePSKCTOS(sess, ClientHello, wire.NewReader(body), -1); err != nil {
		t.Fatalf("parsePSKCTOS: %v", err)
	}
	if len(sess.PSKIdentities) != 1 || string(sess.PSKIdentities[0]) != "identity-1" {
		t.Fatalf("PSKIdentities = %v", sess.PSKIdentities)
	}
	if len(sess.PSKBinders) != 1 || len(sess.PSKBinders[0]) != 32 {
		t.Fatalf("PSKBinders = %v", sess.PSKBinders)
	}
	// 2-byte list length + 1-byte entry length + 32-byte binder.
	wantBindersLen := 2 + 1 + 32
	if sess.PSKBindersEncodedLen != wantBindersLen {
		t.Fatalf("PSKBindersEncodedLen = %d, want %d", sess.PSKBindersEncodedLen, wantBindersLen)
	}
}

func TestParsePSKCTOSRejectsMismatchedCounts(t *testing.T) {
	w, finish := wire.NewBuilder()
	w.PutUint16LengthPrefixed(func(identities wire.Writer) {
		identities.PutUint16LengthPrefixed(func(id wire.Writer) {
			id.PutBytes([]byte("identity-1"))
		})
		identities.PutUint16(0)
		identities.PutUint16(0)
		identities.PutUint16LengthPrefixed(func(id wire.Writer) {
			id.PutBytes([]byte("identity-2"))
		})
		identities.PutUint16(0)
		identities.PutUint16(0)
	})
	w.PutUint16LengthPrefixed(func(binders wire.Writer) {
		binders.PutUint8LengthPrefixed(func(b wire.Writer) {
			b.PutBytes(make([]byte, 32))
		})
	})
	body, err := finish()
	if err != nil {
		t.Fatal(err)
	}

	sess := NewSessionState(RoleServer)
	if err := parsePSKCTOS(sess, ClientHello, wire.NewReader(body), -1); err == nil {
		t.Fatal("expected a mismatch between identity count and binder count to be rejected")
	}
}

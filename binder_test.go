package tlsext

import (
	"bytes"
	"testing"
)

func TestComputeBinderIsDeterministic(t *testing.T) {
	psk := []byte("a shared secret")
	hash := []byte("pretend transcript hash pretend")

	a, err := ComputeBinder(psk, true, hash)
	if err != nil {
		t.Fatalf("ComputeBinder: %v", err)
	}
	b, err := ComputeBinder(psk, true, hash)
	if err != nil {
		t.Fatalf("ComputeBinder: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("ComputeBinder is not deterministic for identical inputs")
	}
	if len(a) != 32 {
		t.Fatalf("binder length = %d, want 32 (SHA-256 HMAC output)", len(a))
	}
}

func TestComputeBinderDiffersByLabel(t *testing.T) {
	psk := []byte("a shared secret")
	hash := []byte("pretend transcript hash pretend")

	ext, err := ComputeBinder(psk, true, hash)
	if err != nil {
		t.Fatal(err)
	}
	res, err := ComputeBinder(psk, false, hash)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(ext, res) {
		t.Fatal("external and resumption binders must differ (different HKDF label)")
	}
}

func TestVerifyBinderDetectsTampering(t *testing.T) {
	psk := []byte("a shared secret")
	hash := []byte("pretend transcript hash pretend")

	binder, err := ComputeBinder(psk, true, hash)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := VerifyBinder(psk, true, hash, binder)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("VerifyBinder rejected a correctly computed binder")
	}

	tampered := append([]byte(nil), binder...)
	tampered[0] ^= 0xFF
	ok, err = VerifyBinder(psk, true, hash, tampered)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("VerifyBinder accepted a tampered binder")
	}
}

func TestTruncatedTranscriptHashExcludesBinders(t *testing.T) {
	full := []byte("clienthello-bytes-up-to-and-including-binders-list")
	bindersLen := 10
	hash, err := TruncatedTranscriptHash(full, bindersLen)
	if err != nil {
		t.Fatal(err)
	}
	full2 := append([]byte(nil), full[:len(full)-bindersLen]...)
	full2 = append(full2, make([]byte, bindersLen)...) // different trailing bytes
	hash2, err := TruncatedTranscriptHash(full2, bindersLen)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(hash, hash2) {
		t.Fatal("TruncatedTranscriptHash must not depend on the binders list's bytes")
	}
}

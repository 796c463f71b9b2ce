package tlsext

// Package-level PSK binder engine, grounded on tls_psk_do_binder in
// ssl/statem/extensions.c and RFC 8446 §4.2.11.2 / §7.1. Computes and
// verifies the HMAC binder that authenticates a ClientHello's PSK
// identities against the truncated transcript (everything up to, but not
// including, the binders list itself).

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/hkdf"
)

const tls13Label = "tls13 "

// hkdfExpandLabel implements RFC 8446 §7.1's HKDF-Expand-Label over
// SHA-256, the only hash this engine supports: every PSK cipher suite this
// package targets negotiates a SHA-256 transcript hash.
func hkdfExpandLabel(secret, label, context []byte, length int) ([]byte, error) {
	var hkdfLabel []byte
	hkdfLabel = append(hkdfLabel, byte(length>>8), byte(length))
	fullLabel := append([]byte(tls13Label), label...)
	if len(fullLabel) > 255 {
		return nil, fmt.Errorf("%w: hkdf label too long", ErrInternal)
	}
	hkdfLabel = append(hkdfLabel, byte(len(fullLabel)))
	hkdfLabel = append(hkdfLabel, fullLabel...)
	if len(context) > 255 {
		return nil, fmt.Errorf("%w: hkdf context too long", ErrInternal)
	}
	hkdfLabel = append(hkdfLabel, byte(len(context)))
	hkdfLabel = append(hkdfLabel, context...)

	out := make([]byte, length)
	r := hkdf.Expand(sha256.New, secret, hkdfLabel)
	if _, err := r.Read(out); err != nil {
		return nil, fmt.Errorf("%w: hkdf expand: %v", ErrInternal, err)
	}
	return out, nil
}

// DeriveEarlySecret runs HKDF-Extract(0, PSK), the first step toward a
// binder or early traffic keys (RFC 8446 §7.1's key schedule).
func DeriveEarlySecret(psk []byte) []byte {
	zero := make([]byte, sha256.Size)
	return hkdf.Extract(sha256.New, psk, zero)
}

// binderKeyLabel picks the resumption-vs-external binder label: external
// PSKs (provisioned out of band, via Policy.PSKIdentity/PSKKey) use
// "ext binder"; PSKs derived from a NewSessionTicket use "res binder".
func binderKeyLabel(external bool) string {
	if external {
		return "ext binder"
	}
	return "res binder"
}

// ComputeBinder derives the HMAC binder for one PSK identity over
// truncatedTranscriptHash, the hash of the ClientHello up to (but
// excluding) the binders list.
func ComputeBinder(psk []byte, external bool, truncatedTranscriptHash []byte) ([]byte, error) {
	earlySecret := DeriveEarlySecret(psk)
	emptyHash := sha256.Sum256(nil)
	binderKey, err := hkdfExpandLabel(earlySecret, []byte(binderKeyLabel(external)), emptyHash[:], sha256.Size)
	if err != nil {
		return nil, err
	}
	finishedKey, err := hkdfExpandLabel(binderKey, []byte("finished"), nil, sha256.Size)
	if err != nil {
		return nil, err
	}
	mac := hmac.New(sha256.New, finishedKey)
	mac.Write(truncatedTranscriptHash)
	return mac.Sum(nil), nil
}

// VerifyBinder recomputes the binder and compares it against received in
// constant time, per RFC 8446 §4.2.11.2's requirement that binder
// verification not leak timing information.
func VerifyBinder(psk []byte, external bool, truncatedTranscriptHash, received []byte) (bool, error) {
	want, err := ComputeBinder(psk, external, truncatedTranscriptHash)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(want, received) == 1, nil
}

// TruncatedTranscriptHash hashes everything in clientHello up to (but
// excluding) the trailing binders-list bytes, using
// sess.PSKBindersEncodedLen (set by parsePSKCTOS) to find the cut point.
func TruncatedTranscriptHash(clientHello []byte, bindersEncodedLen int) ([]byte, error) {
	if bindersEncodedLen < 0 || bindersEncodedLen > len(clientHello) {
		return nil, fmt.Errorf("%w: binders length exceeds message size", ErrInternal)
	}
	h := sha256.Sum256(clientHello[:len(clientHello)-bindersEncodedLen])
	return h[:], nil
}

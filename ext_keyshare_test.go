package tlsext

import "testing"

func TestFinalKeyShareTriggersHelloRetryRequest(t *testing.T) {
	sess := NewSessionState(RoleServer)
	sess.Version = VersionTLS13
	sess.PSKKexModes = PSKKexModeDHEKE
	sess.Policy.PreferredGroups = []uint16{0x001D} // x25519
	sess.PeerGroups = []uint16{0x001D}             // client supports it...
	sess.PeerKeyShares = map[uint16][]byte{}       // ...but sent no share for it

	if err := finalKeyShare(sess, ClientHello, true); err != nil {
		t.Fatalf("finalKeyShare: %v", err)
	}
	if !sess.HelloRetryRequest {
		t.Fatal("expected a HelloRetryRequest when the client omits a mutually supported group's key_share")
	}
	if sess.GroupID != 0x001D {
		t.Fatalf("GroupID = %#x, want 0x001D", sess.GroupID)
	}
}

func TestFinalKeyShareSelectsMatchingGroup(t *testing.T) {
	sess := NewSessionState(RoleServer)
	sess.Version = VersionTLS13
	sess.PSKKexModes = PSKKexModeDHEKE
	sess.Policy.PreferredGroups = []uint16{0x0017, 0x001D}
	sess.PeerKeyShares = map[uint16][]byte{0x001D: {1, 2, 3}}

	if err := finalKeyShare(sess, ClientHello, true); err != nil {
		t.Fatalf("finalKeyShare: %v", err)
	}
	if sess.HelloRetryRequest {
		t.Fatal("did not expect a HelloRetryRequest when a key_share already matches")
	}
	if sess.KeyShareSelected != 0x001D {
		t.Fatalf("KeyShareSelected = %#x, want 0x001D", sess.KeyShareSelected)
	}
}

func TestFinalKeyShareFailsWithNoOverlap(t *testing.T) {
	sess := NewSessionState(RoleServer)
	sess.Version = VersionTLS13
	sess.PSKKexModes = PSKKexModeDHEKE
	sess.Policy.PreferredGroups = []uint16{0x0017}
	sess.PeerGroups = []uint16{0x001D}
	sess.PeerKeyShares = map[uint16][]byte{0x001D: {1, 2, 3}}

	err := finalKeyShare(sess, ClientHello, true)
	if err == nil {
		t.Fatal("expected failure when client and server share no common group")
	}
}

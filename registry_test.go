package tlsext

import "testing"

func TestRegistryTypesAreUnique(t *testing.T) {
	seen := make(map[Type]bool)
	for i, def := range registry {
		if seen[def.Type] {
			t.Fatalf("row %d: duplicate type %s in registry", i, def.Type)
		}
		seen[def.Type] = true
	}
}

func TestTypeIndexMatchesRegistryOrder(t *testing.T) {
	for i, def := range registry {
		got, ok := typeIndex[def.Type]
		if !ok {
			t.Fatalf("row %d: type %s missing from typeIndex", i, def.Type)
		}
		if got != i {
			t.Fatalf("row %d: typeIndex[%s] = %d, want %d", i, def.Type, got, i)
		}
	}
}

func TestPreSharedKeyIsLastRow(t *testing.T) {
	if registry[len(registry)-1].Type != TypePreSharedKey {
		t.Fatalf("pre_shared_key must be the last registry row, per RFC 8446 §4.2.11")
	}
}

func TestValidateContextRejectsWrongMessage(t *testing.T) {
	sess := NewSessionState(RoleServer)
	if validateContext(sess, ClientHello, TLS12ServerHello) {
		t.Fatal("ClientHello-only extension must not validate against a ServerHello context")
	}
	if !validateContext(sess, ClientHello|TLS12ServerHello, ClientHello) {
		t.Fatal("extension valid in ClientHello must validate")
	}
}

func TestValidateContextRejectsTLSOnlyOverDTLS(t *testing.T) {
	sess := NewSessionState(RoleServer)
	sess.IsDTLS = true
	if validateContext(sess, ClientHello|TLSOnly, ClientHello) {
		t.Fatal("TLSOnly extension must not validate over DTLS")
	}
}

func TestExtensionIsRelevantVersionGates(t *testing.T) {
	sess := NewSessionState(RoleServer)
	sess.Version = VersionTLS13
	if extensionIsRelevant(sess, ClientHello|TLS12AndBelowOnly, ClientHello) {
		t.Fatal("TLS12AndBelowOnly extension must not be relevant under TLS 1.3")
	}
	sess.Version = VersionTLS12
	if extensionIsRelevant(sess, ClientHello|TLS13Only, ClientHello) {
		t.Fatal("TLS13Only extension must not be relevant under TLS 1.2")
	}
}

package tlsext

import (
	"testing"

	"github.com/tlsext/tlsext/wire"
)

func TestMapRegistryRejectsBuiltinOverride(t *testing.T) {
	m := NewMapRegistry()
	err := m.Register(TypeServerName, []Role{RoleServer}, ClientHello,
		func(Context, []byte, int) error { return nil },
		func(w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
			return ExtNotSent, nil
		},
	)
	if err == nil {
		t.Fatal("expected registering server_name to be rejected")
	}
}

func TestMapRegistryRoundTrip(t *testing.T) {
	const customType Type = 0xFF10
	var gotBody []byte

	m := NewMapRegistry()
	if err := m.Register(customType, []Role{RoleServer}, ClientHello,
		func(ctx Context, data []byte, chainIdx int) error {
			gotBody = append([]byte(nil), data...)
			return nil
		},
		func(w ExtensionWriter, ctx Context, maxVersion Version, chainIdx int) (ConstructResult, error) {
			w.PutBytes([]byte("hello"))
			return ExtSent, nil
		},
	); err != nil {
		t.Fatalf("Register: %v", err)
	}

	client := NewSessionState(RoleClient, WithCustomRegistry(m))
	client.Version = VersionTLS12
	out, aerr := ConstructAll(client, ClientHello, VersionTLS12, -1)
	if aerr != nil {
		t.Fatalf("ConstructAll: %v", aerr)
	}

	server := NewSessionState(RoleServer, WithCustomRegistry(m))
	server.Version = VersionTLS12
	raws, aerr := CollectExtensions(server, ClientHello, wire.NewReader(out), false)
	if aerr != nil {
		t.Fatalf("CollectExtensions: %v", aerr)
	}
	if aerr := ParseAll(server, ClientHello, raws, -1); aerr != nil {
		t.Fatalf("ParseAll: %v", aerr)
	}
	if string(gotBody) != "hello" {
		t.Fatalf("custom extension body = %q, want %q", gotBody, "hello")
	}
}

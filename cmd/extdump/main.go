// Command extdump decodes the extension block of a captured ClientHello and
// prints what the registry recognises in it. It takes its input as a hex or
// base64 blob from a file, stdin, or (with -fetch) an HTTP(S) URL.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/tlsext/tlsext"
	"github.com/tlsext/tlsext/wire"
)

func main() {
	fetch := flag.String("fetch", "", "fetch the extension block from this URL instead of reading a file/stdin")
	file := flag.String("file", "", "read the extension block from this file (default: stdin)")
	isServer := flag.Bool("server", true,"decode as a ClientHello's extension block (default); false decodes a ServerHello's")
	dtls := flag.Bool("dtls", false, "treat the input as DTLS")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	raw, err := readInput(*fetch, *file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extdump: %v\n", err)
		os.Exit(1)
	}

	ctx := tlsext.ClientHello
	role := tlsext.RoleServer
	if !*isServer {
		ctx = tlsext.TLS12ServerHello
		role = tlsext.RoleClient
	}

	sess := tlsext.NewSessionState(role,
		tlsext.WithLogger(logger),
		tlsext.WithDebugCallback(func(clientSide bool, t tlsext.Type, data []byte) {
			fmt.Printf("  raw: type=%-5d (%s) len=%d\n", t, t, len(data))
		}),
	)
	sess.IsDTLS = *dtls
	sess.Version = tlsext.VersionTLS12

	r := wire.NewReader(raw)
	fmt.Println("extensions:")
	raws, aerr := tlsext.CollectExtensions(sess, ctx, r, !*isServer)
	if aerr != nil {
		fmt.Fprintf(os.Stderr, "extdump: collect: %v\n", aerr)
		os.Exit(1)
	}
	if aerr := tlsext.ParseAll(sess, ctx, raws, -1); aerr != nil {
		fmt.Fprintf(os.Stderr, "extdump: parse: %v (alert %d)\n", aerr, aerr.Alert)
		os.Exit(1)
	}

	if sess.ServerName != "" {
		fmt.Printf("server_name: %s\n", sess.ServerName)
	}
	if len(sess.ALPNProposed) > 0 {
		fmt.Printf("alpn proposed: %s\n", strings.Join(sess.ALPNProposed, ", "))
	}
	if len(sess.PeerGroups) > 0 {
		fmt.Printf("supported_groups: %v\n", sess.PeerGroups)
	}
	if len(sess.PeerSigAlgs) > 0 {
		fmt.Printf("signature_algorithms: %v\n", sess.PeerSigAlgs)
	}
}

func readInput(fetchURL, file string) ([]byte, error) {
	var b []byte
	switch {
	case fetchURL != "":
		client := retryablehttp.NewClient()
		client.Logger = nil
		resp, err := client.Get(fetchURL)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", fetchURL, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: status %d", fetchURL, resp.StatusCode)
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		b = body
	case file != "":
		body, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		b = body
	default:
		body, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		b = body
	}
	return decode(strings.TrimSpace(string(b)))
}

func decode(s string) ([]byte, error) {
	if d, err := hex.DecodeString(s); err == nil {
		return d, nil
	}
	if d, err := base64.StdEncoding.DecodeString(s); err == nil {
		return d, nil
	}
	return nil, fmt.Errorf("input is neither valid hex nor base64")
}

package tlsext

import "github.com/tlsext/tlsext/wire"

// ConstructAll runs spec.md §4.3 over every registry row plus the custom
// registry: for each row whose Context/version/role gates allow it in ctx,
// invoke the direction-appropriate constructor into a scratch writer first
// so that a row reporting ExtNotSent never has its type/length header
// committed to the output. It returns the encoded extension block, without
// the outer 2-byte total-length prefix a caller wraps it in — the one
// exception being an SSL 3.0 ClientHello/ServerHello with nothing to send,
// where the caller should omit the extensions block entirely rather than
// call this at all.
func ConstructAll(sess *SessionState, ctx Context, maxVersion Version, chainIdx int) ([]byte, *AlertError) {
	clientToServer := ctx&ClientHello != 0
	w, finish := wire.NewBuilder()

	if sess.Custom != nil {
		if ctx&ClientHello != 0 {
			sess.Custom.Init()
		}
		if err := sess.Custom.Add(w, ctx, maxVersion, chainIdx); err != nil {
			return nil, wrapAlert(err)
		}
	}

	for idx, def := range registry {
		if !shouldAddExtension(sess, def.Context, ctx, maxVersion) {
			continue
		}
		constructFn := def.ConstructSTOC
		if clientToServer {
			constructFn = def.ConstructCTOS
		}
		if constructFn == nil {
			continue
		}

		scratch, scratchFinish := wire.NewBuilder()
		result, err := constructFn(sess, scratch, ctx, maxVersion, chainIdx)
		if err != nil {
			return nil, wrapAlert(err)
		}
		if result != ExtSent {
			continue
		}
		body, ferr := scratchFinish()
		if ferr != nil {
			return nil, fail(AlertInternalError, ErrInternal, "encoding extension %s: %v", def.Type, ferr)
		}

		w.PutUint16(uint16(def.Type))
		w.PutUint16LengthPrefixed(func(inner ExtensionWriter) {
			inner.PutBytes(body)
		})
		if ctx&solicitedResponseContexts != 0 {
			sess.SentFlags[idx] = true
		}
	}

	out, ferr := finish()
	if ferr != nil {
		return nil, fail(AlertInternalError, ErrInternal, "encoding extension block: %v", ferr)
	}
	return out, nil
}

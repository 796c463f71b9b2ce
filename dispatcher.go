package tlsext

import "github.com/tlsext/tlsext/wire"

// ParseAll runs the second and third passes of spec.md §4.2 over raws, which
// must have come from a matching CollectExtensions call: Init every relevant
// built-in, parse every present one (pre_shared_key deferred to last, since
// binder verification needs every other extension's state already settled),
// parse any present custom extensions, then run, in table order, the Final
// callback of every row whose Context includes ctx (Final is not gated on
// extensionIsRelevant). chainIdx identifies the certificate being
// processed for Certificate-message extensions; pass -1 elsewhere.
func ParseAll(sess *SessionState, ctx Context, raws RawExtensions, chainIdx int) *AlertError {
	clientToServer := ctx&ClientHello != 0
	numBuiltin := len(registry)

	for _, def := range registry {
		if def.Context&ctx == 0 || !extensionIsRelevant(sess, def.Context, ctx) {
			continue
		}
		if def.Init != nil {
			if err := def.Init(sess, ctx); err != nil {
				return wrapAlert(err)
			}
		}
	}

	pskIdx := -1
	if i, ok := typeIndex[TypePreSharedKey]; ok {
		pskIdx = i
	}

	for idx, def := range registry {
		if idx == pskIdx {
			continue
		}
		if err := parseBuiltinSlot(sess, ctx, raws, idx, def, clientToServer, chainIdx); err != nil {
			return err
		}
	}

	if pskIdx >= 0 {
		if err := parseBuiltinSlot(sess, ctx, raws, pskIdx, registry[pskIdx], clientToServer, chainIdx); err != nil {
			return err
		}
	}

	for off := numBuiltin; off < len(raws); off++ {
		raw := raws[off]
		if !raw.Present {
			continue
		}
		if sess.Custom == nil {
			return fail(AlertInternalError, ErrInternal, "custom extension slot %d present with no registry installed", off)
		}
		if err := sess.Custom.Parse(ctx, raw.Type, raw.Data, chainIdx); err != nil {
			return wrapAlert(err)
		}
	}

	for idx, def := range registry {
		if def.Context&ctx == 0 {
			continue
		}
		if def.Final != nil {
			if err := def.Final(sess, ctx, raws[idx].Present); err != nil {
				return wrapAlert(err)
			}
		}
	}
	return nil
}

// parseBuiltinSlot validates solicitedness and dispatches a single present
// built-in extension to its direction-appropriate parse callback.
func parseBuiltinSlot(sess *SessionState, ctx Context, raws RawExtensions, idx int, def Definition, clientToServer bool, chainIdx int) *AlertError {
	raw := raws[idx]
	if !raw.Present {
		return nil
	}
	if !extensionIsRelevant(sess, def.Context, ctx) {
		return nil
	}
	if ctx&solicitedResponseContexts == 0 {
		if !sess.SentFlags[idx] && !unsolicitedExceptions[def.Type] {
			return fail(AlertUnsupportedExt, ErrUnsupportedExtension, "unsolicited extension %s", def.Type)
		}
	}
	parseFn := def.ParseSTOC
	if clientToServer {
		parseFn = def.ParseCTOS
	}
	if parseFn == nil {
		if sess.Custom != nil {
			if err := sess.Custom.Parse(ctx, def.Type, raw.Data, chainIdx); err != nil {
				return wrapAlert(err)
			}
		}
		return nil
	}
	if err := parseFn(sess, ctx, wire.NewReader(raw.Data), chainIdx); err != nil {
		return wrapAlert(err)
	}
	return nil
}

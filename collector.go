package tlsext

import "go.uber.org/zap"

// resolveSlot maps a wire type to its registry/custom slot index, the Go
// equivalent of OpenSSL's lookup into ext_defs plus the "custom extension"
// fallback path in tls_collect_extensions.
func resolveSlot(sess *SessionState, t Type, ctx Context) (idx int, ok bool) {
	if i, found := typeIndex[t]; found {
		return i, true
	}
	if sess.Custom == nil {
		return 0, false
	}
	role := RoleServer
	if ctx&ClientHello == 0 {
		role = RoleClient
	}
	found, off := sess.Custom.Find(role, t)
	if !found {
		return 0, false
	}
	return len(registry) + off, true
}

// CollectExtensions reads every TLV-encoded extension out of r, the first
// pass of spec.md §4.2: index by type, reject a duplicate type, reject an
// extension whose Context doesn't allow the current message, and enforce
// pre_shared_key's "must be last" wire-order rule. It does not parse
// extension bodies; that is ParseAll's job, so that Init can run for every
// relevant extension before any body is interpreted.
func CollectExtensions(sess *SessionState, ctx Context, r ExtensionReader, clientSide bool) (RawExtensions, *AlertError) {
	customCount := 0
	if sess.Custom != nil {
		sess.Custom.Init()
		customCount = sess.Custom.Count()
	}
	raws := make(RawExtensions, len(registry)+customCount)

	var order uint32
	var pskIdx = -1
	if i, ok := typeIndex[TypePreSharedKey]; ok {
		pskIdx = i
	}

	for !r.Empty() {
		rawType, ok := r.ReadUint16()
		if !ok {
			return nil, fail(AlertDecodeError, ErrDecodeError, "truncated extension type")
		}
		body, ok := r.ReadUint16LengthPrefixed()
		if !ok {
			return nil, fail(AlertDecodeError, ErrDecodeError, "truncated extension body for type %d", rawType)
		}
		t := Type(rawType)
		data := body.Bytes()
		if sess.DebugCallback != nil {
			sess.DebugCallback(clientSide, t, data)
		}

		idx, ok := resolveSlot(sess, t, ctx)
		if !ok {
			// Unknown types are simply ignored, including for duplicate
			// detection: we only dedup extensions we actually recognise.
			sess.Logger.Debug("ignoring unrecognised extension", zap.Uint16("type", rawType))
			order++
			continue
		}

		if raws[idx].Present {
			return nil, fail(AlertIllegalParameter, ErrIllegalParameter, "duplicate extension %s", t)
		}

		if idx < len(registry) {
			def := registry[idx]
			if !validateContext(sess, def.Context, ctx) {
				return nil, fail(AlertIllegalParameter, ErrIllegalParameter, "extension %s not allowed in this message", def.Type)
			}
		}

		if ctx&ClientHello != 0 && pskIdx >= 0 && idx != pskIdx {
			if raws[pskIdx].Present {
				return nil, fail(AlertIllegalParameter, ErrIllegalParameter, "pre_shared_key extension must be last")
			}
		}

		raws[idx] = RawExtension{Type: t, Data: data, Present: true, ReceivedOrder: order}
		order++
	}
	return raws, nil
}

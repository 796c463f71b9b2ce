package tlsext

// RawExtension is the per-message bookkeeping for one registry row (or one
// registered custom extension). One array of these is allocated at the
// start of collecting a message's extension block, mutated by the
// collector, read by the dispatcher, and discarded at message end.
type RawExtension struct {
	Type          Type
	Data          []byte
	Present       bool
	Parsed        bool
	ReceivedOrder uint32
}

// RawExtensions is the indexed, random-access result of CollectExtensions:
// one slot per built-in row plus one per registered custom extension, in
// the same order as the registry table followed by the custom registry's
// own ordering.
type RawExtensions []RawExtension

// reset clears a slot back to "absent", for reuse across test fixtures.
func (r *RawExtensions) reset() {
	for i := range *r {
		(*r)[i] = RawExtension{}
	}
}

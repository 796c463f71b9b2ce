// Package sessioncache is a bounded, in-memory store of resumable TLS
// sessions, backed by github.com/hashicorp/golang-lru/v2. It implements
// tlsext.StoredSession so a server can hand a cached entry straight to
// tlsext.WithStoredSession when it recognises a resumption ticket or PSK
// identity.
package sessioncache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Entry is one cached resumable session.
type Entry struct {
	masterKey            []byte
	extendedMasterSecret bool
	ticketNonce          []byte
	alpnSelected         string
}

// MasterKey returns the session's resumption secret.
func (e *Entry) MasterKey() []byte { return e.masterKey }

// ExtendedMasterSecret reports whether the original handshake negotiated
// the extended_master_secret extension (RFC 7627), checked again on
// resumption by final_ems's consistency invariant.
func (e *Entry) ExtendedMasterSecret() bool { return e.extendedMasterSecret }

// TicketNonce returns the per-ticket nonce used to derive this entry's PSK
// from the resumption master secret (RFC 8446 §4.6.1).
func (e *Entry) TicketNonce() []byte { return e.ticketNonce }

// ALPNSelected returns the ALPN protocol the original handshake selected;
// RFC 8446 §4.2.9 requires offering it again (exclusively) to resume early
// data acceptance under it.
func (e *Entry) ALPNSelected() string { return e.alpnSelected }

// NewEntry builds a cacheable Entry. masterKey and ticketNonce are copied.
func NewEntry(masterKey []byte, extendedMasterSecret bool, ticketNonce []byte, alpnSelected string) *Entry {
	return &Entry{
		masterKey:            append([]byte(nil), masterKey...),
		extendedMasterSecret: extendedMasterSecret,
		ticketNonce:          append([]byte(nil), ticketNonce...),
		alpnSelected:         alpnSelected,
	}
}

// Cache is a bounded LRU keyed by opaque session identifier (a ticket label
// or an external PSK identity). It is safe for concurrent use; the
// underlying handshake state it feeds (tlsext.SessionState) is not, but the
// cache itself is commonly shared across many concurrent connections.
type Cache struct {
	mu    sync.Mutex
	inner *lru.Cache[string, *Entry]
}

// New builds a Cache holding at most size entries; the least recently used
// entry is evicted once size is exceeded.
func New(size int) (*Cache, error) {
	inner, err := lru.New[string, *Entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{inner: inner}, nil
}

// Get looks up an entry by key.
func (c *Cache) Get(key string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Get(key)
}

// Put stores or replaces an entry.
func (c *Cache) Put(key string, e *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Add(key, e)
}

// Remove drops an entry, e.g. after a resumption is rejected.
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Remove(key)
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Len()
}

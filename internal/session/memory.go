package session

import (
	"context"
	"errors"
	"time"

	"github.com/jellydator/ttlcache/v2"
)

// MemoryStore keeps sessions in process memory. Sessions are lost on
// restart and not visible to other worker processes, which matches the
// original single-instance deployment.
type MemoryStore struct {
	cache *ttlcache.Cache
}

func NewMemoryStore() *MemoryStore {
	c := ttlcache.NewCache()
	c.SkipTTLExtensionOnHit(true)

	return &MemoryStore{cache: c}
}

func (m *MemoryStore) Create(_ context.Context, token string, s Session, ttl time.Duration) error {
	return m.cache.SetWithTTL(token, s, ttl)
}

func (m *MemoryStore) Get(_ context.Context, token string) (Session, bool, error) {
	v, err := m.cache.Get(token)
	if err != nil {
		if errors.Is(err, ttlcache.ErrNotFound) {
			return Session{}, false, nil
		}

		return Session{}, false, err
	}

	s, ok := v.(Session)
	if !ok {
		return Session{}, false, nil
	}

	return s, true, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	err := m.cache.Remove(token)
	if errors.Is(err, ttlcache.ErrNotFound) {
		return nil
	}

	return err
}

// Close stops the cache's expiration worker.
func (m *MemoryStore) Close() error {
	return m.cache.Close()
}

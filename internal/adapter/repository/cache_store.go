package repository

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// CacheStore persists the slot in an ecache.Cache, usually redis backed.
// Values never expire.
type CacheStore struct {
	ec ecache.Cache
}

func NewCacheStore(ec ecache.Cache) *CacheStore {
	return &CacheStore{
		ec: &ecache.NamespaceCache{
			Namespace: "resume:",
			C:         ec,
		},
	}
}

func (s *CacheStore) Get(ctx context.Context, key string) (string, error) {
	val := s.ec.Get(ctx, key)
	if val.KeyNotFound() {
		return "", ErrKeyNotFound
	}
	if val.Err != nil {
		return "", errors.Wrap(val.Err, "read resume slot")
	}
	switch v := val.Val.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (s *CacheStore) Set(ctx context.Context, key, val string) error {
	return errors.Wrap(s.ec.Set(ctx, key, val, 0), "write resume slot")
}

func (s *CacheStore) Delete(ctx context.Context, key string) error {
	_, err := s.ec.Delete(ctx, key)
	return errors.Wrap(err, "delete resume slot")
}

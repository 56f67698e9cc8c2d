package cache

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coocood/freecache"
)

var _ Cache = (*FreeCache)(nil)

// FreeCache is an in-process, size bounded cache storing JSON encoded values.
type FreeCache struct {
	fc            *freecache.Cache
	expireSeconds int
}

func NewFreeCache(sizeMB, expireSeconds int) *FreeCache {
	return &FreeCache{
		fc:            freecache.NewCache(sizeMB * 1024 * 1024),
		expireSeconds: expireSeconds,
	}
}

func (c *FreeCache) Get(key string, dst any) (bool, error) {
	raw, err := c.fc.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("unmarshal cached [%s]: %w", key, err)
	}
	return true, nil
}

func (c *FreeCache) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal [%s]: %w", key, err)
	}
	return c.fc.Set([]byte(key), raw, c.expireSeconds)
}

func (c *FreeCache) Del(key string) {
	c.fc.Del([]byte(key))
}

func (c *FreeCache) Clear() {
	c.fc.Clear()
}

func (c *FreeCache) EntryCount() int64 {
	return c.fc.EntryCount()
}

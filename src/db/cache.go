package db

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Entity lookup caches. Keys are tracked per entity kind so that a
// create or delete can drop every cached read of that kind at once.
const (
	CacheAccounts     = "account"
	CacheAccountTypes = "account_type"
	CacheBanks        = "bank"
	CacheCategories   = "category"
)

var cache *ristretto.Cache

var cacheKeys = struct {
	sync.Mutex
	m map[string]map[string]struct{}
}{m: make(map[string]map[string]struct{})}

func InitCache() error {
	var err error
	cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	return err
}

func cacheKey(kind, key string) string {
	return fmt.Sprintf("%s:%s", kind, key)
}

func CacheSet(kind, key string, value interface{}) {
	if cache == nil {
		return
	}
	cacheKeys.Lock()
	if cacheKeys.m[kind] == nil {
		cacheKeys.m[kind] = make(map[string]struct{})
	}
	cacheKeys.m[kind][key] = struct{}{}
	cacheKeys.Unlock()
	cache.Set(cacheKey(kind, key), value, 1)
}

func CacheGet(kind, key string) (interface{}, bool) {
	if cache == nil {
		return nil, false
	}
	return cache.Get(cacheKey(kind, key))
}

// CacheClear drops every cached entry of one entity kind.
func CacheClear(kind string) {
	if cache == nil {
		return
	}
	cacheKeys.Lock()
	for key := range cacheKeys.m[kind] {
		cache.Del(cacheKey(kind, key))
	}
	cacheKeys.m[kind] = make(map[string]struct{})
	cacheKeys.Unlock()
}

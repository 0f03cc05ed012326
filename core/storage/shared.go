package storage

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// sharedStore holds process-wide clients reused across invocations.
type sharedStore struct {
	mu      sync.RWMutex
	clients map[string]Client
	sf      singleflight.Group
}

var globalShared = &sharedStore{
	clients: make(map[string]Client),
}

// newClientFunc is swapped in tests.
var newClientFunc = NewClient

// Shared returns a process-wide client for cfg, creating it on first use.
// Concurrent first callers share a single construction.
func Shared(cfg Config) (Client, error) {
	key := cfg.cacheKey()

	globalShared.mu.RLock()
	client, ok := globalShared.clients[key]
	globalShared.mu.RUnlock()
	if ok {
		return client, nil
	}

	result, err, _ := globalShared.sf.Do(key, func() (interface{}, error) {
		globalShared.mu.RLock()
		client, ok := globalShared.clients[key]
		globalShared.mu.RUnlock()
		if ok {
			return client, nil
		}

		client, err := newClientFunc(cfg)
		if err != nil {
			return nil, err
		}

		globalShared.mu.Lock()
		globalShared.clients[key] = client
		globalShared.mu.Unlock()
		return client, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(Client), nil
}

// ResetShared drops all cached clients.
func ResetShared() {
	globalShared.mu.Lock()
	globalShared.clients = make(map[string]Client)
	globalShared.mu.Unlock()
}

package cart

import (
	"context"
	"sync"

	"github.com/May-nib/sellarmy/domain/models/entities"
)

// memoryBackend keeps cart lists in process memory. Used in tests and in
// single-node dev mode, lost on restart.
type memoryBackend struct {
	mux   sync.RWMutex
	lists map[string][]entities.CartItem
}

func NewMemoryBackend() Backend {
	return &memoryBackend{
		lists: make(map[string][]entities.CartItem, 64),
	}
}

func (backend *memoryBackend) Get(ctx context.Context, sessionId, key string) ([]entities.CartItem, error) {
	backend.mux.RLock()
	defer backend.mux.RUnlock()

	items, ok := backend.lists[sessionId+"/"+key]
	if !ok {
		return nil, nil
	}

	copied := make([]entities.CartItem, len(items))
	copy(copied, items)
	return copied, nil
}

func (backend *memoryBackend) Put(ctx context.Context, sessionId, key string, items []entities.CartItem) error {
	backend.mux.Lock()
	defer backend.mux.Unlock()

	copied := make([]entities.CartItem, len(items))
	copy(copied, items)
	backend.lists[sessionId+"/"+key] = copied
	return nil
}

func (backend *memoryBackend) Clear(ctx context.Context, sessionId, key string) error {
	backend.mux.Lock()
	defer backend.mux.Unlock()

	delete(backend.lists, sessionId+"/"+key)
	return nil
}

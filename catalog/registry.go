package catalog

import "sync"

// Registry remembers every item loaded during the session, so an id can be
// turned back into its item.
type Registry struct {
	mu    sync.RWMutex
	items map[ID]*Item
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[ID]*Item)}
}

// Put records items. An id seen before keeps its first item.
func (r *Registry) Put(items ...*Item) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if item == nil || !item.ID.Valid() {
			continue
		}

		if _, ok := r.items[item.ID]; !ok {
			r.items[item.ID] = item
		}
	}
}

func (r *Registry) Get(id ID) (*Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

package cast

import (
	"sync"

	"interface-caster/contract"
)

// Cache keeps the adapters built for the subject that embeds it, one per
// target interface. Embed it by value in a struct and cast through a pointer
// to that struct:
//
//	type Printer struct {
//		cast.Cache
//		...
//	}
//
// The cache lives and dies with the subject. The zero value is ready to use.
type Cache struct {
	mu       sync.Mutex
	adapters map[*contract.Interface]*Adapter
}

// Cacheable is implemented by subjects embedding a Cache.
type Cacheable interface {
	AdapterCache() *Cache
}

func (c *Cache) AdapterCache() *Cache { return c }

// load returns the cached adapter for iface, building and storing it on a
// miss. Failed builds are not stored.
func (c *Cache) load(iface *contract.Interface, build func() (*Adapter, error)) (*Adapter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a, ok := c.adapters[iface]; ok {
		return a, nil
	}

	a, err := build()
	if err != nil {
		return nil, err
	}

	if c.adapters == nil {
		c.adapters = make(map[*contract.Interface]*Adapter)
	}

	c.adapters[iface] = a

	return a, nil
}

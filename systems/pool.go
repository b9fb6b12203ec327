package systems

import (
	"github.com/automoto/starshot/components"
	"github.com/yohamta/donburi"
)

// Pool is a fixed-capacity set of reusable entries split into an active and
// an inactive partition. Storage is allocated once; entries are never
// removed from the world while the pool lives.
type Pool struct {
	category components.Category
	entries  []*donburi.Entry
	free     []*donburi.Entry
}

// NewPool creates capacity entries with create. It panics on a negative
// capacity. Every created entry must carry components.Pooled.
func NewPool(category components.Category, capacity int, create func() *donburi.Entry) *Pool {
	if capacity < 0 {
		panic("systems: pool capacity must not be negative")
	}
	p := &Pool{
		category: category,
		entries:  make([]*donburi.Entry, 0, capacity),
		free:     make([]*donburi.Entry, 0, capacity),
	}
	for i := 0; i < capacity; i++ {
		e := create()
		components.Pooled.SetValue(e, components.PooledData{Category: category})
		p.entries = append(p.entries, e)
		p.free = append(p.free, e)
	}
	// Hand entries out in creation order.
	for i, j := 0, len(p.free)-1; i < j; i, j = i+1, j-1 {
		p.free[i], p.free[j] = p.free[j], p.free[i]
	}
	return p
}

// Get moves an inactive entry into the active partition and returns it.
// It returns false when every entry is in use.
func (p *Pool) Get() (*donburi.Entry, bool) {
	if p == nil || len(p.free) == 0 {
		return nil, false
	}
	e := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	components.Pooled.Get(e).Active = true
	return e, true
}

// Release returns e to the inactive partition. Releasing an inactive entry
// or one from another pool is a no-op reporting false.
func (p *Pool) Release(e *donburi.Entry) bool {
	pd, ok := components.Lookup(e, components.Pooled)
	if !ok || !pd.Active || pd.Category != p.category {
		return false
	}
	pd.Active = false
	p.free = append(p.free, e)
	return true
}

// Owns reports whether e belongs to p.
func (p *Pool) Owns(e *donburi.Entry) bool {
	for _, candidate := range p.entries {
		if candidate == e {
			return true
		}
	}
	return false
}

func (p *Pool) Category() components.Category { return p.category }

func (p *Pool) Cap() int { return len(p.entries) }

func (p *Pool) CountActive() int { return len(p.entries) - len(p.free) }

// Active returns the active entries in creation order.
func (p *Pool) Active() []*donburi.Entry {
	out := make([]*donburi.Entry, 0, p.CountActive())
	for _, e := range p.entries {
		if components.Pooled.Get(e).Active {
			out = append(out, e)
		}
	}
	return out
}

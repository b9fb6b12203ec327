package systems

import (
	"testing"

	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/systems/factory"
	"github.com/yohamta/donburi"
)

func newShotPool(w donburi.World, capacity int) *Pool {
	return NewPool(components.CategoryEnemyShot, capacity, func() *donburi.Entry {
		return factory.CreateEnemyShot(w)
	})
}

func TestPoolGetAndRelease(t *testing.T) {
	w := donburi.NewWorld()
	p := newShotPool(w, 2)

	a, ok := p.Get()
	if !ok {
		t.Fatal("first Get failed")
	}
	b, ok := p.Get()
	if !ok {
		t.Fatal("second Get failed")
	}
	if _, ok := p.Get(); ok {
		t.Fatal("Get succeeded on an exhausted pool")
	}
	if p.CountActive() != 2 || !components.IsActive(a) || !components.IsActive(b) {
		t.Fatalf("CountActive = %d, want 2 active entries", p.CountActive())
	}

	if !p.Release(a) {
		t.Fatal("Release of an active entry failed")
	}
	if p.Release(a) {
		t.Error("second Release of the same entry should report false")
	}
	if components.IsActive(a) || p.CountActive() != 1 {
		t.Errorf("after release: active=%v count=%d", components.IsActive(a), p.CountActive())
	}

	again, ok := p.Get()
	if !ok || again != a {
		t.Error("Get should hand the released entry back out")
	}
}

func TestPoolHandsOutInCreationOrder(t *testing.T) {
	w := donburi.NewWorld()
	var created []*donburi.Entry
	p := NewPool(components.CategoryEnemyShot, 3, func() *donburi.Entry {
		e := factory.CreateEnemyShot(w)
		created = append(created, e)
		return e
	})
	for i := range created {
		e, _ := p.Get()
		if e != created[i] {
			t.Fatalf("Get #%d returned entry out of order", i)
		}
	}
	if got := p.Active(); len(got) != 3 {
		t.Errorf("Active() returned %d entries, want 3", len(got))
	}
}

func TestPoolRejectsForeignEntries(t *testing.T) {
	w := donburi.NewWorld()
	shots := newShotPool(w, 1)
	other := NewPool(components.CategoryPlayerShot, 1, func() *donburi.Entry {
		return factory.CreatePlayerShot(w)
	})
	e, _ := other.Get()
	if shots.Release(e) {
		t.Error("Release accepted an entry of another category")
	}
	if shots.Owns(e) || !other.Owns(e) {
		t.Error("Owns reported the wrong pool")
	}
	if shots.Release(w.Entry(w.Create(components.Transform))) {
		t.Error("Release accepted an entry without pool membership")
	}
}

func TestEmptyAndNilPools(t *testing.T) {
	w := donburi.NewWorld()
	if _, ok := newShotPool(w, 0).Get(); ok {
		t.Error("zero-capacity pool handed out an entry")
	}
	var p *Pool
	if _, ok := p.Get(); ok {
		t.Error("nil pool handed out an entry")
	}
}

func TestNewPoolPanicsOnNegativeCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for capacity -1")
		}
	}()
	newShotPool(donburi.NewWorld(), -1)
}

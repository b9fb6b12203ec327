package components

import "github.com/yohamta/donburi"

// HealthData tracks hit points. Current always stays within [0, Max].
// Listeners registered with OnChange run synchronously after every call
// that actually changed Current; they read Current and Max themselves.
type HealthData struct {
	Current int
	Max     int

	listeners []func()
}

// NewHealth returns a full HealthData. It panics when max is not positive.
func NewHealth(max int) *HealthData {
	if max <= 0 {
		panic("components: health max must be positive")
	}
	return &HealthData{Current: max, Max: max}
}

// OnChange registers fn to run after each change of Current.
func (h *HealthData) OnChange(fn func()) {
	h.listeners = append(h.listeners, fn)
}

// Damage lowers Current by amount, stopping at zero. Non-positive amounts
// are ignored.
func (h *HealthData) Damage(amount int) {
	if amount <= 0 {
		return
	}
	h.set(h.Current - amount)
}

// Heal raises Current by amount, stopping at Max. Non-positive amounts are
// ignored.
func (h *HealthData) Heal(amount int) {
	if amount <= 0 {
		return
	}
	h.set(h.Current + amount)
}

// Reset refills Current without notifying listeners.
func (h *HealthData) Reset() {
	h.Current = h.Max
}

// Dead reports whether Current reached zero.
func (h *HealthData) Dead() bool {
	return h.Current == 0
}

func (h *HealthData) set(v int) {
	if v < 0 {
		v = 0
	}
	if v > h.Max {
		v = h.Max
	}
	if v == h.Current {
		return
	}
	h.Current = v
	for _, fn := range h.listeners {
		fn()
	}
}

var Health = donburi.NewComponentType[HealthData]()

package components

import "github.com/yohamta/donburi"

// MovementData holds an entity's speed in pixels per millisecond. Base is
// the speed the component was created with.
type MovementData struct {
	Speed float64
	Base  float64
}

func NewMovement(speed float64) *MovementData {
	return &MovementData{Speed: speed, Base: speed}
}

func (m *MovementData) SetSpeed(v float64) {
	m.Speed = v
}

// MoveHorizontally adds Speed*deltaMs to t.X. A negative delta moves left.
func (m *MovementData) MoveHorizontally(t *TransformData, deltaMs float64) {
	t.X += m.Speed * deltaMs
}

// MoveVertically adds Speed*deltaMs to t.Y. A negative delta moves up.
func (m *MovementData) MoveVertically(t *TransformData, deltaMs float64) {
	t.Y += m.Speed * deltaMs
}

var Movement = donburi.NewComponentType[MovementData]()

package components

import "github.com/yohamta/donburi"

// InputData is the per-frame input signal set the host hands to the core.
type InputData struct {
	Left      bool
	Right     bool
	Fire      bool
	Precision bool // rotate instead of strafe
	Ship      int  // non-zero requests a ship change
}

var Input = donburi.NewComponentType[InputData]()

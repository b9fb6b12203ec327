package systems

import (
	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/systems/factory"
	"github.com/yohamta/donburi"
)

// syncObjects moves every hittable body's resolv object to its transform.
func syncObjects(w donburi.World) {
	components.Object.Each(w, func(e *donburi.Entry) {
		if components.BodyEnabled(e) {
			factory.SyncObject(e)
		}
	})
}

package factory

import (
	"github.com/automoto/starshot/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// attachObject gives e a resolv object carrying tag. The object stays out of
// the space until EnableBody.
func attachObject(e *donburi.Entry, tag string) {
	obj := resolv.NewObject(0, 0, 1, 1, tag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
}

// EnableBody makes e hittable and registers its object in the world space.
func EnableBody(w donburi.World, e *donburi.Entry) {
	body, ok := components.Lookup(e, components.Body)
	if !ok {
		return
	}
	body.Enabled = true

	obj, ok := components.Lookup(e, components.Object)
	if !ok || obj.Object == nil {
		return
	}
	bw, bh := body.Width, body.Height
	if bw <= 0 || bh <= 0 {
		bw, bh = body.Radius*2, body.Radius*2
	}
	if obj.W != bw || obj.H != bh {
		obj.W, obj.H = bw, bh
		obj.SetShape(resolv.NewRectangle(0, 0, bw, bh))
	}
	if obj.Space == nil {
		if spaceEntry, ok := components.Space.First(w); ok {
			components.Space.Get(spaceEntry).Add(obj.Object)
		}
	}
	SyncObject(e)
}

// DisableBody removes e from overlap detection without touching its pool
// membership.
func DisableBody(e *donburi.Entry) {
	if body, ok := components.Lookup(e, components.Body); ok {
		body.Enabled = false
	}
	if obj, ok := components.Lookup(e, components.Object); ok && obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}

// SyncObject centres e's resolv object on its transform.
func SyncObject(e *donburi.Entry) {
	obj, ok := components.Lookup(e, components.Object)
	if !ok || obj.Object == nil {
		return
	}
	t, ok := components.Lookup(e, components.Transform)
	if !ok {
		return
	}
	obj.X = t.X - obj.W/2
	obj.Y = t.Y - obj.H/2
	if obj.Space != nil {
		obj.Update()
	}
}

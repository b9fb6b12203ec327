package systems

import (
	"math"

	"github.com/automoto/starshot/components"
	"github.com/automoto/starshot/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// OverlapSource reports the pairs of entities overlapping this frame.
type OverlapSource interface {
	Overlaps(w donburi.World) []Overlap
}

// OverlapFunc adapts a function to OverlapSource.
type OverlapFunc func(w donburi.World) []Overlap

func (f OverlapFunc) Overlaps(w donburi.World) []Overlap { return f(w) }

// tagQuery is satisfied by donburi tags.
type tagQuery interface {
	Each(donburi.World, func(*donburi.Entry))
}

var overlapGroups = []struct {
	pair   GroupPair
	from   tagQuery
	target string
}{
	{PairPlayerShotEnemy, tags.PlayerShot, tags.ResolvEnemy},
	{PairEnemyShotPlayer, tags.EnemyShot, tags.ResolvPlayer},
	{PairPlayerEnemy, tags.Player, tags.ResolvEnemy},
	{PairPlayerPowerUp, tags.Player, tags.ResolvPowerUp},
}

// DetectOverlaps is the default OverlapSource. It runs a broad phase on the
// world's resolv space and confirms each candidate with a circle test on the
// entities' bodies. Every overlapping pair is reported once.
func DetectOverlaps(w donburi.World) []Overlap {
	var out []Overlap
	for _, g := range overlapGroups {
		g.from.Each(w, func(e *donburi.Entry) {
			obj, ok := components.Lookup(e, components.Object)
			if !ok || obj.Object == nil || obj.Space == nil {
				return
			}
			a := entryOf(obj.Object)
			if !components.BodyEnabled(a) {
				return
			}
			check := obj.Check(0, 0, g.target)
			if check == nil {
				return
			}
			seen := make(map[*resolv.Object]struct{}, len(check.Objects))
			for _, other := range check.Objects {
				if _, dup := seen[other]; dup {
					continue
				}
				seen[other] = struct{}{}
				b := entryOf(other)
				if !components.BodyEnabled(b) || !circlesTouch(a, b) {
					continue
				}
				out = append(out, Overlap{Pair: g.pair, A: a, B: b})
			}
		})
	}
	return out
}

func entryOf(obj *resolv.Object) *donburi.Entry {
	e, _ := obj.Data.(*donburi.Entry)
	return e
}

func circlesTouch(a, b *donburi.Entry) bool {
	ta, ok := components.Lookup(a, components.Transform)
	if !ok {
		return false
	}
	tb, ok := components.Lookup(b, components.Transform)
	if !ok {
		return false
	}
	ra := components.Body.Get(a).Radius
	rb := components.Body.Get(b).Radius
	return math.Hypot(tb.X-ta.X, tb.Y-ta.Y) <= ra+rb
}

package systems

import (
	"math/rand"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

// TickSpawners продвигает таймеры всех спавнеров на один тик. Спавнер,
// дошедший до порога, сбрасывает таймер и создаёт существо, только если
// его клетка свободна. Возвращает созданных.
func TickSpawners(w *domain.World, b *Bestiary, rng *rand.Rand) []types.EntityID {
	var spawned []types.EntityID

	for _, id := range w.Query(domain.AttrSpawner | domain.AttrLocation) {
		e := w.Get(id)
		if e == nil {
			continue
		}
		s := e.Spawner
		s.Timer++
		if s.Timer < s.Threshold {
			continue
		}
		s.Timer = 0

		at := e.Pos()
		if !w.IsFree(at) {
			continue
		}
		kind := b.Roll(rng)
		if c := b.Spawn(w, kind, at); !c.IsNil() {
			spawned = append(spawned, c)
			logger.Log.WithFields(logrus.Fields{
				"component": "spawner_system",
				"kind":      kind,
				"pos":       at,
			}).Debug("creature spawned")
		}
	}
	return spawned
}

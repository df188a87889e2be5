package engine

import (
	"github.com/JMS55/roguelike-sub000/internal/config"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/systems"
	"github.com/JMS55/roguelike-sub000/pkg/dungeon"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/JMS55/roguelike-sub000/pkg/utils"
	"github.com/sirupsen/logrus"
)

// floorBuilder генерирует этаж потоком раскладки и заселяет его
// игровым потоком.
type floorBuilder struct {
	params         dungeon.Params
	threshold      int
	enemiesPerRoom int
	streams        *utils.Streams
	bestiary       *systems.Bestiary
	log            *logrus.Entry
}

func newFloorBuilder(cfg *config.Config, streams *utils.Streams, b *systems.Bestiary) *floorBuilder {
	return &floorBuilder{
		params:         cfg.Dungeon,
		threshold:      cfg.SpawnerThreshold,
		enemiesPerRoom: cfg.EnemiesPerRoom,
		streams:        streams,
		bestiary:       b,
		log:            logger.Component("world_builder"),
	}
}

// BuildFloor материализует новую раскладку и заселяет её.
func (f *floorBuilder) BuildFloor(w *domain.World, floor int) error {
	layout := dungeon.Generate(f.params, f.streams.Layout)
	dungeon.Materialize(w, layout, f.threshold)
	seeded := f.seedEnemies(w)

	f.log.WithFields(logrus.Fields{
		"floor":     floor,
		"rooms":     len(layout.Rooms),
		"spawners":  len(layout.Spawners),
		"enemies":   seeded,
		"staircase": layout.Staircase,
	}).Info("floor built")
	return nil
}

// seedEnemies сажает существ в случайные клетки всех комнат, кроме
// стартовой. Занятая клетка просто пропускается.
func (f *floorBuilder) seedEnemies(w *domain.World) int {
	rng := f.streams.Gameplay
	seeded := 0
	for i, room := range w.Rooms {
		if i == 0 {
			continue
		}
		for n := 0; n < f.enemiesPerRoom; n++ {
			cell := room.RandomInterior(rng)
			kind := f.bestiary.Roll(rng)
			if !f.bestiary.Spawn(w, kind, cell).IsNil() {
				seeded++
			}
		}
	}
	return seeded
}

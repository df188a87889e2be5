package dungeon

import (
	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

func NewWall(at domain.Position) *domain.Entity {
	return WallTemplate.SpawnEntity(at)
}

func NewFloor(at domain.Position) *domain.Entity {
	return FloorTemplate.SpawnEntity(at)
}

func NewStaircase(at domain.Position) *domain.Entity {
	return StaircaseTemplate.SpawnEntity(at)
}

// NewSpawner создаёт спавнер с нулевым таймером.
func NewSpawner(at domain.Position, threshold int) *domain.Entity {
	e := SpawnerTemplate.SpawnEntity(at)
	e.Spawner = &domain.SpawnerComponent{Threshold: threshold}
	return e
}

// CreatePlayer создаёт игрока в начале координат.
func CreatePlayer(stats domain.CombatComponent) *domain.Entity {
	combat := stats
	if combat.HP == 0 || combat.HP > combat.MaxHP {
		combat.HP = combat.MaxHP
	}
	if combat.Stamina == 0 || combat.Stamina > combat.MaxStamina {
		combat.Stamina = combat.MaxStamina
	}
	return &domain.Entity{
		Kind:      enums.EntityKindPlayer,
		Name:      "Player",
		Team:      domain.TeamAlly,
		Loc:       &domain.Location{Pos: domain.Origin, Facing: domain.North},
		Combat:    &combat,
		Render:    &domain.RenderComponent{Sprite: "player", Color: "cyan", Layer: domain.LayerActor},
		Cooldowns: &domain.Cooldowns{},
		Player:    &domain.PlayerComponent{Floor: 1, Warned: make(map[int]bool)},
	}
}

// Materialize переносит раскладку в мир: стены, плитки пола, лестницу и
// спавнеры. Ячейки создаются в лексикографическом порядке, чтобы порядок
// создания не зависел от обхода множеств. Возвращает ID лестницы.
func Materialize(w *domain.World, l *Layout, spawnerThreshold int) types.EntityID {
	for _, p := range l.WallCells() {
		w.Create(NewWall(p))
	}
	floors := l.FloorCells()
	for _, p := range floors {
		w.Create(NewFloor(p))
	}
	stairs := w.Create(NewStaircase(l.Staircase))
	for _, p := range l.Spawners {
		w.Create(NewSpawner(p, spawnerThreshold))
	}
	w.Rooms = append(w.Rooms[:0], l.Rooms...)

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_factory",
		"walls":     l.Walls.Size(),
		"floors":    len(floors),
		"spawners":  len(l.Spawners),
		"staircase": l.Staircase,
	}).Debug("layout materialized")

	return stairs
}

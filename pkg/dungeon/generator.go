package dungeon

import (
	"math/rand"

	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/zyedidia/generic/mapset"
)

// Params — параметры генерации этажа.
type Params struct {
	StartRadius   int     `yaml:"start_radius"`
	RoomAttempts  int     `yaml:"room_attempts"`
	Range         int     `yaml:"range"`
	RadiusMin     int     `yaml:"radius_min"`
	RadiusMax     int     `yaml:"radius_max"`
	GapMin        int     `yaml:"gap_min"`
	GapMax        int     `yaml:"gap_max"`
	SpawnerChance float64 `yaml:"spawner_chance"`
}

// DefaultParams — значения по умолчанию.
func DefaultParams() Params {
	return Params{
		StartRadius:   2,
		RoomAttempts:  40,
		Range:         30,
		RadiusMin:     1,
		RadiusMax:     4,
		GapMin:        1,
		GapMax:        4,
		SpawnerChance: 0.5,
	}
}

// Layout — результат генерации. В мир ничего не пишет: материализацией
// занимается Materialize.
type Layout struct {
	Rooms     []domain.Room
	Corridors mapset.Set[domain.Position]
	Walls     mapset.Set[domain.Position]
	Staircase domain.Position
	Spawners  []domain.Position
}

// Generate строит этаж. Результат полностью определяется params и
// состоянием rng (поток раскладки).
func Generate(params Params, rng *rand.Rand) *Layout {
	return NewLevel(params, rng).
		WithStartRoom().
		WithRooms().
		WithCorridors().
		WithWalls().
		PlaceStaircase().
		PlaceSpawners().
		Build()
}

// FloorCells — внутренности комнат и коридоры, без повторов,
// в лексикографическом порядке.
func (l *Layout) FloorCells() []domain.Position {
	cells := mapset.New[domain.Position]()
	for _, r := range l.Rooms {
		for _, p := range r.Interior() {
			cells.Put(p)
		}
	}
	l.Corridors.Each(func(p domain.Position) {
		cells.Put(p)
	})
	return sorted(cells)
}

// WallCells — стены в лексикографическом порядке.
func (l *Layout) WallCells() []domain.Position {
	return sorted(l.Walls)
}

package dungeon

import (
	"math/rand"
	"sort"

	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/JMS55/roguelike-sub000/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// LevelBuilder предоставляет fluent API для создания этажа.
// Шаги вызываются в порядке Generate; каждый берёт случайность только
// из rng билдера.
type LevelBuilder struct {
	params    Params
	rng       *rand.Rand
	rooms     []domain.Room
	corridors mapset.Set[domain.Position]
	walls     mapset.Set[domain.Position]
	staircase domain.Position
	spawners  []domain.Position
	rejected  int
}

// NewLevel создает новый builder для этажа
func NewLevel(params Params, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		params:    params,
		rng:       rng,
		corridors: mapset.New[domain.Position](),
		walls:     mapset.New[domain.Position](),
	}
}

func (b *LevelBuilder) randRange(min, max int) int {
	return utils.RandRange(b.rng, min, max)
}

// WithStartRoom ставит стартовую комнату в начало координат.
func (b *LevelBuilder) WithStartRoom() *LevelBuilder {
	b.rooms = append(b.rooms[:0], domain.Room{Center: domain.Origin, Radius: b.params.StartRadius})
	return b
}

// WithRooms делает RoomAttempts попыток поставить случайную комнату.
// Кандидат принимается, если зазор до каждой существующей комнаты не
// меньше минимума, выбранного для этой попытки. Отказ не повторяется.
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	p := b.params
	for i := 0; i < p.RoomAttempts; i++ {
		candidate := domain.Room{
			Center: domain.Position{
				X: b.randRange(-p.Range, p.Range),
				Y: b.randRange(-p.Range, p.Range),
			},
			Radius: b.randRange(p.RadiusMin, p.RadiusMax),
		}
		minGap := b.randRange(p.GapMin, p.GapMax)

		if b.fits(candidate, minGap) {
			b.rooms = append(b.rooms, candidate)
		} else {
			b.rejected++
		}
	}
	return b
}

func (b *LevelBuilder) fits(candidate domain.Room, minGap int) bool {
	for _, other := range b.rooms {
		if candidate.Gap(other) < minGap {
			return false
		}
	}
	return true
}

// WithCorridors соединяет каждую комнату с другой случайной комнатой
// коридором «сначала по горизонтали, потом по вертикали» между
// случайными внутренними клетками.
func (b *LevelBuilder) WithCorridors() *LevelBuilder {
	n := len(b.rooms)
	if n < 2 {
		return b
	}
	for i, room := range b.rooms {
		j := b.rng.Intn(n - 1)
		if j >= i {
			j++
		}
		from := room.RandomInterior(b.rng)
		to := b.rooms[j].RandomInterior(b.rng)
		b.carveHCorridor(from.X, to.X, from.Y)
		b.carveVCorridor(from.Y, to.Y, to.X)
	}
	return b
}

func (b *LevelBuilder) carveHCorridor(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.corridors.Put(domain.Position{X: x, Y: y})
	}
}

func (b *LevelBuilder) carveVCorridor(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.corridors.Put(domain.Position{X: x, Y: y})
	}
}

// WithWalls: кольца комнат плюс соседи коридоров вне любой комнаты
// (вместе с кольцом), минус сами коридоры и внутренности комнат.
func (b *LevelBuilder) WithWalls() *LevelBuilder {
	for _, r := range b.rooms {
		for _, p := range r.Ring() {
			b.walls.Put(p)
		}
	}

	b.corridors.Each(func(c domain.Position) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				p := c.Shift(dx, dy)
				if !b.insideAnyRoom(p, true) {
					b.walls.Put(p)
				}
			}
		}
	})

	b.corridors.Each(func(c domain.Position) {
		b.walls.Remove(c)
	})
	for _, p := range sorted(b.walls) {
		if b.insideAnyRoom(p, false) {
			b.walls.Remove(p)
		}
	}
	return b
}

func (b *LevelBuilder) insideAnyRoom(p domain.Position, withRing bool) bool {
	for _, r := range b.rooms {
		if withRing && r.ContainsWithRing(p) || !withRing && r.Contains(p) {
			return true
		}
	}
	return false
}

// PlaceStaircase ставит лестницу во вторую комнату. Если комната одна,
// лестница встаёт в стартовую, но не в её центр.
func (b *LevelBuilder) PlaceStaircase() *LevelBuilder {
	if len(b.rooms) > 1 {
		b.staircase = b.rooms[1].RandomInterior(b.rng)
		return b
	}

	start := b.rooms[0]
	candidates := make([]domain.Position, 0, 8)
	for _, p := range start.Interior() {
		if p != domain.Origin {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		// Стартовая комната из одной клетки: лестница прямо за ней.
		b.staircase = domain.Origin.Add(domain.East.Delta())
		b.walls.Remove(b.staircase)
		return b
	}
	b.staircase = candidates[b.rng.Intn(len(candidates))]
	return b
}

// PlaceSpawners: в каждой комнате с шансом SpawnerChance один спавнер
// в случайной внутренней клетке не на строке и не на столбце лестницы.
func (b *LevelBuilder) PlaceSpawners() *LevelBuilder {
	for _, r := range b.rooms {
		if !utils.Chance(b.rng, b.params.SpawnerChance) {
			continue
		}
		var candidates []domain.Position
		for _, p := range r.Interior() {
			if p.X != b.staircase.X && p.Y != b.staircase.Y {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		b.spawners = append(b.spawners, candidates[b.rng.Intn(len(candidates))])
	}
	return b
}

// Build возвращает готовый Layout.
func (b *LevelBuilder) Build() *Layout {
	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_builder",
		"rooms":     len(b.rooms),
		"rejected":  b.rejected,
		"corridors": b.corridors.Size(),
		"walls":     b.walls.Size(),
		"spawners":  len(b.spawners),
	}).Debug("layout built")

	return &Layout{
		Rooms:     append([]domain.Room(nil), b.rooms...),
		Corridors: b.corridors,
		Walls:     b.walls,
		Staircase: b.staircase,
		Spawners:  append([]domain.Position(nil), b.spawners...),
	}
}

func sorted(set mapset.Set[domain.Position]) []domain.Position {
	out := make([]domain.Position, 0, set.Size())
	set.Each(func(p domain.Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

package dungeon

import (
	"math/rand"
	"testing"

	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_StartRoomAtOrigin(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		params := DefaultParams()
		layout := Generate(params, rand.New(rand.NewSource(seed)))

		require.NotEmpty(t, layout.Rooms)
		assert.Equal(t, domain.Room{Center: domain.Origin, Radius: params.StartRadius}, layout.Rooms[0])
	}
}

// Проверяем, что ни одна пара комнат не пересекается и не касается:
// минимальный зазор в конфиге по умолчанию — 1.
func TestGenerate_RoomsRespectMinimumGap(t *testing.T) {
	params := DefaultParams()
	params.RoomAttempts = 200

	for seed := int64(0); seed < 20; seed++ {
		layout := Generate(params, rand.New(rand.NewSource(seed)))
		for i := range layout.Rooms {
			for j := i + 1; j < len(layout.Rooms); j++ {
				gap := layout.Rooms[i].Gap(layout.Rooms[j])
				assert.GreaterOrEqual(t, gap, params.GapMin, "seed %d rooms %d and %d", seed, i, j)
			}
		}
	}
}

// Каждая принятая комната прошла проверку против своего зазора попытки;
// при фиксированном зазоре он должен соблюдаться точно.
func TestBuilder_FixedGapIsExact(t *testing.T) {
	params := DefaultParams()
	params.RoomAttempts = 200
	params.GapMin, params.GapMax = 3, 3

	layout := Generate(params, rand.New(rand.NewSource(9)))
	for i := range layout.Rooms {
		for j := i + 1; j < len(layout.Rooms); j++ {
			assert.GreaterOrEqual(t, layout.Rooms[i].Gap(layout.Rooms[j]), 3)
		}
	}
}

func TestGenerate_WallsNeverCoverCorridorsOrInteriors(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		layout := Generate(DefaultParams(), rand.New(rand.NewSource(seed)))

		layout.Corridors.Each(func(p domain.Position) {
			assert.False(t, layout.Walls.Has(p), "seed %d: corridor cell %v is a wall", seed, p)
		})
		for _, r := range layout.Rooms {
			for _, p := range r.Interior() {
				assert.False(t, layout.Walls.Has(p), "seed %d: interior cell %v is a wall", seed, p)
			}
		}
	}
}

func TestGenerate_StaircaseAndSpawnerPlacement(t *testing.T) {
	params := DefaultParams()
	params.SpawnerChance = 1

	for seed := int64(0); seed < 20; seed++ {
		layout := Generate(params, rand.New(rand.NewSource(seed)))

		if len(layout.Rooms) > 1 {
			assert.True(t, layout.Rooms[1].Contains(layout.Staircase), "seed %d: staircase outside room #2", seed)
		}
		for _, sp := range layout.Spawners {
			assert.NotEqual(t, layout.Staircase.X, sp.X, "seed %d: spawner in staircase column", seed)
			assert.NotEqual(t, layout.Staircase.Y, sp.Y, "seed %d: spawner in staircase row", seed)
		}
	}
}

func TestGenerate_SingleRoomStaircaseAvoidsOrigin(t *testing.T) {
	params := DefaultParams()
	params.RoomAttempts = 0

	layout := Generate(params, rand.New(rand.NewSource(1)))

	require.Len(t, layout.Rooms, 1)
	assert.NotEqual(t, domain.Origin, layout.Staircase)
	assert.True(t, layout.Rooms[0].Contains(layout.Staircase))
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(DefaultParams(), rand.New(rand.NewSource(77)))
	b := Generate(DefaultParams(), rand.New(rand.NewSource(77)))

	assert.Equal(t, a.Rooms, b.Rooms)
	assert.Equal(t, a.Staircase, b.Staircase)
	assert.Equal(t, a.Spawners, b.Spawners)
	assert.Equal(t, a.WallCells(), b.WallCells())
}

func TestGenerate_RoomCountBoundsAndGapTrend(t *testing.T) {
	const trials = 30

	mean := func(gap int) float64 {
		params := DefaultParams()
		params.RoomAttempts = 200
		params.GapMin, params.GapMax = gap, gap

		total := 0
		for seed := int64(0); seed < trials; seed++ {
			n := len(Generate(params, rand.New(rand.NewSource(seed))).Rooms)
			require.GreaterOrEqual(t, n, 1)
			require.LessOrEqual(t, n, 201)
			total += n
		}
		return float64(total) / trials
	}

	tight, loose, sparse := mean(0), mean(4), mean(10)
	assert.Greater(t, tight, loose)
	assert.Greater(t, loose, sparse)
}

func TestMaterialize(t *testing.T) {
	w := domain.NewWorld()
	params := DefaultParams()
	params.SpawnerChance = 1
	layout := Generate(params, rand.New(rand.NewSource(3)))

	stairs := Materialize(w, layout, 5)

	require.True(t, w.Alive(stairs))
	assert.Equal(t, layout.Staircase, w.MustGet(stairs).Pos())
	assert.Len(t, w.Query(domain.AttrStaircase), 1)
	assert.Len(t, w.Query(domain.AttrSpawner), len(layout.Spawners))
	assert.True(t, w.IsFree(domain.Origin), "floor tiles must not block the origin")
	assert.Equal(t, layout.Rooms, w.Rooms)
}

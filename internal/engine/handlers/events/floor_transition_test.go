package events

import (
	"errors"
	"math/rand"
	"os"
	"testing"

	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/engine/handlers"
	"github.com/JMS55/roguelike-sub000/pkg/dungeon"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type stubFloors struct {
	built []int
	err   error
}

func (s *stubFloors) BuildFloor(w *domain.World, floor int) error {
	s.built = append(s.built, floor)
	if s.err != nil {
		return s.err
	}
	w.Create(dungeon.NewWall(domain.Position{X: 5, Y: 5}))
	return nil
}

func newFloorWorld(t *testing.T) (*domain.World, handlers.Context) {
	t.Helper()
	w := domain.NewWorld()
	player := w.Create(dungeon.CreatePlayer(domain.CombatComponent{MaxHP: 10, MaxStamina: 20}))

	e := w.MustGet(player)
	w.MoveTo(player, domain.Position{X: 7, Y: -3})
	w.SetFacing(player, domain.West)
	e.Player.Turns = 321
	e.Player.Warned[0] = true
	e.Player.Exhausted = true
	e.Combat.Stamina = 0

	for i := 0; i < 5; i++ {
		w.Create(dungeon.NewWall(domain.Position{X: i, Y: 1}))
	}
	w.Create(&domain.Entity{
		Kind:   enums.EntityKindCreature,
		Team:   domain.TeamEnemy,
		Loc:    &domain.Location{Pos: domain.Origin},
		Combat: &domain.CombatComponent{HP: 3, MaxHP: 3},
	})
	w.Rooms = []domain.Room{{Center: domain.Origin, Radius: 2}}

	return w, handlers.Context{World: w, Actor: player, Rng: rand.New(rand.NewSource(1))}
}

func TestHandleFloorTransition(t *testing.T) {
	w, ctx := newFloorWorld(t)
	floors := &stubFloors{}

	res, err := HandleFloorTransition(ctx, floors)
	require.NoError(t, err)
	assert.True(t, res.Consumed)
	assert.Contains(t, res.Msg, "floor 2")

	player := w.MustGet(ctx.Actor)
	assert.Equal(t, domain.Origin, player.Pos(), "player at the origin even though a creature stood there")
	assert.Equal(t, domain.North, player.Loc.Facing)
	assert.Equal(t, 0, player.Player.Turns)
	assert.Equal(t, 2, player.Player.Floor)
	assert.Empty(t, player.Player.Warned)
	assert.False(t, player.Player.Exhausted)
	assert.Equal(t, 20, player.Combat.Stamina)

	assert.Equal(t, []int{2}, floors.built)
	assert.Equal(t, 2, w.Len(), "player plus what the new floor created")
	assert.Len(t, w.Query(domain.AttrCombat), 1)
	assert.Empty(t, w.Rooms)
}

func TestHandleFloorTransition_BuildError(t *testing.T) {
	_, ctx := newFloorWorld(t)
	boom := errors.New("boom")

	_, err := HandleFloorTransition(ctx, &stubFloors{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestHandleFloorTransition_RejectsNonPlayer(t *testing.T) {
	w, ctx := newFloorWorld(t)
	for _, id := range w.Query(domain.AttrCombat) {
		if id != ctx.Actor {
			ctx.Actor = id
			break
		}
	}
	require.Nil(t, w.MustGet(ctx.Actor).Player)

	_, err := HandleFloorTransition(ctx, &stubFloors{})
	assert.Error(t, err)
}

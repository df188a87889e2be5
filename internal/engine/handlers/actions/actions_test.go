package actions

import (
	"encoding/json"
	"math/rand"
	"os"
	"testing"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/engine/handlers"
	"github.com/JMS55/roguelike-sub000/internal/systems"
	"github.com/JMS55/roguelike-sub000/pkg/api"
	"github.com/JMS55/roguelike-sub000/pkg/dungeon"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func setup(t *testing.T) (*domain.World, handlers.Context) {
	t.Helper()
	w := domain.NewWorld()
	player := w.Create(dungeon.CreatePlayer(domain.CombatComponent{MaxHP: 10, Strength: 3, MaxStamina: 10}))
	return w, handlers.Context{
		World:  w,
		Actor:  player,
		Rng:    rand.New(rand.NewSource(1)),
		Attack: systems.AttackSpec{Offsets: systems.MeleeOffsets, DamageStat: domain.StatStrength},
	}
}

func addEnemy(w *domain.World, at domain.Position, hp int) types.EntityID {
	return w.Create(&domain.Entity{
		Kind:   enums.EntityKindCreature,
		Name:   "Goblin",
		Team:   domain.TeamEnemy,
		Loc:    &domain.Location{Pos: at},
		Combat: &domain.CombatComponent{HP: hp, MaxHP: hp},
	})
}

func dir(t *testing.T, d string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(api.DirectionPayload{Direction: d})
	require.NoError(t, err)
	return raw
}

func TestHandleMove(t *testing.T) {
	reg := Registry()

	t.Run("open cell", func(t *testing.T) {
		w, ctx := setup(t)
		res, err := reg[domain.ActionMove](ctx, dir(t, "EAST"))
		require.NoError(t, err)
		assert.True(t, res.Consumed)
		assert.Equal(t, domain.Position{X: 1, Y: 0}, w.MustGet(ctx.Actor).Pos())
	})

	t.Run("blocked keeps the turn", func(t *testing.T) {
		w, ctx := setup(t)
		w.Create(dungeon.NewWall(domain.Position{X: 0, Y: 1}))

		res, err := reg[domain.ActionMove](ctx, dir(t, "SOUTH"))
		require.NoError(t, err)
		assert.False(t, res.Consumed)
		assert.NotEmpty(t, res.Msg)
		assert.Equal(t, domain.Origin, w.MustGet(ctx.Actor).Pos())
		assert.Equal(t, domain.South, w.MustGet(ctx.Actor).Loc.Facing)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, ctx := setup(t)
		_, err := reg[domain.ActionMove](ctx, dir(t, "NORTHEAST"))
		assert.Error(t, err)

		_, err = reg[domain.ActionMove](ctx, json.RawMessage(`{"direction":`))
		assert.Error(t, err)
	})
}

func TestHandleTurn_IsFree(t *testing.T) {
	w, ctx := setup(t)

	res, err := Registry()[domain.ActionTurn](ctx, dir(t, "w"))
	require.NoError(t, err)
	assert.False(t, res.Consumed)
	assert.Equal(t, domain.West, w.MustGet(ctx.Actor).Loc.Facing)
	assert.Equal(t, domain.Origin, w.MustGet(ctx.Actor).Pos())
}

func TestHandleAttack(t *testing.T) {
	t.Run("hit in facing direction", func(t *testing.T) {
		w, ctx := setup(t)
		enemy := addEnemy(w, domain.Position{X: 0, Y: -1}, 5)

		res, err := HandleAttack(ctx)
		require.NoError(t, err)
		assert.True(t, res.Consumed)
		assert.Equal(t, 2, w.MustGet(enemy).Combat.HP)
	})

	t.Run("miss consumes", func(t *testing.T) {
		w, ctx := setup(t)
		enemy := addEnemy(w, domain.Position{X: 1, Y: 0}, 5)

		res, err := HandleAttack(ctx)
		require.NoError(t, err)
		assert.True(t, res.Consumed)
		assert.Equal(t, 5, w.MustGet(enemy).Combat.HP, "only the facing cell is tested")
	})

	t.Run("attack lock", func(t *testing.T) {
		w, ctx := setup(t)
		enemy := addEnemy(w, domain.Position{X: 0, Y: -1}, 5)
		w.MustGet(ctx.Actor).Cooldowns.AttackLock = 1

		res, err := HandleAttack(ctx)
		require.NoError(t, err)
		assert.False(t, res.Consumed)
		assert.Equal(t, 5, w.MustGet(enemy).Combat.HP)
	})
}

func TestHandleInteract(t *testing.T) {
	t.Run("staircase ahead", func(t *testing.T) {
		w, ctx := setup(t)
		w.Create(dungeon.NewStaircase(domain.Position{X: 0, Y: -1}))

		res, err := HandleInteract(ctx)
		require.NoError(t, err)
		assert.True(t, res.Consumed)
		assert.Equal(t, domain.EventFloorTransition, res.Event)
	})

	t.Run("staircase behind", func(t *testing.T) {
		w, ctx := setup(t)
		w.Create(dungeon.NewStaircase(domain.Position{X: 0, Y: 1}))

		res, err := HandleInteract(ctx)
		require.NoError(t, err)
		assert.False(t, res.Consumed)
		assert.Equal(t, domain.EventNone, res.Event)
	})
}

func TestHandlePass(t *testing.T) {
	_, ctx := setup(t)
	res, err := Registry()[domain.ActionPass](ctx, nil)
	require.NoError(t, err)
	assert.True(t, res.Consumed)
}

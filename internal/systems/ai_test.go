package systems

import (
	"testing"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrain(w *domain.World) (*Brain, *Bestiary) {
	b := NewBestiary(nil, nil)
	return NewBrain(w, newRNG(), b), b
}

func spawn(t *testing.T, w *domain.World, b *Bestiary, kind enums.CreatureKind, at domain.Position) types.EntityID {
	t.Helper()
	id := b.Spawn(w, kind, at)
	require.False(t, id.IsNil(), "spawn %s at %v", kind, at)
	return id
}

func TestBrain_AttacksAdjacentTarget(t *testing.T) {
	w := domain.NewWorld()
	brain, b := newBrain(w)
	player := addPlayer(w, pos(0, 1), 10)
	goblin := spawn(t, w, b, enums.CreatureGoblin, pos(0, 0))

	brain.Decide(goblin)
	g := w.MustGet(goblin)
	require.NotNil(t, g.QueuedAttack)
	assert.Nil(t, g.QueuedMovement)
	assert.Equal(t, player, g.AI.Target)
	assert.Equal(t, enums.AIStateChasing, g.AI.State())

	brain.Resolve(goblin)
	assert.Nil(t, g.QueuedAttack, "intents are consumed")
	assert.Equal(t, 8, w.MustGet(player).Combat.HP)
	assert.Equal(t, domain.South, g.Loc.Facing)
	assert.Equal(t, pos(0, 0), g.Pos())
}

func TestBrain_ChasesTowardTarget(t *testing.T) {
	w := domain.NewWorld()
	brain, b := newBrain(w)
	player := addPlayer(w, pos(3, 0), 10)
	goblin := spawn(t, w, b, enums.CreatureGoblin, pos(0, 0))

	brain.Act(goblin)

	g := w.MustGet(goblin)
	assert.Equal(t, player, g.AI.Target)
	assert.Equal(t, pos(1, 0), g.Pos())
	assert.Equal(t, domain.East, g.Loc.Facing)
	assert.Equal(t, 10, w.MustGet(player).Combat.HP)
}

func TestBrain_SpearmanKeepsDistance(t *testing.T) {
	t.Run("attacks from two cells", func(t *testing.T) {
		w := domain.NewWorld()
		brain, b := newBrain(w)
		player := addPlayer(w, pos(2, 0), 10)
		spear := spawn(t, w, b, enums.CreatureSkeletonSpearman, pos(0, 0))

		brain.Act(spear)

		assert.Equal(t, pos(0, 0), w.MustGet(spear).Pos())
		assert.Equal(t, 7, w.MustGet(player).Combat.HP)
	})

	t.Run("steps to exact range", func(t *testing.T) {
		w := domain.NewWorld()
		brain, b := newBrain(w)
		player := addPlayer(w, pos(3, 0), 10)
		spear := spawn(t, w, b, enums.CreatureSkeletonSpearman, pos(0, 0))

		brain.Act(spear)
		assert.Equal(t, pos(1, 0), w.MustGet(spear).Pos())
		assert.Equal(t, 10, w.MustGet(player).Combat.HP)

		brain.Act(spear)
		assert.Equal(t, pos(1, 0), w.MustGet(spear).Pos(), "does not close in further")
		assert.Equal(t, 7, w.MustGet(player).Combat.HP)
	})
}

func TestBrain_DropsOutOfReachTarget(t *testing.T) {
	w := domain.NewWorld()
	brain, b := newBrain(w)
	player := addPlayer(w, pos(10, 0), 10)
	bat := spawn(t, w, b, enums.CreaturePhaseBat, pos(0, 0))
	w.MustGet(bat).AI.Chase(player)

	brain.Act(bat)

	e := w.MustGet(bat)
	assert.True(t, e.AI.Target.IsNil())
	assert.Equal(t, enums.AIStateNoTarget, e.AI.State())
	assert.Equal(t, pos(0, 0), e.Pos())
}

func TestBrain_DropsTargetWithoutChasePath(t *testing.T) {
	w := domain.NewWorld()
	brain, b := newBrain(w)
	player := addPlayer(w, pos(1, 0), 10)
	spear := spawn(t, w, b, enums.CreatureSkeletonSpearman, pos(0, 0))
	for _, c := range []domain.Position{pos(0, -1), pos(0, 1), pos(-1, 0)} {
		addWall(w, c)
	}

	brain.Decide(spear)
	e := w.MustGet(spear)
	require.Equal(t, player, e.AI.Target, "adjacent target passes validation")
	require.NotNil(t, e.QueuedMovement, "too close for the spear, so it chases")

	brain.Resolve(spear)

	assert.True(t, e.AI.Target.IsNil())
	assert.Equal(t, enums.AIStateNoTarget, e.AI.State())
	assert.Equal(t, pos(0, 0), e.Pos())
	assert.Equal(t, 10, w.MustGet(player).Combat.HP)
}

func TestBrain_EnclosedPatrolDropsGoal(t *testing.T) {
	w := domain.NewWorld()
	brain, b := newBrain(w)
	w.Rooms = []domain.Room{{Center: pos(6, 6), Radius: 1}}

	goblin := spawn(t, w, b, enums.CreatureGoblin, pos(0, 0))
	for _, d := range domain.Orthogonals {
		addWall(w, pos(0, 0).Add(d.Delta()))
	}
	w.MustGet(goblin).AI.SetPatrol(pos(6, 6))

	brain.Act(goblin)

	g := w.MustGet(goblin)
	assert.Nil(t, g.AI.PatrolGoal)
	assert.Equal(t, pos(0, 0), g.Pos())
}

func TestBrain_PatrolPicksRoomCell(t *testing.T) {
	w := domain.NewWorld()
	brain, b := newBrain(w)
	room := domain.Room{Center: pos(0, 0), Radius: 3}
	w.Rooms = []domain.Room{room}

	goblin := spawn(t, w, b, enums.CreatureGoblin, pos(0, 0))
	brain.Decide(goblin)

	g := w.MustGet(goblin)
	require.NotNil(t, g.AI.PatrolGoal)
	assert.True(t, room.Contains(*g.AI.PatrolGoal))
	assert.NotEqual(t, pos(0, 0), *g.AI.PatrolGoal)
	require.NotNil(t, g.QueuedMovement)
	assert.Equal(t, domain.MovePatrol, g.QueuedMovement.Mode)
	assert.Equal(t, enums.AIStatePatrolling, g.AI.State())
}

func TestBrain_NonPatrollingStaysIdle(t *testing.T) {
	w := domain.NewWorld()
	brain, b := newBrain(w)
	w.Rooms = []domain.Room{{Center: pos(0, 0), Radius: 3}}
	bat := spawn(t, w, b, enums.CreaturePhaseBat, pos(0, 0))

	brain.Act(bat)

	e := w.MustGet(bat)
	assert.Nil(t, e.AI.PatrolGoal)
	assert.Equal(t, pos(0, 0), e.Pos())
}

func TestBrain_AttackLockAfterStrike(t *testing.T) {
	w := domain.NewWorld()
	brain, b := newBrain(w)
	player := addPlayer(w, pos(0, 1), 100)
	ogre := spawn(t, w, b, enums.CreatureOgreBerserker, pos(0, 0))

	// Ход врагов и затем upkeep, как в планировщике.
	var struck []bool
	for turn := 0; turn < 4; turn++ {
		hp := w.MustGet(player).Combat.HP
		brain.Act(ogre)
		struck = append(struck, w.MustGet(player).Combat.HP < hp)
		if c := w.MustGet(ogre).Cooldowns; c.AttackLock > 0 {
			c.AttackLock--
		}
	}

	assert.Equal(t, []bool{true, false, false, true}, struck, "locked for exactly two enemy turns")
	assert.Equal(t, pos(0, 0), w.MustGet(ogre).Pos())
}

func TestBrain_ShamanSummons(t *testing.T) {
	w := domain.NewWorld()
	brain, b := newBrain(w)
	p, _ := b.Profile(enums.CreatureGoblinShaman)
	p.SummonChance = 1

	player := addPlayer(w, pos(0, 1), 10)
	shaman := spawn(t, w, b, enums.CreatureGoblinShaman, pos(0, 0))

	brain.Act(shaman)

	helper := w.FindAt(pos(0, -1), domain.AttrAI)
	require.False(t, helper.IsNil())
	assert.Equal(t, enums.CreatureGoblin, w.MustGet(helper).AI.Kind)
	assert.Equal(t, 10, w.MustGet(player).Combat.HP, "summoning replaces the attack")
}

func TestBrain_BatRepositionsBeforeStriking(t *testing.T) {
	t.Run("moves to a cell in reach and strikes", func(t *testing.T) {
		w := domain.NewWorld()
		brain, b := newBrain(w)
		p, _ := b.Profile(enums.CreaturePhaseBat)
		p.RepositionChance = 1

		player := addPlayer(w, pos(0, 1), 10)
		bat := spawn(t, w, b, enums.CreaturePhaseBat, pos(0, 0))

		brain.Act(bat)

		e := w.MustGet(bat)
		assert.Contains(t, []domain.Position{pos(-1, 1), pos(1, 1)}, e.Pos())
		assert.Less(t, w.MustGet(player).Combat.HP, 10)
		assert.Equal(t, player, e.AI.Target)
	})

	t.Run("no cell in reach strikes in place", func(t *testing.T) {
		w := domain.NewWorld()
		brain, b := newBrain(w)
		p, _ := b.Profile(enums.CreaturePhaseBat)
		p.RepositionChance = 1

		player := addPlayer(w, pos(0, 1), 10)
		bat := spawn(t, w, b, enums.CreaturePhaseBat, pos(0, 0))
		addWall(w, pos(-1, 1))
		addWall(w, pos(1, 1))

		brain.Act(bat)

		assert.Equal(t, pos(0, 0), w.MustGet(bat).Pos())
		assert.Less(t, w.MustGet(player).Combat.HP, 10)
	})
}

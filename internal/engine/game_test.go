package engine

import (
	"context"
	"testing"

	"github.com/JMS55/roguelike-sub000/internal/config"
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/dungeon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messageTexts(msgs []domain.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}

func TestNewGame_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.RarityWeights = []int{0, 0, 0}
	_, err := NewGame(cfg)
	assert.Error(t, err)
}

func TestGame_Start(t *testing.T) {
	g := newStartedGame(t)

	assert.Equal(t, PhasePlayerTurn, g.Phase())
	assert.Equal(t, 1, g.Floor())
	assert.Equal(t, 0, g.Turn())

	p := g.World().MustGet(g.Player())
	assert.Equal(t, domain.Origin, p.Pos())
	assert.Equal(t, domain.North, p.Loc.Facing)
	assert.Len(t, g.World().Query(domain.AttrStaircase), 1)
	assert.Contains(t, messageTexts(g.Messages()), "You enter the dungeon.")

	assert.Error(t, g.Start(context.Background()), "second start is rejected")
}

func TestGame_SubmitBeforeStart(t *testing.T) {
	g, err := NewGame(config.Default())
	require.NoError(t, err)

	err = submit(t, g, "PASS", "")
	assert.ErrorIs(t, err, ErrNotPlayerTurn)
}

func TestGame_InvalidCommands(t *testing.T) {
	tests := []struct {
		name      string
		action    string
		direction string
	}{
		{"unknown action", "FLY", ""},
		{"missing direction", "MOVE", ""},
		{"diagonal direction", "MOVE", "NORTHEAST"},
		{"garbage direction", "TURN", "SIDEWAYS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newStartedGame(t)
			err := submit(t, g, tt.action, tt.direction)
			assert.ErrorIs(t, err, ErrInvalidCommand)
			assert.Equal(t, 0, g.Turn())
			assert.Empty(t, g.Replay().Actions, "rejected commands are not recorded")
		})
	}
}

func TestGame_Move(t *testing.T) {
	g := newStartedGame(t)
	p := clearFloor(g)

	require.NoError(t, submit(t, g, "MOVE", "EAST"))

	assert.Equal(t, domain.Position{X: 1, Y: 0}, p.Pos())
	assert.Equal(t, domain.East, p.Loc.Facing)
	assert.Equal(t, 1, g.Turn())
	assert.Equal(t, 1, p.Player.Turns)
	assert.Equal(t, PhasePlayerTurn, g.Phase())
}

func TestGame_BlockedMoveKeepsTurn(t *testing.T) {
	g := newStartedGame(t)
	p := clearFloor(g)
	g.world.Create(dungeon.NewWall(domain.Position{X: 1, Y: 0}))
	g.Messages()

	require.NoError(t, submit(t, g, "MOVE", "EAST"))

	assert.Equal(t, domain.Origin, p.Pos())
	assert.Equal(t, domain.East, p.Loc.Facing, "facing changes even when the step fails")
	assert.Equal(t, 0, g.Turn())
	assert.Contains(t, messageTexts(g.Messages()), "Your way is blocked.")
	assert.Len(t, g.Replay().Actions, 1)
}

func TestGame_TurnIsFree(t *testing.T) {
	g := newStartedGame(t)
	p := clearFloor(g)

	require.NoError(t, submit(t, g, "TURN", "WEST"))

	assert.Equal(t, domain.West, p.Loc.Facing)
	assert.Equal(t, 0, g.Turn())
	assert.Equal(t, PhasePlayerTurn, g.Phase())
}

func TestGame_EnemiesActAfterPlayer(t *testing.T) {
	g := newStartedGame(t)
	p := clearFloor(g)
	goblin := g.bestiary.Spawn(g.world, enums.CreatureGoblin, domain.Position{X: 0, Y: 1})
	require.False(t, goblin.IsNil())

	require.NoError(t, submit(t, g, "PASS", ""))

	assert.Equal(t, 18, p.Combat.HP, "goblin hits for its strength")
	assert.Equal(t, PhasePlayerTurn, g.Phase())
}

func TestGame_PlayerKillsEnemy(t *testing.T) {
	g := newStartedGame(t)
	clearFloor(g)
	goblin := g.bestiary.Spawn(g.world, enums.CreatureGoblin, domain.Position{X: 0, Y: -1})
	g.world.MustGet(goblin).Combat.HP = 1

	require.NoError(t, submit(t, g, "ATTACK", ""))

	assert.False(t, g.world.Alive(goblin))
	assert.Equal(t, 1, g.Turn())
	assert.Contains(t, messageTexts(g.Messages()), "The Goblin dies.")
}

func TestGame_DeathEndsTheGame(t *testing.T) {
	g := newStartedGame(t)
	p := clearFloor(g)
	p.Combat.HP = 2
	g.bestiary.Spawn(g.world, enums.CreatureGoblin, domain.Position{X: 0, Y: 1})

	require.NoError(t, submit(t, g, "PASS", ""))

	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.False(t, g.world.Alive(g.player))
	assert.Contains(t, messageTexts(g.Messages()), "You die...")

	err := submit(t, g, "PASS", "")
	assert.ErrorIs(t, err, ErrGameOver)

	snap := g.Snapshot()
	assert.True(t, snap.Player.IsDead)
	assert.Equal(t, string(PhaseGameOver), snap.Phase)
}

func TestGame_StarvationKills(t *testing.T) {
	g := newStartedGame(t)
	p := clearFloor(g)
	p.Combat.HP = 1
	p.Combat.Stamina = 0
	p.Player.Turns = 449

	require.NoError(t, submit(t, g, "PASS", ""))

	assert.Equal(t, PhaseGameOver, g.Phase())
}

func TestGame_FloorTransition(t *testing.T) {
	g := newStartedGame(t)
	p := clearFloor(g)
	stairs := g.world.Create(dungeon.NewStaircase(domain.Position{X: 0, Y: -1}))
	require.NoError(t, submit(t, g, "MOVE", "EAST"))
	require.NoError(t, submit(t, g, "MOVE", "WEST"))
	require.NoError(t, submit(t, g, "TURN", "NORTH"))
	p.Combat.Stamina = 10
	g.Messages()

	require.NoError(t, submit(t, g, "INTERACT", ""))

	assert.Equal(t, PhasePlayerTurn, g.Phase())
	assert.Equal(t, 2, g.Floor())
	assert.Equal(t, 3, g.Turn())
	assert.Equal(t, 0, p.Player.Turns)
	assert.Equal(t, 2, p.Player.Floor)
	assert.Equal(t, p.Combat.MaxStamina, p.Combat.Stamina)
	assert.Equal(t, domain.Origin, p.Pos())
	assert.False(t, g.world.Alive(stairs))
	assert.Len(t, g.world.Query(domain.AttrStaircase), 1, "new floor has its own staircase")
	assert.NotEmpty(t, g.world.Rooms)
	assert.Contains(t, messageTexts(g.Messages()), "You descend to floor 2.")
}

func TestGame_InteractWithoutStairs(t *testing.T) {
	g := newStartedGame(t)
	clearFloor(g)

	require.NoError(t, submit(t, g, "INTERACT", ""))

	assert.Equal(t, 1, g.Floor())
	assert.Equal(t, 0, g.Turn())
}

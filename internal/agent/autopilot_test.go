package agent

import (
	"context"
	"os"
	"testing"

	"github.com/JMS55/roguelike-sub000/internal/config"
	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/engine"
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

func enemyAt(w *domain.World, p domain.Position) types.EntityID {
	return w.Create(&domain.Entity{
		Kind:   enums.EntityKindCreature,
		Name:   "Goblin",
		Team:   domain.TeamEnemy,
		Loc:    &domain.Location{Pos: p},
		Combat: &domain.CombatComponent{HP: 5, MaxHP: 5},
	})
}

func TestAutopilot_Decide(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *domain.World)
		want  api.Command
	}{
		{
			name:  "attacks enemy ahead",
			setup: func(w *domain.World) { enemyAt(w, domain.Position{X: 0, Y: -1}) },
			want:  api.Command{Action: "ATTACK"},
		},
		{
			name:  "turns to enemy on the side",
			setup: func(w *domain.World) { enemyAt(w, domain.Position{X: 1, Y: 0}) },
			want:  api.Command{Action: "TURN", Direction: "EAST"},
		},
		{
			name: "interacts with stairs ahead",
			setup: func(w *domain.World) {
				w.Create(dungeon.NewStaircase(domain.Position{X: 0, Y: -1}))
			},
			want: api.Command{Action: "INTERACT"},
		},
		{
			name: "faces adjacent stairs",
			setup: func(w *domain.World) {
				w.Create(dungeon.NewStaircase(domain.Position{X: 0, Y: 1}))
			},
			want: api.Command{Action: "TURN", Direction: "SOUTH"},
		},
		{
			name: "walks towards stairs",
			setup: func(w *domain.World) {
				w.Create(dungeon.NewStaircase(domain.Position{X: 4, Y: 0}))
			},
			want: api.Command{Action: "MOVE", Direction: "EAST"},
		},
		{
			name: "walks around a wall",
			setup: func(w *domain.World) {
				w.Create(dungeon.NewWall(domain.Position{X: 1, Y: 0}))
				w.Create(dungeon.NewStaircase(domain.Position{X: 3, Y: 0}))
			},
			want: api.Command{Action: "MOVE", Direction: "NORTH"},
		},
		{
			name:  "waits with no stairs",
			setup: func(w *domain.World) {},
			want:  api.Command{Action: "PASS"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := domain.NewWorld()
			player := w.Create(dungeon.CreatePlayer(domain.CombatComponent{MaxHP: 10, MaxStamina: 10}))
			tt.setup(w)

			got := NewAutopilot().Decide(w, player)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, got.Validate())
		})
	}
}

func TestAutopilot_Run(t *testing.T) {
	g, err := engine.NewGame(config.Default())
	require.NoError(t, err)
	require.NoError(t, g.Start(context.Background()))

	sent, err := NewAutopilot().Run(context.Background(), g, 200)
	require.NoError(t, err)
	assert.Positive(t, sent)
	assert.Positive(t, g.Turn())
}

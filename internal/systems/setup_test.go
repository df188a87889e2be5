package systems

import (
	"math/rand"
	"os"
	"testing"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/dungeon"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

func pos(x, y int) domain.Position {
	return domain.Position{X: x, Y: y}
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func addPlayer(w *domain.World, at domain.Position, hp int) types.EntityID {
	return w.Create(&domain.Entity{
		Kind:      enums.EntityKindPlayer,
		Name:      "Player",
		Team:      domain.TeamAlly,
		Loc:       &domain.Location{Pos: at, Facing: domain.North},
		Combat:    &domain.CombatComponent{HP: hp, MaxHP: hp, Strength: 3},
		Cooldowns: &domain.Cooldowns{},
		Player:    &domain.PlayerComponent{Warned: map[int]bool{}},
	})
}

func addDummy(w *domain.World, at domain.Position, team domain.Team, hp int) types.EntityID {
	return w.Create(&domain.Entity{
		Kind:   enums.EntityKindCreature,
		Name:   "Dummy",
		Team:   team,
		Loc:    &domain.Location{Pos: at},
		Combat: &domain.CombatComponent{HP: hp, MaxHP: hp, Strength: 2},
	})
}

func addWall(w *domain.World, at domain.Position) types.EntityID {
	return w.Create(dungeon.NewWall(at))
}

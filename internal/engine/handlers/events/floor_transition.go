package events

import (
	"fmt"

	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/engine/handlers"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

// FloorBuilder генерирует и заселяет этаж в уже очищенном мире.
type FloorBuilder interface {
	BuildFloor(w *domain.World, floor int) error
}

// HandleFloorTransition уводит игрока на этаж ниже: всё, кроме игрока,
// удаляется, игрок встаёт в начало координат со сброшенным счётчиком
// ходов, после чего этаж строится заново.
func HandleFloorTransition(ctx handlers.Context, floors FloorBuilder) (handlers.Result, error) {
	w := ctx.World
	actor := w.MustGet(ctx.Actor)
	if actor.Player == nil {
		return handlers.EmptyResult(), fmt.Errorf("floor transition: actor %s is not the player", ctx.Actor)
	}

	oldFloor := actor.Player.Floor
	purged := w.Purge(ctx.Actor)
	w.Rooms = nil

	w.MoveTo(ctx.Actor, domain.Origin)
	w.SetFacing(ctx.Actor, domain.North)

	p := actor.Player
	p.Floor = oldFloor + 1
	p.Turns = 0
	p.Warned = make(map[int]bool)
	p.Exhausted = false
	if actor.Combat != nil {
		actor.Combat.RestoreStamina(actor.Combat.MaxStamina)
	}
	if actor.Cooldowns != nil {
		*actor.Cooldowns = domain.Cooldowns{}
	}

	if err := floors.BuildFloor(w, p.Floor); err != nil {
		return handlers.EmptyResult(), fmt.Errorf("build floor %d: %w", p.Floor, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "floor_transition",
		"from":      oldFloor,
		"to":        p.Floor,
		"purged":    purged,
		"entities":  w.Len(),
	}).Info("player descended")

	return handlers.Result{
		Consumed: true,
		Msg:      fmt.Sprintf("You descend to floor %d.", p.Floor),
		Color:    domain.ColorSystem,
	}, nil
}

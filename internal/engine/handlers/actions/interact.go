package actions

import (
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/engine/handlers"
)

// HandleInteract ищет лестницу в клетке перед игроком.
func HandleInteract(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.World.MustGet(ctx.Actor)
	ahead := actor.Pos().Add(actor.Loc.Facing.Delta())

	if ctx.World.FindAt(ahead, domain.AttrStaircase).IsNil() {
		return handlers.Result{Msg: "There is nothing here to use.", Color: domain.ColorInfo}, nil
	}

	return handlers.Result{
		Consumed: true,
		Event:    domain.EventFloorTransition,
	}, nil
}

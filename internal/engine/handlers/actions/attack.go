package actions

import (
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/engine/handlers"
	"github.com/JMS55/roguelike-sub000/internal/systems"
)

// HandleAttack бьёт только в направлении взгляда. Промах тратит ход,
// запрет атаки — нет.
func HandleAttack(ctx handlers.Context) (handlers.Result, error) {
	actor := ctx.World.MustGet(ctx.Actor)
	if actor.Cooldowns != nil && actor.Cooldowns.AttackLock > 0 {
		return handlers.Result{Msg: "You cannot attack yet.", Color: domain.ColorWarning}, nil
	}

	res := systems.AttackFacing(ctx.World, ctx.Actor, ctx.Attack)
	if !res.Hit {
		return handlers.Result{Consumed: true, Msg: "You swing at the air.", Color: domain.ColorCombat}, nil
	}

	// Сообщения о попаданиях уже отправил боевой модуль.
	return handlers.Spent(), nil
}

package actions

import (
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/engine/handlers"
	"github.com/JMS55/roguelike-sub000/internal/systems"
	"github.com/JMS55/roguelike-sub000/pkg/api"
)

// HandleMove поворачивает игрока и делает шаг. Упереться в препятствие
// можно бесплатно: ход не тратится, но взгляд уже повёрнут.
func HandleMove(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	d, _ := domain.ParseDirection(p.Direction)

	res := systems.TryMove(ctx.World, ctx.Actor, d)
	if res.HasMoved {
		return handlers.Spent(), nil
	}

	return handlers.Result{Msg: "Your way is blocked.", Color: domain.ColorInfo}, nil
}

// HandleTurn меняет направление взгляда. Ход не тратится.
func HandleTurn(ctx handlers.Context, p api.DirectionPayload) (handlers.Result, error) {
	d, _ := domain.ParseDirection(p.Direction)
	systems.Turn(ctx.World, ctx.Actor, d)
	return handlers.EmptyResult(), nil
}

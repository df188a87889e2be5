package actions

import (
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/engine/handlers"
)

// Registry возвращает хендлеры всех команд игрока.
func Registry() handlers.Registry {
	return handlers.Registry{
		domain.ActionMove:     handlers.WithPayload(HandleMove),
		domain.ActionTurn:     handlers.WithPayload(HandleTurn),
		domain.ActionAttack:   handlers.WithEmptyPayload(HandleAttack),
		domain.ActionInteract: handlers.WithEmptyPayload(HandleInteract),
		domain.ActionPass:     handlers.WithEmptyPayload(HandlePass),
	}
}

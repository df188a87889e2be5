package actions

import "github.com/JMS55/roguelike-sub000/internal/engine/handlers"

func HandlePass(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Spent(), nil
}

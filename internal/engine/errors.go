package engine

import "errors"

// Ошибки протокола Submit. Игровые исходы (упёрся в стену, промахнулся,
// умер от голода) ошибками не являются.
var (
	ErrNotPlayerTurn  = errors.New("not the player's turn")
	ErrGameOver       = errors.New("game over")
	ErrInvalidCommand = errors.New("invalid command")
)

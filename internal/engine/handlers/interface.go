package handlers

import (
	"encoding/json"
	"math/rand"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/systems"
)

// Context передает хендлеру состояние мира.
// Хендлер мутирует мир напрямую через World.
type Context struct {
	World *domain.World
	Actor types.EntityID // Тот, кто выполняет команду (игрок)

	// Rng — игровой поток.
	Rng *rand.Rand

	// Attack — форма атаки актора.
	Attack systems.AttackSpec
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в ленту сообщений напрямую, он возвращает данные.
type Result struct {
	// Consumed — команда потратила ход игрока.
	Consumed bool
	Msg      string
	Color    domain.ColorTag
	// Event — событие для планировщика (переход на этаж ниже).
	Event domain.EventType
}

// HandlerFunc - это контракт для любой команды (MOVE, ATTACK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// Registry сопоставляет команде её хендлер.
type Registry map[domain.ActionType]HandlerFunc

// EmptyResult - вспомогательная функция для пустого ответа без траты хода
func EmptyResult() Result {
	return Result{}
}

// Spent — ход потрачен, сообщения нет.
func Spent() Result {
	return Result{Consumed: true}
}

package domain

import (
	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
)

// Attribute — бит набора компонентов. Запросы к миру задаются
// объединением битов: сущность подходит, если несёт все запрошенные.
type Attribute uint32

const (
	AttrLocation Attribute = 1 << iota
	AttrCombat
	AttrTeam
	AttrRender
	AttrAI
	AttrIntangible
	AttrStaircase
	AttrSpawner
	AttrQueuedAttack
	AttrQueuedMovement
	AttrCooldowns
	AttrDeathEffect
	AttrPlayer
)

// Has — true, если в наборе присутствуют все биты want.
func (a Attribute) Has(want Attribute) bool {
	return a&want == want
}

type Entity struct {
	// Заполняются миром при создании.
	ID  types.EntityID `json:"id"`
	Seq uint64         `json:"-"` // порядок создания, стабильный ключ сортировок

	Kind enums.EntityKind `json:"kind"`
	Name string           `json:"name"`
	Team Team             `json:"team"`

	// Маркеры
	Intangible bool `json:"intangible,omitempty"`
	Staircase  bool `json:"staircase,omitempty"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Loc            *Location         `json:"loc,omitempty"`
	Combat         *CombatComponent  `json:"combat,omitempty"`
	Render         *RenderComponent  `json:"render,omitempty"`
	AI             *AIComponent      `json:"ai,omitempty"`
	Spawner        *SpawnerComponent `json:"spawner,omitempty"`
	QueuedAttack   *QueuedAttack     `json:"-"`
	QueuedMovement *QueuedMovement   `json:"-"`
	Cooldowns      *Cooldowns        `json:"cooldowns,omitempty"`
	DeathEffect    *DeathEffect      `json:"deathEffect,omitempty"`
	Player         *PlayerComponent  `json:"player,omitempty"`
}

// Attributes собирает битовый набор присутствующих компонентов.
func (e *Entity) Attributes() Attribute {
	var a Attribute
	if e.Loc != nil {
		a |= AttrLocation
	}
	if e.Combat != nil {
		a |= AttrCombat
	}
	if e.Team != TeamNone {
		a |= AttrTeam
	}
	if e.Render != nil {
		a |= AttrRender
	}
	if e.AI != nil {
		a |= AttrAI
	}
	if e.Intangible {
		a |= AttrIntangible
	}
	if e.Staircase {
		a |= AttrStaircase
	}
	if e.Spawner != nil {
		a |= AttrSpawner
	}
	if e.QueuedAttack != nil {
		a |= AttrQueuedAttack
	}
	if e.QueuedMovement != nil {
		a |= AttrQueuedMovement
	}
	if e.Cooldowns != nil {
		a |= AttrCooldowns
	}
	if e.DeathEffect != nil {
		a |= AttrDeathEffect
	}
	if e.Player != nil {
		a |= AttrPlayer
	}
	return a
}

// Blocks — занимает ли сущность клетку для движения и поиска пути.
func (e *Entity) Blocks() bool {
	return e.Loc != nil && !e.Intangible
}

// Pos — позиция сущности; паникует, если Location нет.
func (e *Entity) Pos() Position {
	return e.MustLoc().Pos
}

// MustLoc и MustCombat — доступ к обязательным компонентам.
// Отсутствие компонента здесь — нарушение инварианта модели, а не
// игровая ситуация.
func (e *Entity) MustLoc() *Location {
	if e.Loc == nil {
		panic("domain: entity " + e.ID.String() + " (" + e.Name + ") has no Location")
	}
	return e.Loc
}

func (e *Entity) MustCombat() *CombatComponent {
	if e.Combat == nil {
		panic("domain: entity " + e.ID.String() + " (" + e.Name + ") has no Combat")
	}
	return e.Combat
}

// StatValue возвращает значение характеристики s.
func (c *CombatComponent) StatValue(s Stat) int {
	switch s {
	case StatAgility:
		return c.Agility
	case StatFocus:
		return c.Focus
	case StatLuck:
		return c.Luck
	}
	return c.Strength
}

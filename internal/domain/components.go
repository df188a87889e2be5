package domain

import (
	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
)

// --- КОМПОНЕНТЫ ---
// Компонент отсутствует, если поле сущности nil.

// Location — клетка и направление взгляда. Меняется только через World,
// чтобы пространственный индекс оставался согласованным.
type Location struct {
	Pos    Position  `json:"pos"`
	Facing Direction `json:"facing"`
}

// CombatComponent — здоровье, вторичные характеристики и выносливость.
// Инвариант: 0 <= HP <= MaxHP. HP == 0 означает, что сущность удаляется
// на том же шаге разрешения.
type CombatComponent struct {
	HP         int `json:"hp" yaml:"hp"`
	MaxHP      int `json:"maxHp" yaml:"max_hp"`
	Strength   int `json:"strength" yaml:"strength"`
	Agility    int `json:"agility" yaml:"agility"`
	Focus      int `json:"focus" yaml:"focus"`
	Luck       int `json:"luck" yaml:"luck"`
	Stamina    int `json:"stamina" yaml:"stamina"`
	MaxStamina int `json:"maxStamina" yaml:"max_stamina"`
}

// Stat — характеристика, из которой берётся урон атаки.
type Stat uint8

const (
	StatStrength Stat = iota
	StatAgility
	StatFocus
	StatLuck
)

// Team — сторона конфликта. Атаки и поиск целей бьют только по противнику.
type Team uint8

const (
	TeamNone Team = iota
	TeamAlly
	TeamEnemy
)

// Opposes — true, если команды враждебны друг другу.
func (t Team) Opposes(o Team) bool {
	return t != TeamNone && o != TeamNone && t != o
}

func (t Team) String() string {
	switch t {
	case TeamAlly:
		return "ALLY"
	case TeamEnemy:
		return "ENEMY"
	}
	return "NONE"
}

// RenderComponent — данные для внешнего отрисовщика, ядру непрозрачны.
type RenderComponent struct {
	Sprite string `json:"sprite"`
	Color  string `json:"color"`
	Layer  int    `json:"layer"` // 0 — пол, 1 — объекты, 2 — существа
}

const (
	LayerFloor = iota
	LayerObject
	LayerActor
)

// AIComponent — тег варианта и его изменяемое состояние между ходами.
type AIComponent struct {
	Kind       enums.CreatureKind `json:"kind"`
	Target     types.EntityID     `json:"target"`
	PatrolGoal *Position          `json:"patrolGoal,omitempty"`
}

// SpawnerComponent — таймер и порог срабатывания.
type SpawnerComponent struct {
	Timer     int `json:"timer"`
	Threshold int `json:"threshold"`
}

// QueuedAttack — намерение атаковать, живёт один тик.
type QueuedAttack struct {
	Target types.EntityID
}

// MoveMode — зачем существо идёт к цели; определяет предикат цели пути.
type MoveMode uint8

const (
	MoveChase MoveMode = iota
	MovePatrol
)

// QueuedMovement — намерение сделать шаг к Goal, живёт один тик.
type QueuedMovement struct {
	Goal Position
	Mode MoveMode
}

// Cooldowns — счётчики запретов, уменьшаются на апкипе каждого хода.
type Cooldowns struct {
	AttackLock int `json:"attackLock"`
}

// DeathEffectKind — вариант посмертного эффекта.
type DeathEffectKind uint8

const (
	DeathExplode DeathEffectKind = iota + 1
	DeathHealKiller
	DeathSpawnStaircase
)

// DeathEffect срабатывает ровно один раз, сразу после удаления сущности.
type DeathEffect struct {
	Kind   DeathEffectKind `json:"kind"`
	Radius int             `json:"radius,omitempty"`
	Amount int             `json:"amount,omitempty"`
}

// PlayerComponent — счётчики игрока, переживающие смену этажа.
type PlayerComponent struct {
	Turns     int          `json:"turns"`
	Floor     int          `json:"floor"`
	Warned    map[int]bool `json:"-"` // индексы полос истощения, о которых уже предупредили
	Exhausted bool         `json:"exhausted"`
}

package domain

import (
	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
)

// State выводит состояние автомата из цели и патрульной точки.
func (a *AIComponent) State() enums.AIState {
	switch {
	case !a.Target.IsNil():
		return enums.AIStateChasing
	case a.PatrolGoal != nil:
		return enums.AIStatePatrolling
	}
	return enums.AIStateNoTarget
}

// Chase переключает на преследование; патрульная цель сбрасывается.
func (a *AIComponent) Chase(target types.EntityID) {
	a.Target = target
	a.PatrolGoal = nil
}

// DropTarget — цель погибла, недостижима или ушла за бюджет поиска.
func (a *AIComponent) DropTarget() {
	a.Target = types.NilEntityID
}

func (a *AIComponent) SetPatrol(goal Position) {
	g := goal
	a.PatrolGoal = &g
}

func (a *AIComponent) ClearPatrol() {
	a.PatrolGoal = nil
}

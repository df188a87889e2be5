package systems

import (
	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/domain"
)

// MovementResult - результат попытки шага
type MovementResult struct {
	To        domain.Position
	HasMoved  bool
	BlockedBy types.EntityID // кто занимает клетку (стена, существо)
}

// CalculateMove вычисляет шаг в направлении d. Не меняет состояние мира!
func CalculateMove(w *domain.World, id types.EntityID, d domain.Direction) MovementResult {
	e := w.Get(id)
	if e == nil || e.Loc == nil {
		return MovementResult{}
	}

	to := e.Pos().Add(d.Delta())
	res := MovementResult{To: to}

	if blocker := w.BlockerAt(to); !blocker.IsNil() && blocker != id {
		res.BlockedBy = blocker
		return res
	}
	res.HasMoved = true
	return res
}

// TryMove поворачивает сущность в сторону d и делает шаг, если клетка
// свободна. Поворот сохраняется и при неудачном шаге.
func TryMove(w *domain.World, id types.EntityID, d domain.Direction) MovementResult {
	w.SetFacing(id, d)

	res := CalculateMove(w, id, d)
	if !res.HasMoved {
		return res
	}
	res.HasMoved = w.MoveTo(id, res.To)
	return res
}

// StepTo делает один шаг в соседнюю клетку (включая диагональ) и
// поворачивает сущность по направлению шага.
func StepTo(w *domain.World, id types.EntityID, to domain.Position) bool {
	e := w.Get(id)
	if e == nil || e.Loc == nil {
		return false
	}
	d, ok := domain.DirectionTo(e.Pos(), to)
	if !ok {
		return false
	}
	return TryMove(w, id, d).HasMoved
}

// Turn меняет направление взгляда без шага.
func Turn(w *domain.World, id types.EntityID, d domain.Direction) bool {
	if !w.Has(id, domain.AttrLocation) {
		return false
	}
	w.SetFacing(id, d)
	return true
}

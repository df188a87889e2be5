package systems

import (
	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/zyedidia/generic/mapset"
)

// Канонические бюджеты поиска целей, общие для всех вариантов существ.
const (
	DefaultValidateBudget = 3
	DefaultSearchBudget   = 2
)

// bfsStep — клетка фронтира и число шагов до неё.
type bfsStep struct {
	pos   domain.Position
	depth int
}

// boundedBFS обходит клетки от start не дальше budget шагов, соседей
// перебирает в порядке N, E, S, W. visit вызывается для каждой
// достигнутой клетки (включая start); true прекращает обход.
// Клетки из obstacles не посещаются, кроме тех, что разрешает pass.
func boundedBFS(
	start domain.Position,
	budget int,
	obstacles mapset.Set[domain.Position],
	pass func(domain.Position) bool,
	visit func(domain.Position, int) bool,
) bool {
	seen := mapset.New[domain.Position]()
	seen.Put(start)
	queue := []bfsStep{{pos: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if visit(cur.pos, cur.depth) {
			return true
		}
		if cur.depth >= budget {
			continue
		}

		for _, d := range domain.Orthogonals {
			next := cur.pos.Add(d.Delta())
			if seen.Has(next) {
				continue
			}
			seen.Put(next)
			if obstacles.Has(next) && (pass == nil || !pass(next)) {
				continue
			}
			queue = append(queue, bfsStep{pos: next, depth: cur.depth + 1})
		}
	}
	return false
}

// WithinReach — достижима ли клетка goal из start не более чем за budget
// шагов в обход препятствий. Сама goal может быть занята (там стоит цель).
func WithinReach(start, goal domain.Position, budget int, obstacles mapset.Set[domain.Position]) bool {
	return boundedBFS(start, budget, obstacles,
		func(p domain.Position) bool { return p == goal },
		func(p domain.Position, _ int) bool { return p == goal },
	)
}

// TargetIsValid — цель жива, противник и не дальше budget шагов.
func TargetIsValid(w *domain.World, self, target types.EntityID, budget int) bool {
	me := w.Get(self)
	them := w.Get(target)
	if me == nil || them == nil || them.Loc == nil || them.Combat == nil {
		return false
	}
	if !me.Team.Opposes(them.Team) {
		return false
	}
	return WithinReach(me.Pos(), them.Pos(), budget, w.ObstacleSet(self))
}

// FindTarget ищет противника, рядом с которым можно встать за budget
// шагов. Каждая клетка, ортогонально соседняя с противником, отображается
// на этого противника; при совпадении клеток побеждает созданный раньше.
// Возвращает первого противника, чья клетка достигнута обходом в ширину.
func FindTarget(w *domain.World, self types.EntityID, budget int) types.EntityID {
	me := w.Get(self)
	if me == nil || me.Loc == nil {
		return types.NilEntityID
	}

	adjacency := make(map[domain.Position]types.EntityID)
	for _, id := range w.Query(domain.AttrLocation | domain.AttrCombat | domain.AttrTeam) {
		other := w.Get(id)
		if other == nil || id == self || !me.Team.Opposes(other.Team) {
			continue
		}
		for _, d := range domain.Orthogonals {
			cell := other.Pos().Add(d.Delta())
			if _, taken := adjacency[cell]; !taken {
				adjacency[cell] = id
			}
		}
	}
	if len(adjacency) == 0 {
		return types.NilEntityID
	}

	found := types.NilEntityID
	boundedBFS(me.Pos(), budget, w.ObstacleSet(self), nil, func(p domain.Position, _ int) bool {
		if id, ok := adjacency[p]; ok {
			found = id
			return true
		}
		return false
	})
	return found
}

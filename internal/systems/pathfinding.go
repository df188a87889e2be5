package systems

import (
	"container/heap"

	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/zyedidia/generic/mapset"
)

// DefaultMaxNodes ограничивает число раскрытых вершин: сетка бесконечна,
// и без лимита недостижимая цель обошла бы её целиком.
const DefaultMaxNodes = 4096

// GoalFunc — предикат «клетка достигнута».
type GoalFunc func(domain.Position) bool

// Path — клетки от старта (не включая) до цели (включая).
type Path []domain.Position

// PathRequest — параметры поиска A*.
type PathRequest struct {
	Start domain.Position
	Goal  GoalFunc
	// Guide — клетка, до которой считается эвристика.
	Guide domain.Position
	// Slack вычитается из эвристики. Для целей вида «на расстоянии d от
	// Guide» Slack = d сохраняет допустимость эвристики.
	Slack     int
	Obstacles mapset.Set[domain.Position]
	Diagonal  bool
	MaxNodes  int
}

type pathNode struct {
	pos   domain.Position
	g, f  int
	index int
}

// frontier — min-heap по (f, x, y): при равной оценке раньше раскрывается
// лексикографически меньшая клетка, что даёт воспроизводимый путь.
type frontier []*pathNode

func (q frontier) Len() int { return len(q) }

func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].pos.Less(q[j].pos)
}

func (q frontier) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *frontier) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *frontier) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// FindPath ищет кратчайший путь до первой клетки, удовлетворяющей Goal.
// Стоимость шага — 1. Возвращает false, если фронтир исчерпан или
// превышен MaxNodes. Если старт уже удовлетворяет цели — пустой путь.
func FindPath(req PathRequest) (Path, bool) {
	if req.Goal == nil {
		return nil, false
	}
	if req.Goal(req.Start) {
		return Path{}, true
	}

	maxNodes := req.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	h := func(p domain.Position) int {
		var d int
		if req.Diagonal {
			d = p.Chebyshev(req.Guide)
		} else {
			d = p.Manhattan(req.Guide)
		}
		return max(d-req.Slack, 0)
	}

	dirs := neighbourDirs(req.Diagonal)
	open := make(map[domain.Position]*pathNode)
	best := map[domain.Position]int{req.Start: 0}
	cameFrom := make(map[domain.Position]domain.Position)
	closed := mapset.New[domain.Position]()

	start := &pathNode{pos: req.Start, g: 0, f: h(req.Start)}
	q := &frontier{}
	heap.Push(q, start)
	open[req.Start] = start

	expanded := 0
	for q.Len() > 0 {
		cur := heap.Pop(q).(*pathNode)
		delete(open, cur.pos)

		if req.Goal(cur.pos) {
			return reconstruct(cameFrom, req.Start, cur.pos), true
		}

		closed.Put(cur.pos)
		expanded++
		if expanded >= maxNodes {
			return nil, false
		}

		for _, d := range dirs {
			next := cur.pos.Add(d.Delta())
			if closed.Has(next) {
				continue
			}
			if req.Obstacles.Has(next) {
				continue
			}

			g := cur.g + 1
			if prev, seen := best[next]; seen && g >= prev {
				continue
			}
			best[next] = g
			cameFrom[next] = cur.pos

			if n, ok := open[next]; ok {
				n.g = g
				n.f = g + h(next)
				heap.Fix(q, n.index)
				continue
			}
			n := &pathNode{pos: next, g: g, f: g + h(next)}
			heap.Push(q, n)
			open[next] = n
		}
	}
	return nil, false
}

// NextStep — первая клетка пути к цели.
func NextStep(req PathRequest) (domain.Position, bool) {
	path, ok := FindPath(req)
	if !ok || len(path) == 0 {
		return domain.Position{}, false
	}
	return path[0], true
}

func reconstruct(cameFrom map[domain.Position]domain.Position, start, goal domain.Position) Path {
	var rev Path
	for p := goal; p != start; p = cameFrom[p] {
		rev = append(rev, p)
	}
	path := make(Path, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}
	return path
}

func neighbourDirs(diagonal bool) []domain.Direction {
	dirs := make([]domain.Direction, 0, 8)
	dirs = append(dirs, domain.Orthogonals[:]...)
	if diagonal {
		dirs = append(dirs, domain.Diagonals[:]...)
	}
	return dirs
}

// --- Предикаты цели ---

// ExactCell — ровно клетка p.
func ExactCell(p domain.Position) GoalFunc {
	return func(c domain.Position) bool { return c == p }
}

// AdjacentTo — ортогональный сосед p.
func AdjacentTo(p domain.Position) GoalFunc {
	return func(c domain.Position) bool { return c.Manhattan(p) == 1 }
}

// AtOrthogonalDistance — на одной линии с p ровно в d клетках, и клетки
// между ними свободны.
func AtOrthogonalDistance(p domain.Position, d int, obstacles mapset.Set[domain.Position]) GoalFunc {
	return func(c domain.Position) bool {
		if c.X != p.X && c.Y != p.Y {
			return false
		}
		if c.Manhattan(p) != d {
			return false
		}
		step := domain.Position{X: sign(p.X - c.X), Y: sign(p.Y - c.Y)}
		for q := c.Add(step); q != p; q = q.Add(step) {
			if obstacles.Has(q) {
				return false
			}
		}
		return true
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

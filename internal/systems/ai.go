package systems

import (
	"fmt"
	"math/rand"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/JMS55/roguelike-sub000/pkg/utils"
	"github.com/sirupsen/logrus"
)

// patrolRerolls ограничивает перевыбор патрульной точки, совпавшей с
// текущей клеткой (в комнате из одной клетки совпадение неизбежно).
const patrolRerolls = 8

// Brain — единая процедура решений для всех вариантов существ.
// Различия вариантов берутся из профиля в Bestiary.
type Brain struct {
	world    *domain.World
	rng      *rand.Rand
	bestiary *Bestiary
	log      *logrus.Entry
}

// NewBrain. rng — игровой поток.
func NewBrain(w *domain.World, rng *rand.Rand, b *Bestiary) *Brain {
	return &Brain{
		world:    w,
		rng:      rng,
		bestiary: b,
		log:      logger.Component("ai_system"),
	}
}

// Act — один ход существа: решение и его немедленное исполнение.
func (b *Brain) Act(id types.EntityID) {
	b.Decide(id)
	b.Resolve(id)
}

// Decide обновляет состояние автомата и записывает намерение
// (QueuedAttack или QueuedMovement) на этот тик.
func (b *Brain) Decide(id types.EntityID) {
	w := b.world
	e := w.Get(id)
	if e == nil || e.AI == nil || e.Loc == nil {
		return
	}
	p, ok := b.bestiary.Profile(e.AI.Kind)
	if !ok {
		return
	}
	ai := e.AI
	e.QueuedAttack = nil
	e.QueuedMovement = nil

	// 1. Проверка текущей цели
	if !ai.Target.IsNil() && !TargetIsValid(w, id, ai.Target, p.ValidateBudget) {
		b.log.WithFields(logrus.Fields{"entity": e.Name, "target": ai.Target}).Debug("target dropped")
		ai.DropTarget()
	}

	// 2. Поиск новой цели
	if ai.Target.IsNil() {
		if t := FindTarget(w, id, p.SearchBudget); !t.IsNil() {
			b.log.WithFields(logrus.Fields{"entity": e.Name, "target": t}).Debug("target acquired")
			ai.Chase(t)
		}
	}

	// 3. Патруль
	if ai.Target.IsNil() && p.Patrols {
		if ai.PatrolGoal == nil || *ai.PatrolGoal == e.Pos() {
			b.pickPatrolGoal(e)
		}
	}

	// 4. Намерение
	switch {
	case !ai.Target.IsNil():
		if CanAttack(w, id, p.Attack) {
			e.QueuedAttack = &domain.QueuedAttack{Target: ai.Target}
		} else {
			e.QueuedMovement = &domain.QueuedMovement{Goal: w.MustGet(ai.Target).Pos(), Mode: domain.MoveChase}
		}
	case ai.PatrolGoal != nil:
		e.QueuedMovement = &domain.QueuedMovement{Goal: *ai.PatrolGoal, Mode: domain.MovePatrol}
	}

	b.log.WithFields(logrus.Fields{
		"entity": e.Name,
		"state":  ai.State(),
		"attack": e.QueuedAttack != nil,
		"move":   e.QueuedMovement != nil,
	}).Debug("decision")
}

func (b *Brain) pickPatrolGoal(e *domain.Entity) {
	rooms := b.world.Rooms
	if len(rooms) == 0 {
		e.AI.ClearPatrol()
		return
	}
	for i := 0; i < patrolRerolls; i++ {
		room := rooms[b.rng.Intn(len(rooms))]
		goal := room.RandomInterior(b.rng)
		if goal != e.Pos() {
			e.AI.SetPatrol(goal)
			return
		}
	}
	e.AI.ClearPatrol()
}

// Resolve исполняет и снимает намерения, записанные Decide.
func (b *Brain) Resolve(id types.EntityID) {
	e := b.world.Get(id)
	if e == nil || e.AI == nil {
		return
	}
	p, ok := b.bestiary.Profile(e.AI.Kind)
	if !ok {
		return
	}

	attack, move := e.QueuedAttack, e.QueuedMovement
	e.QueuedAttack, e.QueuedMovement = nil, nil

	switch {
	case attack != nil:
		b.resolveAttack(id, p)
	case move != nil:
		b.resolveMove(id, p, *move)
	}
}

func (b *Brain) resolveAttack(id types.EntityID, p *Profile) {
	w := b.world

	if p.SummonChance > 0 && utils.Chance(b.rng, p.SummonChance) {
		if b.summon(id, p) {
			return
		}
	}

	if p.RepositionChance > 0 && utils.Chance(b.rng, p.RepositionChance) {
		b.sidestep(id, p)
	}

	res := Attack(w, id, p.Attack)
	if !res.Hit {
		return
	}

	if p.BonusAttackChance > 0 && utils.Chance(b.rng, p.BonusAttackChance) && CanAttack(w, id, p.Attack) {
		w.Notify(fmt.Sprintf("The %s strikes again!", p.Name), domain.ColorCombat, domain.DurationShort)
		Attack(w, id, p.Attack)
	}

	if p.AttackLockAfter > 0 {
		if e := w.Get(id); e != nil && e.Cooldowns != nil {
			// upkeep в конце этой же фазы врагов снимет одну единицу.
			e.Cooldowns.AttackLock = p.AttackLockAfter + 1
		}
	}
}

// summon ставит помощника в первую свободную ортогональную клетку.
func (b *Brain) summon(id types.EntityID, p *Profile) bool {
	w := b.world
	e := w.Get(id)
	if e == nil {
		return false
	}
	for _, d := range domain.Orthogonals {
		cell := e.Pos().Add(d.Delta())
		if helper := b.bestiary.Spawn(w, p.Summon, cell); !helper.IsNil() {
			name := p.Summon.String()
			if hp, ok := b.bestiary.Profile(p.Summon); ok {
				name = hp.Name
			}
			w.Notify(fmt.Sprintf("The %s summons a %s!", p.Name, name), domain.ColorWarning, domain.DurationShort)
			return true
		}
	}
	return false
}

// sidestep переходит в случайную свободную соседнюю клетку, из которой
// атака всё ещё достаёт цель. Если такой нет, существо остаётся на месте.
func (b *Brain) sidestep(id types.EntityID, p *Profile) bool {
	w := b.world
	e := w.Get(id)
	if e == nil {
		return false
	}
	var free []domain.Position
	for _, d := range neighbourDirs(p.Diagonal) {
		cell := e.Pos().Add(d.Delta())
		if w.IsFree(cell) && canAttackFrom(w, e, cell, p.Attack) {
			free = append(free, cell)
		}
	}
	if len(free) == 0 {
		return false
	}
	return StepTo(w, id, free[b.rng.Intn(len(free))])
}

func (b *Brain) resolveMove(id types.EntityID, p *Profile, move domain.QueuedMovement) {
	w := b.world
	e := w.Get(id)
	if e == nil {
		return
	}
	obstacles := w.ObstacleSet(id)

	req := PathRequest{
		Start:     e.Pos(),
		Guide:     move.Goal,
		Obstacles: obstacles,
		Diagonal:  p.Diagonal,
	}
	if move.Mode == domain.MoveChase {
		req.Goal, req.Slack = p.Range.Goal(move.Goal, obstacles)
	} else {
		req.Goal = ExactCell(move.Goal)
	}

	path, ok := FindPath(req)
	if !ok {
		b.log.WithFields(logrus.Fields{"entity": e.Name, "goal": move.Goal, "mode": move.Mode}).Debug("no path, goal dropped")
		if move.Mode == domain.MoveChase {
			e.AI.DropTarget()
		} else {
			e.AI.ClearPatrol()
		}
		return
	}
	if len(path) == 0 {
		return
	}
	StepTo(w, id, path[0])
}

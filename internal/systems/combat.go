package systems

import (
	"fmt"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/dungeon"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

// AttackSpec — форма атаки: смещения записаны для взгляда на север и
// поворачиваются вместе с атакующим.
type AttackSpec struct {
	Offsets    []domain.Position
	DamageStat domain.Stat
	// Bonus добавляется к характеристике.
	Bonus int
}

// MeleeOffsets — удар в соседнюю клетку.
var MeleeOffsets = []domain.Position{{X: 0, Y: -1}}

// AttackResult — итог атаки.
type AttackResult struct {
	Hit      bool
	Rotation int
	Targets  []types.EntityID
	Kills    int
}

// Damage наносит урон живой цели. При смерти сущность удаляется из мира,
// и её посмертный эффект срабатывает до возврата, так что последующий код
// уже не увидит устаревшую ссылку. source может быть пустым или мёртвым.
func Damage(w *domain.World, target types.EntityID, amount int, source types.EntityID) bool {
	e := w.Get(target)
	if e == nil || e.Combat == nil {
		return false
	}

	hpBefore := e.Combat.HP
	died := e.Combat.TakeDamage(amount)

	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"target":    e.Name,
		"target_id": target,
		"amount":    amount,
		"hp_before": hpBefore,
		"hp_after":  e.Combat.HP,
	})
	if !died {
		combatLogger.Debug("damage applied")
		return false
	}
	combatLogger.Debug("target died")

	deathPos := e.Pos()
	effect := e.DeathEffect
	name := e.Name
	w.Delete(target)

	if e.Player != nil {
		w.Notify("You die...", domain.ColorDanger, domain.DurationLong)
	} else {
		w.Notify(fmt.Sprintf("The %s dies.", name), domain.ColorCombat, domain.DurationShort)
	}

	if effect != nil {
		runDeathEffect(w, *effect, deathPos, name, source)
	}
	return true
}

func runDeathEffect(w *domain.World, effect domain.DeathEffect, at domain.Position, name string, killer types.EntityID) {
	switch effect.Kind {
	case domain.DeathExplode:
		w.Notify(fmt.Sprintf("The %s explodes!", name), domain.ColorDanger, domain.DurationShort)
		Explode(w, at, effect.Radius, effect.Amount)

	case domain.DeathHealKiller:
		k := w.Get(killer)
		if k == nil || k.Combat == nil {
			return
		}
		if healed := k.Combat.Heal(effect.Amount); healed > 0 && k.Player != nil {
			w.Notify(fmt.Sprintf("You feel invigorated (+%d).", healed), domain.ColorInfo, domain.DurationShort)
		}

	case domain.DeathSpawnStaircase:
		w.Create(dungeon.NewStaircase(at))
		w.Notify("A staircase appears.", domain.ColorInfo, domain.DurationLong)
	}
}

// Explode наносит урон каждой сущности с Combat в радиусе Чебышёва r.
// Список целей фиксируется в момент взрыва; перед каждым ударом живость
// перепроверяется, поэтому цепная реакция не бьёт никого дважды.
func Explode(w *domain.World, at domain.Position, radius, amount int) int {
	var targets []types.EntityID
	for _, id := range w.Query(domain.AttrLocation | domain.AttrCombat) {
		if e := w.Get(id); e != nil && e.Pos().Chebyshev(at) <= radius {
			targets = append(targets, id)
		}
	}

	hits := 0
	for _, id := range targets {
		if !w.Alive(id) {
			continue
		}
		Damage(w, id, amount, types.NilEntityID)
		hits++
	}
	return hits
}

// attackLocked — атакующий под действием запрета атаки.
func attackLocked(e *domain.Entity) bool {
	return e.Cooldowns != nil && e.Cooldowns.AttackLock > 0
}

// hitsAt возвращает противников атакующего в клетках смещений при
// повороте k, если бы атакующий стоял в origin. Дальний удар по прямой
// требует свободных клеток между origin и целью.
func hitsAt(w *domain.World, attacker *domain.Entity, origin domain.Position, offsets []domain.Position, k int) []types.EntityID {
	var hits []types.EntityID
	for _, off := range offsets {
		cell := origin.Add(off.RotateCW(k))
		if !clearLine(w, origin, cell, attacker.ID) {
			continue
		}
		for _, id := range w.EntitiesAt(cell) {
			other := w.Get(id)
			if other != nil && other.Combat != nil && attacker.Team.Opposes(other.Team) {
				hits = append(hits, id)
				break
			}
		}
	}
	return hits
}

// clearLine: клетки строго между from и to на одной линии не заняты
// блокирующими сущностями (кроме self). Соседние клетки и смещения не по
// прямой проверять нечего.
func clearLine(w *domain.World, from, to domain.Position, self types.EntityID) bool {
	if from.X != to.X && from.Y != to.Y {
		return true
	}
	step := domain.Position{X: sign(to.X - from.X), Y: sign(to.Y - from.Y)}
	for q := from.Add(step); q != to; q = q.Add(step) {
		if blocker := w.BlockerAt(q); !blocker.IsNil() && blocker != self {
			return false
		}
	}
	return true
}

// selectRotation перебирает повороты 0°, 90°, 180°, 270° и возвращает
// первый, при котором хотя бы одно смещение попадает в противника.
func selectRotation(w *domain.World, attacker *domain.Entity, origin domain.Position, spec AttackSpec) (int, []types.EntityID) {
	for k := 0; k < 4; k++ {
		if hits := hitsAt(w, attacker, origin, spec.Offsets, k); len(hits) > 0 {
			return k, hits
		}
	}
	return -1, nil
}

// CanAttack — то же, что Attack, но без изменения мира.
func CanAttack(w *domain.World, attacker types.EntityID, spec AttackSpec) bool {
	a := w.Get(attacker)
	if a == nil || a.Loc == nil || a.Combat == nil || attackLocked(a) {
		return false
	}
	k, _ := selectRotation(w, a, a.Pos(), spec)
	return k >= 0
}

// canAttackFrom — CanAttack для атакующего, стоящего в клетке from.
func canAttackFrom(w *domain.World, a *domain.Entity, from domain.Position, spec AttackSpec) bool {
	if attackLocked(a) {
		return false
	}
	k, _ := selectRotation(w, a, from, spec)
	return k >= 0
}

// Attack выбирает первый удачный поворот, поворачивает атакующего в его
// сторону и разрешает все попадания этого поворота.
func Attack(w *domain.World, attacker types.EntityID, spec AttackSpec) AttackResult {
	a := w.Get(attacker)
	if a == nil || a.Loc == nil || a.Combat == nil || attackLocked(a) {
		return AttackResult{Rotation: -1}
	}
	k, hits := selectRotation(w, a, a.Pos(), spec)
	if k < 0 {
		return AttackResult{Rotation: -1}
	}
	w.SetFacing(attacker, domain.Orthogonals[k])
	return resolveHits(w, a, spec, k, hits)
}

// AttackFacing — атака игрока: проверяется только поворот текущего взгляда.
func AttackFacing(w *domain.World, attacker types.EntityID, spec AttackSpec) AttackResult {
	a := w.Get(attacker)
	if a == nil || a.Loc == nil || a.Combat == nil || attackLocked(a) {
		return AttackResult{Rotation: -1}
	}
	if !a.Loc.Facing.IsOrthogonal() {
		return AttackResult{Rotation: -1}
	}
	k := a.Loc.Facing.Rotation()
	hits := hitsAt(w, a, a.Pos(), spec.Offsets, k)
	if len(hits) == 0 {
		return AttackResult{Rotation: k}
	}
	return resolveHits(w, a, spec, k, hits)
}

func resolveHits(w *domain.World, a *domain.Entity, spec AttackSpec, k int, hits []types.EntityID) AttackResult {
	res := AttackResult{Hit: true, Rotation: k}
	dmg := max(a.Combat.StatValue(spec.DamageStat)+spec.Bonus, 1)
	attackerName := a.Name
	attackerID := a.ID

	for _, id := range hits {
		target := w.Get(id)
		if target == nil {
			continue
		}
		res.Targets = append(res.Targets, id)
		w.Notify(hitMessage(attackerName, a.Player != nil, target, dmg), domain.ColorCombat, domain.DurationShort)
		if Damage(w, id, dmg, attackerID) {
			res.Kills++
		}
	}
	return res
}

func hitMessage(attacker string, byPlayer bool, target *domain.Entity, dmg int) string {
	switch {
	case byPlayer:
		return fmt.Sprintf("You hit the %s for %d.", target.Name, dmg)
	case target.Player != nil:
		return fmt.Sprintf("The %s hits you for %d.", attacker, dmg)
	}
	return fmt.Sprintf("The %s hits the %s for %d.", attacker, target.Name, dmg)
}

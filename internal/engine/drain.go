package engine

import (
	"github.com/JMS55/roguelike-sub000/internal/config"
	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/systems"
)

// upkeep уменьшает счётчики кулдаунов на единицу, не ниже нуля.
func upkeep(w *domain.World) {
	for _, id := range w.Query(domain.AttrCooldowns) {
		if e := w.Get(id); e != nil && e.Cooldowns.AttackLock > 0 {
			e.Cooldowns.AttackLock--
		}
	}
}

// applyDrain списывает выносливость по полосе, соответствующей числу
// ходов на этаже. bands упорядочены по возрастанию порога. Каждая
// пройденная полоса предупреждает один раз; когда выносливость
// кончается, остаток снимается со здоровья.
func applyDrain(w *domain.World, player types.EntityID, bands []config.DrainBand) {
	e := w.Get(player)
	if e == nil || e.Player == nil || e.Combat == nil {
		return
	}
	p := e.Player
	if p.Warned == nil {
		p.Warned = make(map[int]bool)
	}

	drain := 0
	for i, b := range bands {
		if p.Turns < b.Turns {
			break
		}
		drain = b.Drain
		if !p.Warned[i] {
			p.Warned[i] = true
			if b.Warning != "" {
				w.Notify(b.Warning, domain.ColorWarning, domain.DurationLong)
			}
		}
	}
	if drain == 0 {
		return
	}

	overflow := e.Combat.Drain(drain)
	if e.Combat.Stamina == 0 && !p.Exhausted {
		p.Exhausted = true
		w.Notify("You are exhausted.", domain.ColorDanger, domain.DurationLong)
	}
	if overflow > 0 {
		systems.Damage(w, player, overflow, types.NilEntityID)
	}
}

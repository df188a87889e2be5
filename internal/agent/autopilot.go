package agent

import (
	"context"
	"errors"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/engine"
	"github.com/JMS55/roguelike-sub000/internal/systems"
	"github.com/JMS55/roguelike-sub000/pkg/api"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Autopilot представляет собой "Игрока-компьютера" (Headless Agent).
// Он отдаёт ядру те же команды, что и человек, и нужен для прогонов без
// отрисовщика: бьёт соседних врагов, иначе идёт к лестнице.
type Autopilot struct {
	log *logrus.Entry
}

func NewAutopilot() *Autopilot {
	return &Autopilot{log: logger.Component("autopilot")}
}

// Game — то, что автопилот видит и чем управляет.
type Game interface {
	World() *domain.World
	Player() types.EntityID
	Submit(ctx context.Context, cmd api.Command) error
}

// Run играет, пока не кончатся ходы, игра или контекст. Возвращает
// число отправленных команд.
func (a *Autopilot) Run(ctx context.Context, g Game, maxCommands int) (int, error) {
	sent := 0
	for sent < maxCommands {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		cmd := a.Decide(g.World(), g.Player())
		err := g.Submit(ctx, cmd)
		if errors.Is(err, engine.ErrGameOver) {
			return sent, nil
		}
		if err != nil {
			return sent, err
		}
		sent++
	}
	return sent, nil
}

// Decide — это мозг автопилота. Мир только читается.
func (a *Autopilot) Decide(w *domain.World, player types.EntityID) api.Command {
	me := w.Get(player)
	if me == nil || me.Loc == nil {
		return api.Command{Action: domain.ActionPass.String()}
	}
	pos := me.Pos()

	// 1. Враг прямо перед нами
	ahead := pos.Add(me.Loc.Facing.Delta())
	if isEnemy(w, me, w.BlockerAt(ahead)) {
		return api.Command{Action: domain.ActionAttack.String()}
	}

	// 2. Враг сбоку или сзади: разворачиваемся
	for _, d := range domain.Orthogonals {
		if isEnemy(w, me, w.BlockerAt(pos.Add(d.Delta()))) {
			return turn(d)
		}
	}

	// 3. Лестница
	stairs := w.Query(domain.AttrStaircase | domain.AttrLocation)
	if len(stairs) == 0 {
		return api.Command{Action: domain.ActionPass.String()}
	}
	target := w.MustGet(stairs[0]).Pos()

	if pos.Manhattan(target) == 1 {
		d, _ := domain.DirectionTo(pos, target)
		if d != me.Loc.Facing {
			return turn(d)
		}
		return api.Command{Action: domain.ActionInteract.String()}
	}

	next, ok := systems.NextStep(systems.PathRequest{
		Start:     pos,
		Goal:      systems.AdjacentTo(target),
		Guide:     target,
		Slack:     1,
		Obstacles: w.ObstacleSet(player),
	})
	if !ok {
		a.log.WithFields(logrus.Fields{"from": pos, "stairs": target}).Debug("no path to stairs, waiting")
		return api.Command{Action: domain.ActionPass.String()}
	}
	d, _ := domain.DirectionTo(pos, next)
	return api.Command{Action: domain.ActionMove.String(), Direction: d.String()}
}

func isEnemy(w *domain.World, me *domain.Entity, id types.EntityID) bool {
	e := w.Get(id)
	return e != nil && e.Combat != nil && me.Team.Opposes(e.Team)
}

func turn(d domain.Direction) api.Command {
	return api.Command{Action: domain.ActionTurn.String(), Direction: d.String()}
}

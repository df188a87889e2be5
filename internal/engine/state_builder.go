package engine

import (
	"sort"

	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/api"
)

// Snapshot создает "снимок" окрестности игрока для внешнего отрисовщика.
// После смерти игрока окно держится на последней известной позиции.
func (g *Game) Snapshot() api.Snapshot {
	w := g.world
	center := g.lastSeen
	radius := g.cfg.ViewportRadius

	snap := api.Snapshot{
		Floor: g.floor,
		Turn:  g.turn,
		Phase: g.phase.Current(),
	}

	if p := w.Get(g.player); p != nil {
		snap.Player = buildPlayerView(p)
	} else {
		snap.Player = api.PlayerView{X: center.X, Y: center.Y, IsDead: true}
	}

	// 1. Собираем сущности в окне
	var cells []*domain.Entity
	for _, id := range w.Query(domain.AttrRender | domain.AttrLocation) {
		e := w.Get(id)
		if e == nil || e.Pos().Chebyshev(center) > radius {
			continue
		}
		cells = append(cells, e)
	}

	// 2. Порядок отрисовки: слой, затем строка, затем столбец.
	// Внутри клетки — порядок создания (Query уже его даёт).
	sort.SliceStable(cells, func(i, j int) bool {
		a, b := cells[i], cells[j]
		if a.Render.Layer != b.Render.Layer {
			return a.Render.Layer < b.Render.Layer
		}
		pa, pb := a.Pos(), b.Pos()
		if pa.Y != pb.Y {
			return pa.Y < pb.Y
		}
		return pa.X < pb.X
	})

	snap.Cells = make([]api.SpriteView, 0, len(cells))
	for _, e := range cells {
		snap.Cells = append(snap.Cells, buildSpriteView(e))
	}

	// 3. Лента
	for _, m := range g.messages.Active() {
		snap.Messages = append(snap.Messages, api.MessageView{
			Text:     m.Text,
			Color:    string(m.Color),
			Duration: string(m.Duration),
			Turn:     m.Turn,
		})
	}

	return snap
}

func buildPlayerView(e *domain.Entity) api.PlayerView {
	pos := e.Pos()
	view := api.PlayerView{
		X:      pos.X,
		Y:      pos.Y,
		Facing: e.Loc.Facing.String(),
	}
	if c := e.Combat; c != nil {
		view.HP = c.HP
		view.MaxHP = c.MaxHP
		view.Stamina = c.Stamina
		view.MaxStamina = c.MaxStamina
		view.Strength = c.Strength
		view.Agility = c.Agility
		view.Focus = c.Focus
		view.Luck = c.Luck
		view.IsDead = c.IsDead()
	}
	if e.Player != nil {
		view.FloorTurns = e.Player.Turns
	}
	return view
}

func buildSpriteView(e *domain.Entity) api.SpriteView {
	pos := e.Pos()
	view := api.SpriteView{
		ID:     e.ID.String(),
		X:      pos.X,
		Y:      pos.Y,
		Sprite: e.Render.Sprite,
		Color:  e.Render.Color,
		Layer:  e.Render.Layer,
	}
	// Направление нужно только тем, кто умеет атаковать.
	if e.Combat != nil {
		view.Facing = e.Loc.Facing.String()
	}
	return view
}

package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/JMS55/roguelike-sub000/internal/config"
	"github.com/JMS55/roguelike-sub000/internal/domain"
)

// RunReplay проигрывает запись с нуля: те же зёрна, те же команды.
// Остальные параметры берутся из cfg, поэтому для совпадения прогонов
// конфиг должен совпадать с исходным.
func RunReplay(ctx context.Context, cfg *config.Config, session domain.ReplaySession) (*Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	c := *cfg
	c.LayoutSeed = session.LayoutSeed
	c.GameplaySeed = session.GameplaySeed

	g, err := NewGame(&c)
	if err != nil {
		return nil, err
	}
	if err := g.Start(ctx); err != nil {
		return nil, err
	}

	for i, a := range session.Actions {
		if err := ctx.Err(); err != nil {
			return g, err
		}
		if err := g.apply(ctx, a.Action, a.Payload); err != nil {
			return g, fmt.Errorf("replay action %d (%s, turn %d): %w", i, a.Action, a.Turn, err)
		}
	}

	g.log.WithField("actions", len(session.Actions)).Info("replay finished")
	return g, nil
}

// Digest — отпечаток состояния партии: этаж, ход, фаза и все живые
// сущности в порядке создания. Два прогона с одинаковой записью дают
// одинаковый отпечаток.
func (g *Game) Digest() (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)

	header := struct {
		Floor int    `json:"floor"`
		Turn  int    `json:"turn"`
		Phase string `json:"phase"`
	}{g.floor, g.turn, g.phase.Current()}
	if err := enc.Encode(header); err != nil {
		return "", fmt.Errorf("digest header: %w", err)
	}

	w := g.world
	for _, id := range w.Query(0) {
		e := w.Get(id)
		if e == nil {
			continue
		}
		if err := enc.Encode(e); err != nil {
			return "", fmt.Errorf("digest entity %s: %w", id, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

package engine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"
)

// Phase — фаза планировщика ходов.
type Phase string

const (
	PhaseNewGame         Phase = "new_game"
	PhasePlayerTurn      Phase = "player_turn"
	PhaseEnemyTurn       Phase = "enemy_turn"
	PhaseFloorTransition Phase = "floor_transition"
	PhaseGameOver        Phase = "game_over"
)

// События автомата фаз.
const (
	evStart       = "start"
	evEndTurn     = "end_turn"
	evEnemiesDone = "enemies_done"
	evDescend     = "descend"
	evArrive      = "arrive"
	evDie         = "die"
)

// newPhaseMachine:
//
//	new_game -> player_turn <-> enemy_turn
//	player_turn -> floor_transition -> player_turn
//	player_turn | enemy_turn | floor_transition -> game_over
func newPhaseMachine(log *logrus.Entry) *fsm.FSM {
	return fsm.NewFSM(
		string(PhaseNewGame),
		fsm.Events{
			{Name: evStart, Src: []string{string(PhaseNewGame)}, Dst: string(PhasePlayerTurn)},
			{Name: evEndTurn, Src: []string{string(PhasePlayerTurn)}, Dst: string(PhaseEnemyTurn)},
			{Name: evEnemiesDone, Src: []string{string(PhaseEnemyTurn)}, Dst: string(PhasePlayerTurn)},
			{Name: evDescend, Src: []string{string(PhasePlayerTurn)}, Dst: string(PhaseFloorTransition)},
			{Name: evArrive, Src: []string{string(PhaseFloorTransition)}, Dst: string(PhasePlayerTurn)},
			{
				Name: evDie,
				Src:  []string{string(PhasePlayerTurn), string(PhaseEnemyTurn), string(PhaseFloorTransition)},
				Dst:  string(PhaseGameOver),
			},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.WithFields(logrus.Fields{
					"event": e.Event,
					"from":  e.Src,
					"to":    e.Dst,
				}).Debug("phase changed")
			},
		},
	)
}

// fire переводит автомат. Ошибка означает нарушение порядка фаз
// внутри движка, а не ошибку игрока.
func (g *Game) fire(ctx context.Context, event string) error {
	if err := g.phase.Event(ctx, event); err != nil {
		return fmt.Errorf("phase %s: event %s: %w", g.phase.Current(), event, err)
	}
	return nil
}

// checkPhase — можно ли сейчас принять команду игрока.
func (g *Game) checkPhase() error {
	switch Phase(g.phase.Current()) {
	case PhasePlayerTurn:
		return nil
	case PhaseGameOver:
		return ErrGameOver
	}
	return fmt.Errorf("%w: phase is %s", ErrNotPlayerTurn, g.phase.Current())
}

package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JMS55/roguelike-sub000/internal/config"
	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/internal/engine/handlers"
	"github.com/JMS55/roguelike-sub000/internal/engine/handlers/actions"
	"github.com/JMS55/roguelike-sub000/internal/engine/handlers/events"
	"github.com/JMS55/roguelike-sub000/internal/systems"
	"github.com/JMS55/roguelike-sub000/pkg/api"
	"github.com/JMS55/roguelike-sub000/pkg/dungeon"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/JMS55/roguelike-sub000/pkg/utils"
	"github.com/looplab/fsm"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// playerAttack — удар игрока в клетку перед собой.
var playerAttack = systems.AttackSpec{Offsets: systems.MeleeOffsets, DamageStat: domain.StatStrength}

// Game — фасад симуляции: одна партия от первого этажа до смерти игрока.
// Не безопасен для конкурентного использования, вызовы Submit
// сериализует вызывающий.
type Game struct {
	cfg      *config.Config
	world    *domain.World
	streams  *utils.Streams
	bestiary *systems.Bestiary
	brain    *systems.Brain
	floors   *floorBuilder
	actions  handlers.Registry
	phase    *fsm.FSM
	messages *MessageLog
	replay   domain.ReplaySession

	player   types.EntityID
	lastSeen domain.Position
	floor    int
	turn     int

	log *logrus.Entry
}

// NewGame проверяет конфиг и собирает партию. Мир пуст до Start.
func NewGame(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	offsets, err := cfg.CreatureOffsets()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	log := logger.Component("game")
	streams := utils.NewStreams(cfg.LayoutSeed, cfg.GameplaySeed)
	bestiary := systems.NewBestiary(cfg.RarityWeights, offsets)
	messages := NewMessageLog()

	w := domain.NewWorld()
	w.SetSink(messages)

	return &Game{
		cfg:      cfg,
		world:    w,
		streams:  streams,
		bestiary: bestiary,
		brain:    systems.NewBrain(w, streams.Gameplay, bestiary),
		floors:   newFloorBuilder(cfg, streams, bestiary),
		actions:  actions.Registry(),
		phase:    newPhaseMachine(log),
		messages: messages,
		replay: domain.ReplaySession{
			ID:           ulid.Make(),
			LayoutSeed:   cfg.LayoutSeed,
			GameplaySeed: cfg.GameplaySeed,
		},
		log: log,
	}, nil
}

// Start создаёт игрока и первый этаж.
func (g *Game) Start(ctx context.Context) error {
	if Phase(g.phase.Current()) != PhaseNewGame {
		return fmt.Errorf("start: game is already in phase %s", g.phase.Current())
	}

	g.player = g.world.Create(dungeon.CreatePlayer(g.cfg.Player))
	g.floor = 1
	if err := g.floors.BuildFloor(g.world, g.floor); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	g.trackPlayer()
	g.world.Notify("You enter the dungeon.", domain.ColorSystem, domain.DurationLong)

	g.log.WithFields(logrus.Fields{
		"session":       g.replay.ID,
		"layout_seed":   g.cfg.LayoutSeed,
		"gameplay_seed": g.cfg.GameplaySeed,
		"entities":      g.world.Len(),
	}).Info("game started")

	return g.fire(ctx, evStart)
}

// Submit принимает одну команду игрока. Ошибка возвращается только при
// нарушении протокола: не та фаза, игра окончена, неверная команда.
func (g *Game) Submit(ctx context.Context, cmd api.Command) error {
	if err := g.checkPhase(); err != nil {
		return err
	}
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}

	action := domain.ParseAction(cmd.Action)
	var payload json.RawMessage
	if action.NeedsDirection() {
		raw, err := json.Marshal(api.DirectionPayload{Direction: cmd.Direction})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCommand, err)
		}
		payload = raw
	}
	return g.apply(ctx, action, payload)
}

// apply выполняет команду и, если она потратила ход, прогоняет остаток
// тика: истощение, событие или ход врагов.
func (g *Game) apply(ctx context.Context, action domain.ActionType, payload json.RawMessage) error {
	if err := g.checkPhase(); err != nil {
		return err
	}
	handler, ok := g.actions[action]
	if !ok {
		return fmt.Errorf("%w: unknown action %s", ErrInvalidCommand, action)
	}

	hctx := g.handlerContext()
	res, err := handler(hctx, payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCommand, err)
	}

	g.replay.Record(domain.ReplayAction{
		Turn:    g.turn,
		Floor:   g.floor,
		Action:  action,
		Payload: payload,
	})

	if res.Msg != "" {
		color := res.Color
		if color == "" {
			color = domain.ColorInfo
		}
		g.world.Notify(res.Msg, color, domain.DurationShort)
	}
	g.trackPlayer()

	if !res.Consumed {
		return nil
	}
	return g.endPlayerTurn(ctx, hctx, res)
}

func (g *Game) endPlayerTurn(ctx context.Context, hctx handlers.Context, res handlers.Result) error {
	g.turn++
	// Игрок мог погибнуть от своей же атаки (взрыв).
	p := g.world.Get(g.player)
	if p == nil {
		return g.processEvent(ctx, hctx, domain.EventPlayerDied)
	}
	p.Player.Turns++

	applyDrain(g.world, g.player, g.cfg.DrainBands)
	if !g.world.Alive(g.player) {
		return g.processEvent(ctx, hctx, domain.EventPlayerDied)
	}

	if res.Event != domain.EventNone {
		return g.processEvent(ctx, hctx, res.Event)
	}

	if err := g.fire(ctx, evEndTurn); err != nil {
		return err
	}
	g.runEnemyTurn()
	if !g.world.Alive(g.player) {
		return g.processEvent(ctx, hctx, domain.EventPlayerDied)
	}
	return g.fire(ctx, evEnemiesDone)
}

// processEvent - является точкой входа для обработки событий, возвращенных хендлерами.
func (g *Game) processEvent(ctx context.Context, hctx handlers.Context, ev domain.EventType) error {
	switch ev {
	case domain.EventFloorTransition:
		if err := g.fire(ctx, evDescend); err != nil {
			return err
		}
		res, err := events.HandleFloorTransition(hctx, g.floors)
		if err != nil {
			return fmt.Errorf("floor transition: %w", err)
		}
		g.floor = g.world.MustGet(g.player).Player.Floor
		g.messages.Age(g.turn)
		g.world.Notify(res.Msg, res.Color, domain.DurationLong)
		g.trackPlayer()
		return g.fire(ctx, evArrive)

	case domain.EventPlayerDied:
		g.log.WithFields(logrus.Fields{
			"floor": g.floor,
			"turn":  g.turn,
		}).Info("player died")
		return g.fire(ctx, evDie)
	}
	return fmt.Errorf("unhandled event %s", ev)
}

// runEnemyTurn — ход врагов: существа по очереди от ближнего к дальнему,
// затем спавнеры и обслуживание.
func (g *Game) runEnemyTurn() {
	w := g.world
	order := TurnOrder(w, w.MustGet(g.player).Pos())

	acted := 0
	for _, id := range order {
		if !w.Alive(id) {
			continue
		}
		g.brain.Act(id)
		acted++
		if !w.Alive(g.player) {
			break
		}
	}

	spawned := 0
	if w.Alive(g.player) {
		spawned = len(systems.TickSpawners(w, g.bestiary, g.streams.Gameplay))
	}

	upkeep(w)
	g.messages.Age(g.turn)

	g.log.WithFields(logrus.Fields{
		"turn":    g.turn,
		"acted":   acted,
		"spawned": spawned,
	}).Debug("enemy turn finished")
}

func (g *Game) handlerContext() handlers.Context {
	return handlers.Context{
		World:  g.world,
		Actor:  g.player,
		Rng:    g.streams.Gameplay,
		Attack: playerAttack,
	}
}

func (g *Game) trackPlayer() {
	if e := g.world.Get(g.player); e != nil {
		g.lastSeen = e.Pos()
	}
}

// Phase — текущая фаза планировщика.
func (g *Game) Phase() Phase {
	return Phase(g.phase.Current())
}

func (g *Game) Floor() int { return g.floor }

// Turn — число потраченных игроком ходов за всю партию.
func (g *Game) Turn() int { return g.turn }

// World отдаёт мир только для чтения: агенту и тестам.
func (g *Game) World() *domain.World { return g.world }

func (g *Game) Player() types.EntityID { return g.player }

// Messages забирает сообщения, накопленные с прошлого вызова.
func (g *Game) Messages() []domain.Message {
	return g.messages.Drain()
}

// Replay возвращает копию записи партии.
func (g *Game) Replay() domain.ReplaySession {
	return g.replay.Clone()
}

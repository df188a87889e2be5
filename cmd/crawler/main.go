package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/JMS55/roguelike-sub000/internal/agent"
	"github.com/JMS55/roguelike-sub000/internal/config"
	"github.com/JMS55/roguelike-sub000/internal/engine"
	"github.com/JMS55/roguelike-sub000/internal/infrastructure/storage"
	"github.com/JMS55/roguelike-sub000/internal/version"
	"github.com/JMS55/roguelike-sub000/pkg/api"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг флагов
	var (
		configPath   string
		layoutSeed   int64
		gameplaySeed int64
		scriptPath   string
		autoCommands int
		replayPath   string
		recordDir    string
		everyTurn    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config")
	flag.Int64Var(&layoutSeed, "layout-seed", 0, "Layout stream seed (0 keeps config value)")
	flag.Int64Var(&gameplaySeed, "gameplay-seed", 0, "Gameplay stream seed (0 keeps config value)")
	flag.StringVar(&scriptPath, "script", "", "File with one command per line ('-' for stdin)")
	flag.IntVar(&autoCommands, "auto", 0, "Let the autopilot play N commands")
	flag.StringVar(&replayPath, "replay", "", "Path to .crpl replay to re-run")
	flag.StringVar(&recordDir, "record", "", "Directory to save the replay of this run")
	flag.BoolVar(&everyTurn, "every-turn", false, "Print a snapshot after every command")
	flag.Parse()

	logger.Log.Info("Starting crawler...")
	logger.Log.WithFields(version.Info().Fields()).Info(version.String())

	// 2. Конфиг: файл, затем окружение, затем флаги
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Log.Fatal("Failed to load config: ", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		logger.Log.Fatal("Failed to apply env: ", err)
	}
	if layoutSeed != 0 {
		cfg.LayoutSeed = layoutSeed
	}
	if gameplaySeed != 0 {
		cfg.GameplaySeed = gameplaySeed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := json.NewEncoder(os.Stdout)
	var game *engine.Game

	switch {
	// РЕЖИМ РЕПЛЕЯ
	case replayPath != "":
		logger.Log.Info("Mode: replay")
		session, err := (&storage.ReplayStore{}).Load(replayPath)
		if err != nil {
			logger.Log.Fatal("Failed to load replay: ", err)
		}
		game, err = engine.RunReplay(ctx, cfg, *session)
		if err != nil {
			logger.Log.Fatal("Replay failed: ", err)
		}
		if digest, err := game.Digest(); err == nil {
			logger.Log.WithField("digest", digest).Info("replay digest")
		}

	default:
		game, err = engine.NewGame(cfg)
		if err != nil {
			logger.Log.Fatal("Failed to create game: ", err)
		}
		if err := game.Start(ctx); err != nil {
			logger.Log.Fatal("Failed to start game: ", err)
		}

		if autoCommands > 0 {
			logger.Log.Infof("Mode: autopilot, %d commands", autoCommands)
			sent, err := agent.NewAutopilot().Run(ctx, game, autoCommands)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Log.Error("Autopilot stopped: ", err)
			}
			logger.Log.Infof("Autopilot sent %d commands", sent)
		} else {
			in, closeIn, err := openScript(scriptPath)
			if err != nil {
				logger.Log.Fatal("Failed to open script: ", err)
			}
			runScript(ctx, game, in, out, everyTurn)
			closeIn()
		}
	}

	// 3. Итоговый снапшот
	if err := out.Encode(game.Snapshot()); err != nil {
		logger.Log.Error("Failed to write snapshot: ", err)
	}

	if recordDir != "" && replayPath == "" {
		store, err := storage.NewReplayStore(recordDir)
		if err != nil {
			logger.Log.Fatal("Failed to open replay dir: ", err)
		}
		session := game.Replay()
		if _, err := store.Save(&session); err != nil {
			logger.Log.Error("Failed to save replay: ", err)
		}
	}

	logger.Log.Info("Done.")
}

func openScript(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// runScript читает команды построчно. Неверная команда пропускается
// с предупреждением, конец игры останавливает чтение.
func runScript(ctx context.Context, game *engine.Game, in io.Reader, out *json.Encoder, everyTurn bool) {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		if ctx.Err() != nil {
			return
		}

		cmd, err := api.ParseCommand(scanner.Text())
		if errors.Is(err, api.ErrEmptyCommand) {
			continue
		}
		if err != nil {
			logger.Log.WithField("line", line).Warn(err)
			continue
		}

		err = game.Submit(ctx, cmd)
		if errors.Is(err, engine.ErrGameOver) {
			return
		}
		if err != nil {
			logger.Log.WithField("line", line).Warn(err)
			continue
		}

		if everyTurn {
			if err := out.Encode(game.Snapshot()); err != nil {
				logger.Log.Error("Failed to write snapshot: ", err)
			}
		}
		if game.Phase() == engine.PhaseGameOver {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Log.Error("Failed to read script: ", err)
	}
}

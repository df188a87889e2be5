package main

import (
	"fmt"
	"os"
	"time"

	"github.com/JMS55/roguelike-sub000/internal/infrastructure/storage"
	"github.com/oklog/ulid/v2"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "info":
		if len(os.Args) < 3 {
			fmt.Println("Usage: replaydump info <file.crpl>")
			return
		}
		if err := info(os.Args[2], false); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	case "actions":
		if len(os.Args) < 3 {
			fmt.Println("Usage: replaydump actions <file.crpl>")
			return
		}
		if err := info(os.Args[2], true); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	case "time":
		if len(os.Args) < 3 {
			fmt.Println("Usage: replaydump time <ulid>")
			return
		}
		id, err := ulid.ParseStrict(os.Args[2])
		if err != nil {
			fmt.Printf("Invalid ULID: %v\n", err)
			return
		}
		fmt.Println(ulid.Time(id.Time()).UTC().Format(time.RFC3339))
	default:
		printHelp()
	}
}

func info(path string, withActions bool) error {
	store := &storage.ReplayStore{}
	s, err := store.Load(path)
	if err != nil {
		return err
	}

	fmt.Printf("session:       %s\n", s.ID)
	fmt.Printf("recorded:      %s\n", ulid.Time(s.ID.Time()).UTC().Format(time.RFC3339))
	fmt.Printf("layout seed:   %d\n", s.LayoutSeed)
	fmt.Printf("gameplay seed: %d\n", s.GameplaySeed)
	fmt.Printf("actions:       %d\n", len(s.Actions))
	if n := len(s.Actions); n > 0 {
		last := s.Actions[n-1]
		fmt.Printf("last:          floor %d, turn %d\n", last.Floor, last.Turn)
	}

	if withActions {
		for i, a := range s.Actions {
			fmt.Printf("%5d  floor=%d turn=%d %-8s %s\n", i, a.Floor, a.Turn, a.Action, a.Payload)
		}
	}
	return nil
}

func printHelp() {
	fmt.Println(`Replay Dump - просмотр записей партий (.crpl)
Commands:
  info <file>      - зёрна, число команд, время записи
  actions <file>   - то же и список всех команд
  time <ulid>      - время создания записи по её ID`)
}

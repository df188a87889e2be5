package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JMS55/roguelike-sub000/internal/domain"
)

// ErrEmptyCommand — строка команды пуста.
var ErrEmptyCommand = errors.New("empty command")

// Короткие глаголы консольного ввода.
var verbAliases = map[string]string{
	"m":    "MOVE",
	"go":   "MOVE",
	"t":    "TURN",
	"face": "TURN",
	"a":    "ATTACK",
	"hit":  "ATTACK",
	"i":    "INTERACT",
	"use":  "INTERACT",
	"p":    "PASS",
	".":    "PASS",
	"wait": "PASS",
}

// ParseCommand разбирает строки вида "move north", "turn w", "attack".
// Результат уже проверен через Validate.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	if len(fields) > 2 {
		return Command{}, fmt.Errorf("too many words in %q", line)
	}

	verb := strings.ToLower(fields[0])
	action, ok := verbAliases[verb]
	if !ok {
		action = domain.ParseAction(verb).String()
	}

	cmd := Command{Action: action}
	if len(fields) == 2 {
		d, ok := domain.ParseDirection(fields[1])
		if !ok {
			return Command{}, fmt.Errorf("unknown direction %q", fields[1])
		}
		cmd.Direction = d.String()
	}

	if err := cmd.Validate(); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

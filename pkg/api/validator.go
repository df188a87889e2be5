package api

import (
	"errors"
	"fmt"

	"github.com/JMS55/roguelike-sub000/internal/domain"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Direction == "" {
		return errors.New("direction is required")
	}
	d, ok := domain.ParseDirection(p.Direction)
	if !ok {
		return fmt.Errorf("unknown direction %q", p.Direction)
	}
	if !d.IsOrthogonal() {
		return fmt.Errorf("direction %s is not orthogonal", d)
	}
	return nil
}

func (c Command) Validate() error {
	action := domain.ParseAction(c.Action)
	if action == domain.ActionUnknown {
		return fmt.Errorf("unknown action %q", c.Action)
	}
	if action.NeedsDirection() {
		return DirectionPayload{Direction: c.Direction}.Validate()
	}
	if c.Direction != "" {
		return fmt.Errorf("%s takes no direction", action)
	}
	return nil
}

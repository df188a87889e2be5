package domain

import (
	"encoding/json"

	"github.com/oklog/ulid/v2"
)

// ReplayAction - одна принятая команда игрока.
type ReplayAction struct {
	Turn    int             `json:"turn"`
	Floor   int             `json:"floor"`
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ReplaySession - запись партии: зёрна обоих потоков и
// последовательность команд. Одинаковая запись воспроизводит
// одинаковый прогон. ID в воспроизведении не участвует.
type ReplaySession struct {
	ID           ulid.ULID      `json:"id"`
	LayoutSeed   int64          `json:"layoutSeed"`
	GameplaySeed int64          `json:"gameplaySeed"`
	Actions      []ReplayAction `json:"actions"`
}

func (r *ReplaySession) Record(a ReplayAction) {
	r.Actions = append(r.Actions, a)
}

// Clone возвращает независимую копию записи.
func (r *ReplaySession) Clone() ReplaySession {
	out := *r
	out.Actions = make([]ReplayAction, len(r.Actions))
	for i, a := range r.Actions {
		a.Payload = append(json.RawMessage(nil), a.Payload...)
		out.Actions[i] = a
	}
	return out
}

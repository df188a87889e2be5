package enums

import "strings"

// EntityKind — грубая классификация сущности. Кладётся в старшие биты
// EntityID, поведение определяется только набором компонентов.
type EntityKind uint8

const (
	EntityKindUnknown EntityKind = iota
	EntityKindPlayer
	EntityKindCreature
	EntityKindWall
	EntityKindFloor
	EntityKindStaircase
	EntityKindSpawner
)

var entityKindToString = map[EntityKind]string{
	EntityKindPlayer:    "PLAYER",
	EntityKindCreature:  "CREATURE",
	EntityKindWall:      "WALL",
	EntityKindFloor:     "FLOOR",
	EntityKindStaircase: "STAIRCASE",
	EntityKindSpawner:   "SPAWNER",
}

var entityKindStringToType = map[string]EntityKind{
	"PLAYER":    EntityKindPlayer,
	"CREATURE":  EntityKindCreature,
	"WALL":      EntityKindWall,
	"FLOOR":     EntityKindFloor,
	"STAIRCASE": EntityKindStaircase,
	"SPAWNER":   EntityKindSpawner,
}

func (e EntityKind) String() string {
	if val, ok := entityKindToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseEntityKind конвертирует строку в Enum
func ParseEntityKind(s string) EntityKind {
	if val, ok := entityKindStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EntityKindUnknown
}

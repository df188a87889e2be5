package domain

import "strings"

// EventType - событие, которое обработчик команды возвращает планировщику.
type EventType uint8

const (
	EventNone EventType = iota
	EventFloorTransition
	EventPlayerDied
)

var eventStringToCmd = map[string]EventType{
	"FLOOR_TRANSITION": EventFloorTransition,
	"PLAYER_DIED":      EventPlayerDied,
}

var eventCmdToString = map[EventType]string{
	EventNone:            "NONE",
	EventFloorTransition: "FLOOR_TRANSITION",
	EventPlayerDied:      "PLAYER_DIED",
}

// ParseEvent конвертирует строку в EventType
func ParseEvent(s string) EventType {
	if val, ok := eventStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return EventNone
}

func (a EventType) String() string {
	if val, ok := eventCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

package domain

import "strings"

// ActionType - вариант команды игрока.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionTurn
	ActionAttack
	ActionInteract
	ActionPass
)

// Маппинг для конвертации ввода -> Domain
var actionStringToCmd = map[string]ActionType{
	"MOVE":     ActionMove,
	"TURN":     ActionTurn,
	"ATTACK":   ActionAttack,
	"INTERACT": ActionInteract,
	"PASS":     ActionPass,
	"WAIT":     ActionPass,
}

var actionCmdToString = map[ActionType]string{
	ActionMove:     "MOVE",
	ActionTurn:     "TURN",
	ActionAttack:   "ATTACK",
	ActionInteract: "INTERACT",
	ActionPass:     "PASS",
}

// ParseAction конвертирует строку в ActionType без учёта регистра.
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// NeedsDirection — команды, которым нужен параметр направления.
func (a ActionType) NeedsDirection() bool {
	return a == ActionMove || a == ActionTurn
}

package enums

// AIState — производное состояние автомата врага.
type AIState uint8

const (
	AIStateNoTarget AIState = iota
	AIStateChasing
	AIStatePatrolling
)

var aiStateToString = map[AIState]string{
	AIStateNoTarget:   "NO_TARGET",
	AIStateChasing:    "CHASING",
	AIStatePatrolling: "PATROLLING",
}

func (s AIState) String() string {
	if val, ok := aiStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}

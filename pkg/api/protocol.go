package api

// --- ЯДРО -> ОТРИСОВЩИК ---

// Snapshot это корневой объект, который ядро отдаёт внешнему отрисовщику.
// Он представляет собой «снимок» окрестности игрока после очередного хода.
type Snapshot struct {
	// Floor номер текущего этажа, начиная с 1.
	Floor int `json:"floor"`

	// Turn общее число потраченных игроком ходов за партию.
	Turn int `json:"turn"`

	// Phase фаза планировщика (player_turn, game_over, ...).
	// Отрисовщик принимает ввод только в player_turn.
	Phase string `json:"phase"`

	Player PlayerView `json:"player"`

	// Cells все сущности в окне вокруг игрока, упорядоченные по слою,
	// затем по y, затем по x.
	Cells []SpriteView `json:"cells"`

	// Messages сообщения, которые ещё не истекли.
	Messages []MessageView `json:"messages,omitempty"`
}

// PlayerView это DTO для характеристик игрока.
type PlayerView struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Facing string `json:"facing"`

	HP         int `json:"hp"`
	MaxHP      int `json:"maxHp"`
	Stamina    int `json:"stamina"`
	MaxStamina int `json:"maxStamina"`
	Strength   int `json:"strength"`
	Agility    int `json:"agility"`
	Focus      int `json:"focus"`
	Luck       int `json:"luck"`

	// FloorTurns ходов, проведённых на текущем этаже.
	FloorTurns int  `json:"floorTurns"`
	IsDead     bool `json:"isDead"`
}

// SpriteView это DTO одной видимой сущности: клетка, спрайт и взгляд.
type SpriteView struct {
	ID     string `json:"id"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Sprite string `json:"sprite"`
	Color  string `json:"color"`
	Facing string `json:"facing,omitempty"`
	Layer  int    `json:"layer"`
}

// MessageView представляет одну запись ленты сообщений. Затухание и
// композицию выполняет отрисовщик по тегу Duration.
type MessageView struct {
	Text     string `json:"text"`
	Color    string `json:"color"`    // INFO, COMBAT, WARNING, DANGER, SYSTEM
	Duration string `json:"duration"` // SHORT, LONG
	Turn     int    `json:"turn"`
}

// --- ВВОД -> ЯДРО ---

// Command это дискретная команда игрока.
type Command struct {
	// Action MOVE, TURN, ATTACK, INTERACT или PASS.
	Action string `json:"action"`

	// Direction нужен только для MOVE и TURN.
	Direction string `json:"direction,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для действий с направлением (MOVE, TURN).
type DirectionPayload struct {
	Direction string `json:"direction"`
}

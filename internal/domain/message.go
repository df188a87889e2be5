package domain

// ColorTag — тег важности сообщения, цвет выбирает отрисовщик.
type ColorTag string

const (
	ColorInfo    ColorTag = "INFO"
	ColorCombat  ColorTag = "COMBAT"
	ColorWarning ColorTag = "WARNING"
	ColorDanger  ColorTag = "DANGER"
	ColorSystem  ColorTag = "SYSTEM"
)

// DurationTag — сколько сообщение держится на экране.
type DurationTag string

const (
	DurationShort DurationTag = "SHORT"
	DurationLong  DurationTag = "LONG"
)

// Message — запись ленты сообщений для внешнего отрисовщика.
type Message struct {
	Text     string      `json:"text"`
	Color    ColorTag    `json:"color"`
	Duration DurationTag `json:"duration"`
	Turn     int         `json:"turn"`
}

// MessageSink принимает сообщения, порождённые системами во время хода.
type MessageSink interface {
	Push(Message)
}

package engine

import (
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Время жизни сообщения в ходах по тегу длительности.
var messageLifetime = map[domain.DurationTag]int{
	domain.DurationShort: 3,
	domain.DurationLong:  8,
}

// MessageLog — упорядоченная лента сообщений. Реализует domain.MessageSink.
type MessageLog struct {
	turn    int
	active  []domain.Message
	pending []domain.Message
	log     *logrus.Entry
}

func NewMessageLog() *MessageLog {
	return &MessageLog{log: logger.Component("game_log")}
}

// Push добавляет сообщение, помечая его текущим ходом.
func (l *MessageLog) Push(m domain.Message) {
	m.Turn = l.turn
	l.active = append(l.active, m)
	l.pending = append(l.pending, m)

	l.log.WithFields(logrus.Fields{
		"turn":  m.Turn,
		"color": m.Color,
	}).Info(m.Text)
}

// Drain возвращает сообщения, накопленные с прошлого вызова.
func (l *MessageLog) Drain() []domain.Message {
	out := l.pending
	l.pending = nil
	return out
}

// Active — ещё не истёкшие сообщения, от старых к новым.
func (l *MessageLog) Active() []domain.Message {
	return append([]domain.Message(nil), l.active...)
}

// Age переводит ленту на ход turn и выбрасывает истёкшие сообщения.
func (l *MessageLog) Age(turn int) {
	l.turn = turn
	kept := l.active[:0]
	for _, m := range l.active {
		if turn-m.Turn < messageLifetime[m.Duration] {
			kept = append(kept, m)
		}
	}
	clear(l.active[len(kept):])
	l.active = kept
}

package engine

import (
	"testing"

	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageLog(t *testing.T) {
	l := NewMessageLog()
	l.Push(domain.Message{Text: "short", Color: domain.ColorInfo, Duration: domain.DurationShort})
	l.Push(domain.Message{Text: "long", Color: domain.ColorDanger, Duration: domain.DurationLong})

	drained := l.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, "short", drained[0].Text)
	assert.Empty(t, l.Drain(), "drain empties the pending queue")

	l.Age(2)
	assert.Len(t, l.Active(), 2)

	l.Age(3)
	active := l.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "long", active[0].Text)

	l.Push(domain.Message{Text: "later", Duration: domain.DurationShort})
	assert.Equal(t, 3, l.Drain()[0].Turn)

	l.Age(5)
	assert.Len(t, l.Active(), 2)

	l.Age(8)
	assert.Empty(t, l.Active())
}

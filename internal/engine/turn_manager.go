package engine

import (
	"container/heap"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/domain"
)

// TurnOrder возвращает всех существ с AI в порядке хода: по возрастанию
// квадрата расстояния до center, при равенстве — по порядку создания.
// Это снимок: к моменту своего хода существо может быть уже мертво.
func TurnOrder(w *domain.World, center domain.Position) []types.EntityID {
	pq := make(TurnQueue, 0)
	for _, id := range w.Query(domain.AttrAI | domain.AttrLocation) {
		e := w.Get(id)
		if e == nil {
			continue
		}
		pq = append(pq, &TurnItem{
			ID:    id,
			Dist:  e.Pos().DistanceSquaredTo(center),
			Seq:   e.Seq,
			Index: len(pq),
		})
	}
	heap.Init(&pq)

	order := make([]types.EntityID, 0, pq.Len())
	for pq.Len() > 0 {
		order = append(order, heap.Pop(&pq).(*TurnItem).ID)
	}
	return order
}

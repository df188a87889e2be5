package engine

import (
	"github.com/JMS55/roguelike-sub000/internal/core/types"
)

// TurnItem обертка для элемента очереди ходов врагов
type TurnItem struct {
	ID    types.EntityID
	Dist  int    // Квадрат евклидова расстояния до игрока. Ближние ходят раньше.
	Seq   uint64 // Порядок создания, разрешает ничьи
	Index int    // Индекс в куче (нужен для update)
}

// TurnQueue реализует heap.Interface и хранит TurnItems
type TurnQueue []*TurnItem

func (pq TurnQueue) Len() int { return len(pq) }

func (pq TurnQueue) Less(i, j int) bool {
	if pq[i].Dist != pq[j].Dist {
		return pq[i].Dist < pq[j].Dist
	}
	return pq[i].Seq < pq[j].Seq
}

func (pq TurnQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *TurnQueue) Push(x any) {
	n := len(*pq)
	item := x.(*TurnItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *TurnQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

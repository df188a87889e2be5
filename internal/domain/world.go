package domain

import (
	"fmt"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// slot — ячейка арены. Поколение растёт при каждом освобождении.
type slot struct {
	gen    uint32
	entity *Entity
}

// World — единственное хранилище сущностей.
//
// Идентификаторы — индексы слотов с поколением: удалённая сущность
// навсегда перестаёт находиться по старому ID. Запросы возвращают
// снимок идентификаторов, поэтому удаление во время обхода снимка
// безопасно; вызывающий код перепроверяет живость через Get.
type World struct {
	slots []slot
	free  []uint32

	// order хранит ID в порядке создания; может содержать мёртвые ID,
	// они выбрасываются при компактизации.
	order []types.EntityID
	stale int

	nextSeq uint64
	live    int

	spatial map[Position][]types.EntityID

	// Rooms — комнаты текущего этажа, нужны патрулю.
	Rooms []Room

	sink MessageSink
	log  *logrus.Entry
}

func NewWorld() *World {
	return &World{
		spatial: make(map[Position][]types.EntityID),
		log:     logger.Component("world"),
	}
}

// SetSink подключает ленту сообщений. Без неё Notify ничего не делает.
func (w *World) SetSink(s MessageSink) {
	w.sink = s
}

// Notify публикует сообщение для игрока.
func (w *World) Notify(text string, color ColorTag, dur DurationTag) {
	if w.sink == nil {
		return
	}
	w.sink.Push(Message{Text: text, Color: color, Duration: dur})
}

// Create регистрирует сущность и возвращает её новый идентификатор.
func (w *World) Create(e *Entity) types.EntityID {
	if e == nil {
		panic("domain: Create(nil)")
	}

	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.slots))
		w.slots = append(w.slots, slot{gen: 1})
	}

	s := &w.slots[idx]
	s.entity = e

	w.nextSeq++
	e.ID = types.PackEntityID(uint8(e.Kind), s.gen, idx)
	e.Seq = w.nextSeq

	w.order = append(w.order, e.ID)
	w.live++
	w.index(e)

	return e.ID
}

// Delete удаляет сущность. Повторное удаление и устаревший ID — no-op.
func (w *World) Delete(id types.EntityID) bool {
	e := w.Get(id)
	if e == nil {
		return false
	}

	w.unindex(e)

	s := &w.slots[id.Index()]
	s.entity = nil
	s.gen++
	if s.gen > types.MaxGeneration {
		s.gen = 1
	}
	w.free = append(w.free, id.Index())

	w.live--
	w.stale++
	w.compact()

	return true
}

// Get возвращает живую сущность или nil.
func (w *World) Get(id types.EntityID) *Entity {
	if id.IsNil() {
		return nil
	}
	idx := id.Index()
	if int(idx) >= len(w.slots) {
		return nil
	}
	s := w.slots[idx]
	if s.entity == nil || s.gen != id.Generation() {
		return nil
	}
	return s.entity
}

// MustGet — для ID, живость которых гарантирована инвариантами.
func (w *World) MustGet(id types.EntityID) *Entity {
	e := w.Get(id)
	if e == nil {
		panic(fmt.Sprintf("domain: entity %s is not alive", id))
	}
	return e
}

func (w *World) Alive(id types.EntityID) bool {
	return w.Get(id) != nil
}

// Has — жива ли сущность и несёт ли все атрибуты набора.
func (w *World) Has(id types.EntityID, attrs Attribute) bool {
	e := w.Get(id)
	return e != nil && e.Attributes().Has(attrs)
}

// Len — число живых сущностей.
func (w *World) Len() int {
	return w.live
}

// Query возвращает снимок живых сущностей, несущих все атрибуты набора,
// в порядке создания.
func (w *World) Query(attrs Attribute) []types.EntityID {
	out := make([]types.EntityID, 0, 16)
	for _, id := range w.order {
		e := w.Get(id)
		if e == nil {
			continue
		}
		if e.Attributes().Has(attrs) {
			out = append(out, id)
		}
	}
	return out
}

// MoveTo переносит сущность в клетку. Блокирующая сущность не может
// встать на клетку, занятую другой блокирующей.
func (w *World) MoveTo(id types.EntityID, to Position) bool {
	e := w.Get(id)
	if e == nil || e.Loc == nil {
		return false
	}
	if e.Blocks() {
		if other := w.BlockerAt(to); !other.IsNil() && other != id {
			return false
		}
	}

	w.unindex(e)
	e.Loc.Pos = to
	w.index(e)
	return true
}

// SetFacing меняет направление взгляда.
func (w *World) SetFacing(id types.EntityID, d Direction) {
	if e := w.Get(id); e != nil && e.Loc != nil {
		e.Loc.Facing = d
	}
}

// EntitiesAt — живые сущности в клетке, в порядке появления там.
func (w *World) EntitiesAt(p Position) []types.EntityID {
	ids := w.spatial[p]
	out := make([]types.EntityID, 0, len(ids))
	for _, id := range ids {
		if w.Alive(id) {
			out = append(out, id)
		}
	}
	return out
}

// BlockerAt возвращает блокирующую сущность в клетке или NilEntityID.
func (w *World) BlockerAt(p Position) types.EntityID {
	for _, id := range w.spatial[p] {
		if e := w.Get(id); e != nil && e.Blocks() {
			return id
		}
	}
	return types.NilEntityID
}

// FindAt возвращает первую сущность в клетке, несущую атрибуты набора.
func (w *World) FindAt(p Position, attrs Attribute) types.EntityID {
	for _, id := range w.spatial[p] {
		if e := w.Get(id); e != nil && e.Attributes().Has(attrs) {
			return id
		}
	}
	return types.NilEntityID
}

// IsFree — в клетке нет блокирующих сущностей.
func (w *World) IsFree(p Position) bool {
	return w.BlockerAt(p).IsNil()
}

// ObstacleSet собирает клетки всех блокирующих сущностей, кроме exclude.
func (w *World) ObstacleSet(exclude ...types.EntityID) mapset.Set[Position] {
	set := mapset.New[Position]()
	for p, ids := range w.spatial {
		for _, id := range ids {
			if isExcluded(id, exclude) {
				continue
			}
			if e := w.Get(id); e != nil && e.Blocks() {
				set.Put(p)
				break
			}
		}
	}
	return set
}

// Purge удаляет всё, кроме keep. Возвращает число удалённых.
func (w *World) Purge(keep ...types.EntityID) int {
	removed := 0
	for _, id := range w.Query(0) {
		if isExcluded(id, keep) {
			continue
		}
		if w.Delete(id) {
			removed++
		}
	}
	w.log.WithFields(logrus.Fields{"removed": removed, "kept": len(keep)}).Debug("world purged")
	return removed
}

func (w *World) index(e *Entity) {
	if e.Loc == nil {
		return
	}
	w.spatial[e.Loc.Pos] = append(w.spatial[e.Loc.Pos], e.ID)
}

func (w *World) unindex(e *Entity) {
	if e.Loc == nil {
		return
	}
	ids := w.spatial[e.Loc.Pos]
	for i, id := range ids {
		if id == e.ID {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(w.spatial, e.Loc.Pos)
		return
	}
	w.spatial[e.Loc.Pos] = ids
}

// compact выбрасывает мёртвые ID из order, когда их стало больше половины.
func (w *World) compact() {
	if w.stale < 64 || w.stale*2 < len(w.order) {
		return
	}
	kept := w.order[:0]
	for _, id := range w.order {
		if w.Alive(id) {
			kept = append(kept, id)
		}
	}
	clear(w.order[len(kept):])
	w.order = kept
	w.stale = 0
}

func isExcluded(id types.EntityID, list []types.EntityID) bool {
	for _, x := range list {
		if x == id {
			return true
		}
	}
	return false
}

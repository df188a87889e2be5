package types

import (
	"fmt"
	"strconv"
)

// EntityID — 64-битный идентификатор сущности в арене слотов.
//
// Формат битов (от старших к младшим):
//
//	[ Kind (8) | Generation (24) | Index (32) ]
//
// Index — номер слота в хранилище мира, Generation — версия слота.
// При удалении сущности поколение слота увеличивается, поэтому старый
// идентификатор перестаёт проходить проверку живости и никогда не
// указывает на новую сущность, занявшую тот же слот.
type EntityID uint64

// NilEntityID — отсутствующая сущность.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsGen   = 24
	bitsKind  = 8

	shiftGen  = bitsIndex
	shiftKind = bitsIndex + bitsGen

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
)

// MaxGeneration — поколение, после которого счётчик слота заворачивается.
const MaxGeneration = maskGen

// PackEntityID собирает EntityID из составных частей.
// Старшие биты gen, не помещающиеся в 24 бита, отбрасываются.
func PackEntityID(kind uint8, gen uint32, index uint32) EntityID {
	return EntityID(
		(uint64(kind) << shiftKind) |
			((uint64(gen) & maskGen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает номер слота.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота на момент выдачи идентификатора.
func (id EntityID) Generation() uint32 {
	return uint32((id >> shiftGen) & maskGen)
}

// Kind возвращает тег типа сущности (см. enums.EntityKind).
func (id EntityID) Kind() uint8 {
	return uint8((id >> shiftKind) & maskKind)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String — для логов и отладки.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[kind=%d gen=%d idx=%d]", id.Kind(), id.Generation(), id.Index())
}

// MarshalJSON пишет идентификатор строкой, чтобы не терять точность uint64
// у потребителей снапшотов.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает и строку, и число.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 1 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("entity id %q: %w", s, err)
	}
	*id = EntityID(v)
	return nil
}

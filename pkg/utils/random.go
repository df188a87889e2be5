package utils

import "math/rand"

// Streams — два независимых детерминированных генератора.
// Layout используется только генератором подземелья, Gameplay — всем
// остальным (ИИ, шансы эффектов, спавнеры, заселение этажа). Раздельные
// потоки позволяют менять геймплей, не сдвигая раскладку этажей.
type Streams struct {
	Layout   *rand.Rand
	Gameplay *rand.Rand
}

// NewStreams создаёт оба потока из явных зёрен.
func NewStreams(layoutSeed, gameplaySeed int64) *Streams {
	return &Streams{
		Layout:   rand.New(rand.NewSource(layoutSeed)),
		Gameplay: rand.New(rand.NewSource(gameplaySeed)),
	}
}

// RandRange возвращает число в [min, max] включительно.
func RandRange(rng *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	return rng.Intn(max-min+1) + min
}

// Chance возвращает true с вероятностью p. Значение из rng тратится всегда,
// даже при p <= 0, чтобы последовательность не зависела от конфигурации.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// WeightedIndex выбирает индекс пропорционально весам.
// Отрицательные веса считаются нулевыми; при нулевой сумме возвращает -1.
func WeightedIndex(rng *rand.Rand, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}

	roll := rng.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

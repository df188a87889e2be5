package domain

import (
	"math/rand"

	"github.com/JMS55/roguelike-sub000/pkg/utils"
)

// Room — квадратная комната: внутренность — клетки на расстоянии
// Чебышёва не больше Radius от центра, стены — кольцо Radius+1.
type Room struct {
	Center Position `json:"center"`
	Radius int      `json:"radius"`
}

// Contains — клетка внутри комнаты (без стен).
func (r Room) Contains(p Position) bool {
	return r.Center.Chebyshev(p) <= r.Radius
}

// ContainsWithRing — внутренность вместе с кольцом стен.
func (r Room) ContainsWithRing(p Position) bool {
	return r.Center.Chebyshev(p) <= r.Radius+1
}

// OnRing — клетка периметра.
func (r Room) OnRing(p Position) bool {
	return r.Center.Chebyshev(p) == r.Radius+1
}

// Gap — число клеток строго между внутренностями по разделяющей оси.
// Отрицательное значение означает пересечение.
func (r Room) Gap(o Room) int {
	return r.Center.Chebyshev(o.Center) - r.Radius - o.Radius - 1
}

// Interior перечисляет внутренние клетки построчно.
func (r Room) Interior() []Position {
	side := 2*r.Radius + 1
	cells := make([]Position, 0, side*side)
	for y := r.Center.Y - r.Radius; y <= r.Center.Y+r.Radius; y++ {
		for x := r.Center.X - r.Radius; x <= r.Center.X+r.Radius; x++ {
			cells = append(cells, Position{X: x, Y: y})
		}
	}
	return cells
}

// Ring перечисляет клетки периметра.
func (r Room) Ring() []Position {
	outer := r.Radius + 1
	cells := make([]Position, 0, 8*outer)
	for y := r.Center.Y - outer; y <= r.Center.Y+outer; y++ {
		for x := r.Center.X - outer; x <= r.Center.X+outer; x++ {
			p := Position{X: x, Y: y}
			if r.OnRing(p) {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

// RandomInterior — равномерно случайная внутренняя клетка.
func (r Room) RandomInterior(rng *rand.Rand) Position {
	return Position{
		X: utils.RandRange(rng, r.Center.X-r.Radius, r.Center.X+r.Radius),
		Y: utils.RandRange(rng, r.Center.Y-r.Radius, r.Center.Y+r.Radius),
	}
}

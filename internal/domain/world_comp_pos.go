package domain

import (
	"fmt"
	"strings"
)

// Position — клетка сетки. Ось Y направлена вниз, как строки карты.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Origin — центр стартовой комнаты каждого этажа.
var Origin = Position{}

func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Shift возвращает новую позицию со смещением.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan — длина кратчайшего ортогонального пути без препятствий.
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

// Chebyshev — длина пути с диагоналями; радиус взрыва считается по ней же.
func (p Position) Chebyshev(o Position) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Position) DistanceSquaredTo(o Position) int {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Less — лексикографический порядок (x, затем y).
func (p Position) Less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// RotateCW поворачивает смещение на 90° по часовой стрелке k раз.
// При оси Y вниз: север (0,-1) -> восток (1,0) -> юг (0,1) -> запад (-1,0).
func (p Position) RotateCW(k int) Position {
	k = ((k % 4) + 4) % 4
	for i := 0; i < k; i++ {
		p = Position{X: -p.Y, Y: p.X}
	}
	return p
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction — одно из восьми направлений компаса.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Orthogonals — порядок обхода соседей во всех поисках: N, E, S, W.
// Индекс в массиве совпадает с числом поворотов по часовой от севера.
var Orthogonals = [4]Direction{North, East, South, West}

// Diagonals дополняют Orthogonals для существ с диагональным ходом.
var Diagonals = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}

var directionDeltas = [8]Position{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var directionToString = map[Direction]string{
	North:     "NORTH",
	NorthEast: "NORTHEAST",
	East:      "EAST",
	SouthEast: "SOUTHEAST",
	South:     "SOUTH",
	SouthWest: "SOUTHWEST",
	West:      "WEST",
	NorthWest: "NORTHWEST",
}

var directionStringToType = map[string]Direction{
	"NORTH": North, "N": North, "UP": North,
	"NORTHEAST": NorthEast, "NE": NorthEast,
	"EAST": East, "E": East, "RIGHT": East,
	"SOUTHEAST": SouthEast, "SE": SouthEast,
	"SOUTH": South, "S": South, "DOWN": South,
	"SOUTHWEST": SouthWest, "SW": SouthWest,
	"WEST": West, "W": West, "LEFT": West,
	"NORTHWEST": NorthWest, "NW": NorthWest,
}

// Delta возвращает единичное смещение направления.
func (d Direction) Delta() Position {
	if int(d) >= len(directionDeltas) {
		return Position{}
	}
	return directionDeltas[d]
}

// IsOrthogonal — true для N, E, S, W.
func (d Direction) IsOrthogonal() bool {
	return d%2 == 0 && d <= West
}

// Rotation — число поворотов на 90° от севера. Только для ортогональных.
func (d Direction) Rotation() int {
	return int(d) / 2
}

func (d Direction) String() string {
	if val, ok := directionToString[d]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseDirection понимает полные имена и сокращения без учёта регистра.
func ParseDirection(s string) (Direction, bool) {
	d, ok := directionStringToType[strings.ToUpper(strings.TrimSpace(s))]
	return d, ok
}

// DirectionTo возвращает ортогональное направление на соседнюю клетку.
func DirectionTo(from, to Position) (Direction, bool) {
	delta := Position{X: to.X - from.X, Y: to.Y - from.Y}
	for _, d := range Orthogonals {
		if d.Delta() == delta {
			return d, true
		}
	}
	for _, d := range Diagonals {
		if d.Delta() == delta {
			return d, true
		}
	}
	return North, false
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	v, ok := ParseDirection(string(b))
	if !ok {
		return fmt.Errorf("unknown direction %q", string(b))
	}
	*d = v
	return nil
}

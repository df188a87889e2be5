package dungeon

import (
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
	"github.com/JMS55/roguelike-sub000/internal/domain"
)

// EntityTemplate определяет шаблон неподвижной сущности этажа.
type EntityTemplate struct {
	Kind       enums.EntityKind
	Name       string
	Render     domain.RenderComponent
	Intangible bool
	Staircase  bool
}

// SpawnEntity создает сущность из шаблона на заданной позиции
func (t EntityTemplate) SpawnEntity(pos domain.Position) *domain.Entity {
	render := t.Render
	return &domain.Entity{
		Kind:       t.Kind,
		Name:       t.Name,
		Intangible: t.Intangible,
		Staircase:  t.Staircase,
		Loc:        &domain.Location{Pos: pos},
		Render:     &render,
	}
}

var (
	WallTemplate = EntityTemplate{
		Kind:   enums.EntityKindWall,
		Name:   "Wall",
		Render: domain.RenderComponent{Sprite: "wall", Color: "gray", Layer: domain.LayerObject},
	}

	FloorTemplate = EntityTemplate{
		Kind:       enums.EntityKindFloor,
		Name:       "Floor",
		Render:     domain.RenderComponent{Sprite: "floor", Color: "dark_gray", Layer: domain.LayerFloor},
		Intangible: true,
	}

	StaircaseTemplate = EntityTemplate{
		Kind:       enums.EntityKindStaircase,
		Name:       "Staircase",
		Render:     domain.RenderComponent{Sprite: "staircase", Color: "white", Layer: domain.LayerObject},
		Intangible: true,
		Staircase:  true,
	}

	SpawnerTemplate = EntityTemplate{
		Kind:       enums.EntityKindSpawner,
		Name:       "Spawner",
		Render:     domain.RenderComponent{Sprite: "spawner", Color: "red", Layer: domain.LayerObject},
		Intangible: true,
	}
)

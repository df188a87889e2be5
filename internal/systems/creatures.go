package systems

import (
	"math/rand"
	"sort"

	"github.com/JMS55/roguelike-sub000/internal/core/types"
	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/utils"
	"github.com/zyedidia/generic/mapset"
)

// RangeKind — как существо определяет «дошёл до дистанции атаки».
type RangeKind uint8

const (
	// RangeAdjacent — встать ортогонально рядом с целью.
	RangeAdjacent RangeKind = iota
	// RangeExact — встать на одной линии с целью ровно в Distance клетках.
	RangeExact
)

// AttackRange — предикат цели пути для преследования.
type AttackRange struct {
	Kind     RangeKind
	Distance int
}

// Goal строит предикат цели и поправку эвристики для A*.
func (r AttackRange) Goal(target domain.Position, obstacles mapset.Set[domain.Position]) (GoalFunc, int) {
	if r.Kind == RangeExact && r.Distance > 1 {
		return AtOrthogonalDistance(target, r.Distance, obstacles), r.Distance
	}
	return AdjacentTo(target), 1
}

// Profile — всё, чем варианты существ отличаются друг от друга.
// Поток управления у всех вариантов общий (см. Brain).
type Profile struct {
	Kind   enums.CreatureKind
	Name   string
	Sprite string
	Color  string
	Tier   enums.Rarity

	Stats  domain.CombatComponent
	Attack AttackSpec
	Range  AttackRange

	Diagonal bool
	Patrols  bool

	ValidateBudget int
	SearchBudget   int

	BonusAttackChance float64
	RepositionChance  float64
	SummonChance      float64
	Summon            enums.CreatureKind

	// AttackLockAfter — сколько следующих ходов врагов существо не атакует
	// после удара.
	AttackLockAfter int

	OnDeath *domain.DeathEffect
}

func stats(hp, str, agi, foc, luck int) domain.CombatComponent {
	return domain.CombatComponent{HP: hp, MaxHP: hp, Strength: str, Agility: agi, Focus: foc, Luck: luck}
}

// DefaultProfiles возвращает свежую копию таблицы вариантов.
func DefaultProfiles() map[enums.CreatureKind]*Profile {
	return map[enums.CreatureKind]*Profile{
		enums.CreatureGoblin: {
			Kind: enums.CreatureGoblin, Name: "Goblin", Sprite: "goblin", Color: "green",
			Tier:    enums.RarityCommon,
			Stats:   stats(6, 2, 2, 1, 1),
			Attack:  AttackSpec{Offsets: MeleeOffsets, DamageStat: domain.StatStrength},
			Range:   AttackRange{Kind: RangeAdjacent},
			Patrols: true,
		},
		enums.CreatureSkeletonSpearman: {
			Kind: enums.CreatureSkeletonSpearman, Name: "Skeleton Spearman", Sprite: "skeleton_spearman", Color: "white",
			Tier:    enums.RarityCommon,
			Stats:   stats(5, 3, 1, 1, 1),
			Attack:  AttackSpec{Offsets: []domain.Position{{X: 0, Y: -2}}, DamageStat: domain.StatStrength},
			Range:   AttackRange{Kind: RangeExact, Distance: 2},
			Patrols: true,
		},
		enums.CreaturePhaseBat: {
			Kind: enums.CreaturePhaseBat, Name: "Phase Bat", Sprite: "phase_bat", Color: "purple",
			Tier:             enums.RarityUncommon,
			Stats:            stats(4, 1, 3, 1, 2),
			Attack:           AttackSpec{Offsets: MeleeOffsets, DamageStat: domain.StatAgility},
			Range:            AttackRange{Kind: RangeAdjacent},
			Diagonal:         true,
			RepositionChance: 0.35,
		},
		enums.CreatureVolatileHusk: {
			Kind: enums.CreatureVolatileHusk, Name: "Volatile Husk", Sprite: "volatile_husk", Color: "orange",
			Tier:    enums.RarityUncommon,
			Stats:   stats(3, 1, 1, 1, 1),
			Attack:  AttackSpec{Offsets: MeleeOffsets, DamageStat: domain.StatStrength},
			Range:   AttackRange{Kind: RangeAdjacent},
			OnDeath: &domain.DeathEffect{Kind: domain.DeathExplode, Radius: 1, Amount: 4},
		},
		enums.CreatureBloodTick: {
			Kind: enums.CreatureBloodTick, Name: "Blood Tick", Sprite: "blood_tick", Color: "red",
			Tier:    enums.RarityUncommon,
			Stats:   stats(3, 1, 2, 1, 2),
			Attack:  AttackSpec{Offsets: MeleeOffsets, DamageStat: domain.StatLuck},
			Range:   AttackRange{Kind: RangeAdjacent},
			OnDeath: &domain.DeathEffect{Kind: domain.DeathHealKiller, Amount: 3},
		},
		enums.CreatureGoblinShaman: {
			Kind: enums.CreatureGoblinShaman, Name: "Goblin Shaman", Sprite: "goblin_shaman", Color: "teal",
			Tier:         enums.RarityRare,
			Stats:        stats(7, 1, 1, 3, 1),
			Attack:       AttackSpec{Offsets: MeleeOffsets, DamageStat: domain.StatFocus},
			Range:        AttackRange{Kind: RangeAdjacent},
			Patrols:      true,
			SummonChance: 0.25,
			Summon:       enums.CreatureGoblin,
		},
		enums.CreatureOgreBerserker: {
			Kind: enums.CreatureOgreBerserker, Name: "Ogre Berserker", Sprite: "ogre_berserker", Color: "brown",
			Tier:  enums.RarityRare,
			Stats: stats(14, 4, 1, 1, 1),
			Attack: AttackSpec{
				Offsets:    []domain.Position{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1}},
				DamageStat: domain.StatStrength,
			},
			Range:             AttackRange{Kind: RangeAdjacent},
			Patrols:           true,
			BonusAttackChance: 0.25,
			AttackLockAfter:   2,
		},
		enums.CreatureStairWarden: {
			Kind: enums.CreatureStairWarden, Name: "Stair Warden", Sprite: "stair_warden", Color: "gold",
			Tier:    enums.RarityRare,
			Stats:   stats(10, 3, 1, 2, 1),
			Attack:  AttackSpec{Offsets: MeleeOffsets, DamageStat: domain.StatStrength},
			Range:   AttackRange{Kind: RangeAdjacent},
			Patrols: true,
			OnDeath: &domain.DeathEffect{Kind: domain.DeathSpawnStaircase},
		},
	}
}

// DefaultRarityWeights — веса тиров common/uncommon/rare.
var DefaultRarityWeights = []int{70, 25, 5}

// Bestiary — таблица профилей по тегу варианта и фабрика существ.
type Bestiary struct {
	profiles map[enums.CreatureKind]*Profile
	tiers    [enums.RarityCount][]enums.CreatureKind
	weights  []int
}

// NewBestiary строит бестиарий. offsets переопределяют формы атак
// отдельных вариантов; пустые weights заменяются весами по умолчанию.
func NewBestiary(weights []int, offsets map[enums.CreatureKind][]domain.Position) *Bestiary {
	if len(weights) == 0 {
		weights = DefaultRarityWeights
	}
	b := &Bestiary{
		profiles: DefaultProfiles(),
		weights:  append([]int(nil), weights...),
	}

	for kind, offs := range offsets {
		if p, ok := b.profiles[kind]; ok && len(offs) > 0 {
			p.Attack.Offsets = append([]domain.Position(nil), offs...)
		}
	}

	for kind, p := range b.profiles {
		if p.ValidateBudget == 0 {
			p.ValidateBudget = DefaultValidateBudget
		}
		if p.SearchBudget == 0 {
			p.SearchBudget = DefaultSearchBudget
		}
		b.tiers[p.Tier] = append(b.tiers[p.Tier], kind)
	}
	// Порядок внутри тира не должен зависеть от обхода map.
	for i := range b.tiers {
		sort.Slice(b.tiers[i], func(a, c int) bool { return b.tiers[i][a] < b.tiers[i][c] })
	}
	return b
}

// Profile возвращает профиль варианта.
func (b *Bestiary) Profile(kind enums.CreatureKind) (*Profile, bool) {
	p, ok := b.profiles[kind]
	return p, ok
}

// Roll выбирает тир по весам и вариант внутри тира равновероятно.
func (b *Bestiary) Roll(rng *rand.Rand) enums.CreatureKind {
	weights := make([]int, enums.RarityCount)
	for i := range weights {
		if i < len(b.weights) && len(b.tiers[i]) > 0 {
			weights[i] = b.weights[i]
		}
	}
	tier := utils.WeightedIndex(rng, weights)
	if tier < 0 {
		return enums.CreatureGoblin
	}
	kinds := b.tiers[tier]
	return kinds[rng.Intn(len(kinds))]
}

// Spawn создаёт существо в свободной клетке. Возвращает NilEntityID,
// если клетка занята или вариант неизвестен.
func (b *Bestiary) Spawn(w *domain.World, kind enums.CreatureKind, at domain.Position) types.EntityID {
	p, ok := b.profiles[kind]
	if !ok || !w.IsFree(at) {
		return types.NilEntityID
	}

	combat := p.Stats
	e := &domain.Entity{
		Kind:      enums.EntityKindCreature,
		Name:      p.Name,
		Team:      domain.TeamEnemy,
		Loc:       &domain.Location{Pos: at, Facing: domain.South},
		Combat:    &combat,
		Render:    &domain.RenderComponent{Sprite: p.Sprite, Color: p.Color, Layer: domain.LayerActor},
		AI:        &domain.AIComponent{Kind: kind},
		Cooldowns: &domain.Cooldowns{},
	}
	if p.OnDeath != nil {
		effect := *p.OnDeath
		e.DeathEffect = &effect
	}
	return w.Create(e)
}

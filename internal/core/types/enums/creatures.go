package enums

import "strings"

// CreatureKind — тег варианта поведения. Закрытое множество: поведение
// каждого варианта описывается профилем в systems.Bestiary.
type CreatureKind uint8

const (
	CreatureUnknown CreatureKind = iota
	CreatureGoblin
	CreatureSkeletonSpearman
	CreaturePhaseBat
	CreatureVolatileHusk
	CreatureBloodTick
	CreatureGoblinShaman
	CreatureOgreBerserker
	CreatureStairWarden
)

var creatureToString = map[CreatureKind]string{
	CreatureGoblin:           "GOBLIN",
	CreatureSkeletonSpearman: "SKELETON_SPEARMAN",
	CreaturePhaseBat:         "PHASE_BAT",
	CreatureVolatileHusk:     "VOLATILE_HUSK",
	CreatureBloodTick:        "BLOOD_TICK",
	CreatureGoblinShaman:     "GOBLIN_SHAMAN",
	CreatureOgreBerserker:    "OGRE_BERSERKER",
	CreatureStairWarden:      "STAIR_WARDEN",
}

var creatureStringToType = func() map[string]CreatureKind {
	m := make(map[string]CreatureKind, len(creatureToString))
	for k, v := range creatureToString {
		m[v] = k
	}
	return m
}()

func (c CreatureKind) String() string {
	if val, ok := creatureToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseCreatureKind нужен для переопределений в конфиге ("goblin", "phase_bat").
func ParseCreatureKind(s string) CreatureKind {
	if val, ok := creatureStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return CreatureUnknown
}

// Rarity — тир редкости для спавнеров.
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
)

// RarityCount — число тиров; таблица весов должна иметь ровно столько элементов.
const RarityCount = 3

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "COMMON"
	case RarityUncommon:
		return "UNCOMMON"
	case RarityRare:
		return "RARE"
	}
	return "UNKNOWN"
}

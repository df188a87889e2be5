package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/JMS55/roguelike-sub000/internal/core/types/enums"
	"github.com/JMS55/roguelike-sub000/internal/domain"
	"github.com/JMS55/roguelike-sub000/pkg/dungeon"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DrainBand — полоса истощения: начиная с Turns ходов на этаже игрок
// теряет Drain выносливости за ход. Warning показывается один раз.
type DrainBand struct {
	Turns   int    `yaml:"turns"`
	Drain   int    `yaml:"drain"`
	Warning string `yaml:"warning"`
}

// Config — все настройки партии, задаваемые при её создании.
type Config struct {
	LayoutSeed   int64 `yaml:"layout_seed"`
	GameplaySeed int64 `yaml:"gameplay_seed"`

	Dungeon dungeon.Params `yaml:"dungeon"`

	// SpawnerThreshold — ходов врагов между срабатываниями спавнера.
	SpawnerThreshold int `yaml:"spawner_threshold"`
	// EnemiesPerRoom — сколько существ пытаемся посадить в каждую комнату,
	// кроме стартовой, при заселении этажа.
	EnemiesPerRoom int   `yaml:"enemies_per_room"`
	RarityWeights  []int `yaml:"rarity_weights"`

	DrainBands []DrainBand `yaml:"drain_bands"`

	// ViewportRadius — радиус Чебышёва снимка вокруг игрока.
	ViewportRadius int `yaml:"viewport_radius"`

	Player domain.CombatComponent `yaml:"player"`

	// AttackOffsets переопределяет формы атак по имени варианта
	// (GOBLIN, SKELETON_SPEARMAN, ...). Смещения записаны для взгляда на север.
	AttackOffsets map[string][]domain.Position `yaml:"attack_offsets"`
}

// envOverrides — переменные окружения поверх YAML. Незаданные
// переменные оставляют значения файла нетронутыми.
type envOverrides struct {
	LayoutSeed       *int64   `env:"CRAWLER_LAYOUT_SEED"`
	GameplaySeed     *int64   `env:"CRAWLER_GAMEPLAY_SEED"`
	RoomAttempts     *int     `env:"CRAWLER_ROOM_ATTEMPTS"`
	SpawnerChance    *float64 `env:"CRAWLER_SPAWNER_CHANCE"`
	SpawnerThreshold *int     `env:"CRAWLER_SPAWNER_THRESHOLD"`
	EnemiesPerRoom   *int     `env:"CRAWLER_ENEMIES_PER_ROOM"`
	ViewportRadius   *int     `env:"CRAWLER_VIEWPORT_RADIUS"`
	RarityWeights    []int    `env:"CRAWLER_RARITY_WEIGHTS" envSeparator:","`
}

// Default возвращает конфиг с играбельными значениями по умолчанию.
func Default() *Config {
	return &Config{
		LayoutSeed:       1,
		GameplaySeed:     2,
		Dungeon:          dungeon.DefaultParams(),
		SpawnerThreshold: 12,
		EnemiesPerRoom:   1,
		RarityWeights:    []int{70, 25, 5},
		DrainBands: []DrainBand{
			{Turns: 150, Drain: 1, Warning: "You feel hungry."},
			{Turns: 300, Drain: 2, Warning: "You feel weak from hunger."},
			{Turns: 450, Drain: 4, Warning: "You are starving!"},
		},
		ViewportRadius: 10,
		Player: domain.CombatComponent{
			HP: 20, MaxHP: 20,
			Strength: 3, Agility: 2, Focus: 1, Luck: 1,
			Stamina: 100, MaxStamina: 100,
		},
	}
}

// Load читает YAML поверх значений по умолчанию.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv накладывает переменные окружения CRAWLER_*.
func (c *Config) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.LayoutSeed != nil {
		c.LayoutSeed = *o.LayoutSeed
	}
	if o.GameplaySeed != nil {
		c.GameplaySeed = *o.GameplaySeed
	}
	if o.RoomAttempts != nil {
		c.Dungeon.RoomAttempts = *o.RoomAttempts
	}
	if o.SpawnerChance != nil {
		c.Dungeon.SpawnerChance = *o.SpawnerChance
	}
	if o.SpawnerThreshold != nil {
		c.SpawnerThreshold = *o.SpawnerThreshold
	}
	if o.EnemiesPerRoom != nil {
		c.EnemiesPerRoom = *o.EnemiesPerRoom
	}
	if o.ViewportRadius != nil {
		c.ViewportRadius = *o.ViewportRadius
	}
	if len(o.RarityWeights) > 0 {
		c.RarityWeights = o.RarityWeights
	}
	return nil
}

// Validate проверяет согласованность значений и упорядочивает полосы
// истощения по возрастанию порога.
func (c *Config) Validate() error {
	d := c.Dungeon
	switch {
	case d.StartRadius < 1:
		return fmt.Errorf("dungeon.start_radius must be at least 1, got %d", d.StartRadius)
	case d.RoomAttempts < 0:
		return fmt.Errorf("dungeon.room_attempts must not be negative, got %d", d.RoomAttempts)
	case d.Range < 0:
		return fmt.Errorf("dungeon.range must not be negative, got %d", d.Range)
	case d.RadiusMin < 0 || d.RadiusMax < d.RadiusMin:
		return fmt.Errorf("dungeon radius bounds [%d, %d] are invalid", d.RadiusMin, d.RadiusMax)
	case d.GapMin < 0 || d.GapMax < d.GapMin:
		return fmt.Errorf("dungeon gap bounds [%d, %d] are invalid", d.GapMin, d.GapMax)
	case d.SpawnerChance < 0 || d.SpawnerChance > 1:
		return fmt.Errorf("dungeon.spawner_chance must be within [0, 1], got %v", d.SpawnerChance)
	case c.SpawnerThreshold < 1:
		return fmt.Errorf("spawner_threshold must be positive, got %d", c.SpawnerThreshold)
	case c.EnemiesPerRoom < 0:
		return fmt.Errorf("enemies_per_room must not be negative, got %d", c.EnemiesPerRoom)
	case c.ViewportRadius < 0:
		return fmt.Errorf("viewport_radius must not be negative, got %d", c.ViewportRadius)
	case c.Player.MaxHP < 1:
		return fmt.Errorf("player.max_hp must be positive, got %d", c.Player.MaxHP)
	}

	if len(c.RarityWeights) > int(enums.RarityCount) {
		return fmt.Errorf("rarity_weights has %d entries, at most %d tiers exist", len(c.RarityWeights), enums.RarityCount)
	}
	total := 0
	for _, w := range c.RarityWeights {
		if w < 0 {
			return fmt.Errorf("rarity_weights must not contain negative values")
		}
		total += w
	}
	if len(c.RarityWeights) > 0 && total == 0 {
		return fmt.Errorf("rarity_weights must not all be zero")
	}

	for _, b := range c.DrainBands {
		if b.Turns < 1 || b.Drain < 0 {
			return fmt.Errorf("drain band %+v is invalid", b)
		}
	}
	sort.SliceStable(c.DrainBands, func(i, j int) bool { return c.DrainBands[i].Turns < c.DrainBands[j].Turns })

	if _, err := c.CreatureOffsets(); err != nil {
		return err
	}
	return nil
}

// CreatureOffsets переводит AttackOffsets в таблицу по варианту.
func (c *Config) CreatureOffsets() (map[enums.CreatureKind][]domain.Position, error) {
	out := make(map[enums.CreatureKind][]domain.Position, len(c.AttackOffsets))
	for name, offs := range c.AttackOffsets {
		kind := enums.ParseCreatureKind(name)
		if kind == enums.CreatureUnknown {
			return nil, fmt.Errorf("attack_offsets: unknown creature %q", name)
		}
		if len(offs) == 0 {
			return nil, fmt.Errorf("attack_offsets: %s has no offsets", name)
		}
		out[kind] = offs
	}
	return out, nil
}

package config

import (
	"fmt"

	"github.com/decker502/ctale/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// BattleConfigPath 战斗调参文件（嵌入资源路径）
const BattleConfigPath = "assets/config/battle.yaml"

// BattleConfig 战斗数值配置
//
// 只包含数值，不包含对话或弹幕内容。
// 文件中缺省的字段保留 DefaultBattleConfig 中的默认值。
//
// 配置文件位置: assets/config/battle.yaml
type BattleConfig struct {
	Player PlayerStats `yaml:"player"`
	Boss   BossStats   `yaml:"boss"`

	// Food 每次遭遇战开始时的食物数量
	Food int `yaml:"food"`
	// HealAmount 吃掉食物恢复的生命值
	HealAmount int `yaml:"healAmount"`

	Timing BattleTiming `yaml:"timing"`
}

// PlayerStats 玩家数值
type PlayerStats struct {
	MaxHealth int `yaml:"maxHealth"`
	Strength  int `yaml:"strength"`
	// SoulSpeed 灵魂移动速度（60fps 下每帧像素）
	SoulSpeed int `yaml:"soulSpeed"`
}

// BossStats Boss 数值
type BossStats struct {
	MaxHealth int `yaml:"maxHealth"`
	// Damage 每次弹幕命中的基础伤害
	Damage int `yaml:"damage"`
	// InsultBonus 首次"嘲讽"后的伤害增量
	InsultBonus int `yaml:"insultBonus"`
	// ExplainBonus 首次"解释"后的伤害增量（负值表示降低）
	ExplainBonus int `yaml:"explainBonus"`
}

// BattleTiming 战斗计时参数（秒 / 像素）
type BattleTiming struct {
	MenuCooldown     float64 `yaml:"menuCooldown"`
	ApproachBlink    float64 `yaml:"approachBlink"`
	// ApproachStep / BarSpeed 60fps 下每帧像素
	ApproachStep     int     `yaml:"approachStep"`
	BarSpeed         int     `yaml:"barSpeed"`
	StrikeWindow     float64 `yaml:"strikeWindow"`
	SlashFrame       float64 `yaml:"slashFrame"`
	BoxAnimation     float64 `yaml:"boxAnimation"`
	DodgeDuration    float64 `yaml:"dodgeDuration"`
	PatternStart     float64 `yaml:"patternStart"`
	Invulnerability  float64 `yaml:"invulnerability"`
	VictoryFade      float64 `yaml:"victoryFade"`
	DeathScreen      float64 `yaml:"deathScreen"`
	EndingFade       float64 `yaml:"endingFade"`
	BossBarDrainRate float64 `yaml:"bossBarDrainRate"`
}

// DefaultBattleConfig 返回默认战斗配置
func DefaultBattleConfig() BattleConfig {
	return BattleConfig{
		Player: PlayerStats{MaxHealth: 20, Strength: 10, SoulSpeed: 2},
		Boss:   BossStats{MaxHealth: 200, Damage: 2, InsultBonus: 2, ExplainBonus: -1},
		Food:   4,
		// 加满
		HealAmount: 20,
		Timing: BattleTiming{
			MenuCooldown:     0.2,
			ApproachBlink:    0.5,
			ApproachStep:     5,
			BarSpeed:         14,
			StrikeWindow:     3.0,
			SlashFrame:       0.2,
			BoxAnimation:     0.8,
			DodgeDuration:    10.0,
			PatternStart:     0.5,
			Invulnerability:  1.0,
			VictoryFade:      5.0,
			DeathScreen:      2.0,
			EndingFade:       3.0,
			BossBarDrainRate: 120.0,
		},
	}
}

// ParseBattleConfig 解析 YAML 内容，缺省字段使用默认值
func ParseBattleConfig(data []byte) (BattleConfig, error) {
	cfg := DefaultBattleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBattleConfig(), fmt.Errorf("failed to parse battle config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultBattleConfig(), fmt.Errorf("invalid battle config: %w", err)
	}
	return cfg, nil
}

// LoadBattleConfig 从嵌入资源加载战斗配置
func LoadBattleConfig(path string) (BattleConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return DefaultBattleConfig(), fmt.Errorf("failed to read battle config: %w", err)
	}
	return ParseBattleConfig(data)
}

// Validate 验证配置有效性
func (c *BattleConfig) Validate() error {
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be positive, got %d", c.Player.MaxHealth)
	}
	if c.Boss.MaxHealth <= 0 {
		return fmt.Errorf("boss.maxHealth must be positive, got %d", c.Boss.MaxHealth)
	}
	if c.Food < 0 {
		return fmt.Errorf("food must be >= 0, got %d", c.Food)
	}
	if c.Timing.BarSpeed <= 0 {
		return fmt.Errorf("timing.barSpeed must be positive, got %d", c.Timing.BarSpeed)
	}
	if c.Timing.ApproachStep <= 0 {
		return fmt.Errorf("timing.approachStep must be positive, got %d", c.Timing.ApproachStep)
	}
	if c.Timing.BoxAnimation <= 0 || c.Timing.StrikeWindow <= 0 || c.Timing.DodgeDuration <= 0 {
		return fmt.Errorf("timing durations must be positive")
	}
	if c.Timing.PatternStart >= c.Timing.DodgeDuration {
		return fmt.Errorf("timing.patternStart (%.2f) must be < dodgeDuration (%.2f)",
			c.Timing.PatternStart, c.Timing.DodgeDuration)
	}
	return nil
}

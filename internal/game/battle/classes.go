package battle

// ClassDef is a playable archetype.
type ClassDef struct {
	Name      string
	Element   Element
	BaseStats Stats
	Skills    []Skill
}

// Class names.
const (
	ClassKnight = "knight"
	ClassMage   = "mage"
	ClassRanger = "ranger"
	ClassHealer = "healer"
)

// DefaultClasses returns the built-in class definitions.
func DefaultClasses() []ClassDef {
	return []ClassDef{
		{
			Name:      ClassKnight,
			Element:   ElementPhysical,
			BaseStats: Stats{HP: 120, Atk: 14, Mag: 4, Def: 12, Res: 8, Spd: 6},
			Skills: []Skill{
				{ID: "shield_bash", Name: "Shield Bash", Element: ElementPhysical, Power: 1.2, Cost: 5, Target: TargetEnemy},
				{ID: "fortify", Name: "Fortify", Element: ElementPhysical, Power: 0, Cost: 8, Target: TargetSelf, Effect: EffectBuffDef},
				{ID: "heavy_strike", Name: "Heavy Strike", Element: ElementPhysical, Power: 1.8, Cost: 12, Target: TargetEnemy},
			},
		},
		{
			Name:      ClassMage,
			Element:   ElementFire,
			BaseStats: Stats{HP: 80, Atk: 4, Mag: 16, Def: 5, Res: 12, Spd: 8},
			Skills: []Skill{
				{ID: "fireball", Name: "Fireball", Element: ElementFire, Power: 1.4, Cost: 6, Target: TargetEnemy},
				{ID: "flame_wave", Name: "Flame Wave", Element: ElementFire, Power: 1.0, Cost: 4, Target: TargetEnemy},
				{ID: "inferno", Name: "Inferno", Element: ElementFire, Power: 2.0, Cost: 15, Target: TargetEnemy},
			},
		},
		{
			Name:      ClassRanger,
			Element:   ElementWind,
			BaseStats: Stats{HP: 90, Atk: 12, Mag: 6, Def: 7, Res: 7, Spd: 14},
			Skills: []Skill{
				{ID: "quick_shot", Name: "Quick Shot", Element: ElementWind, Power: 1.1, Cost: 4, Target: TargetEnemy},
				{ID: "wind_slash", Name: "Wind Slash", Element: ElementWind, Power: 1.5, Cost: 8, Target: TargetEnemy},
				{ID: "evasion", Name: "Evasion", Element: ElementWind, Power: 0, Cost: 6, Target: TargetSelf, Effect: EffectBuffDef},
			},
		},
		{
			Name:      ClassHealer,
			Element:   ElementWater,
			BaseStats: Stats{HP: 100, Atk: 5, Mag: 13, Def: 8, Res: 14, Spd: 7},
			Skills: []Skill{
				{ID: "heal", Name: "Heal", Element: ElementWater, Power: 1.5, Cost: 8, Target: TargetSelf, Effect: EffectHeal},
				{ID: "water_bolt", Name: "Water Bolt", Element: ElementWater, Power: 1.3, Cost: 6, Target: TargetEnemy},
				{ID: "tidal_wave", Name: "Tidal Wave", Element: ElementWater, Power: 1.8, Cost: 14, Target: TargetEnemy},
			},
		},
	}
}

package battle

import (
	"testing"
)

func TestElementMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		attacker Element
		defender Element
		expected float64
	}{
		{"fire beats wind", ElementFire, ElementWind, 1.5},
		{"wind beats water", ElementWind, ElementWater, 1.5},
		{"water beats fire", ElementWater, ElementFire, 1.5},
		{"wind resists fire", ElementWind, ElementFire, 0.75},
		{"water resists wind", ElementWater, ElementWind, 0.75},
		{"fire resists water", ElementFire, ElementWater, 0.75},
		{"physical attacker", ElementPhysical, ElementFire, 1.0},
		{"physical defender", ElementWater, ElementPhysical, 1.0},
		{"physical mirror", ElementPhysical, ElementPhysical, 1.0},
		{"same element fire", ElementFire, ElementFire, 1.0},
		{"same element water", ElementWater, ElementWater, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ElementMultiplier(tt.attacker, tt.defender)
			if result != tt.expected {
				t.Errorf("ElementMultiplier(%s, %s) = %v, want %v", tt.attacker, tt.defender, result, tt.expected)
			}
		})
	}
}

func TestCalcDamage(t *testing.T) {
	strong := Stats{HP: 100, Atk: 20, Mag: 18, Def: 10, Res: 6, Spd: 5}
	wall := Stats{HP: 100, Atk: 1, Mag: 1, Def: 60, Res: 60, Spd: 1}

	tests := []struct {
		name       string
		attacker   Stats
		defender   Stats
		power      float64
		magic      bool
		multiplier float64
		expected   int
	}{
		{"physical neutral", strong, strong, 1.0, false, 1.0, 15},
		{"magic neutral", strong, strong, 1.0, true, 1.0, 15},
		{"physical advantage", strong, strong, 1.0, false, 1.5, 23},
		{"magic resisted", strong, strong, 2.0, true, 0.75, 25},
		{"floored at one", wall, wall, 1.0, false, 1.0, 1},
		{"floored then resisted rounds up", wall, wall, 1.0, true, 0.75, 1},
		{"floored then amplified", wall, wall, 1.0, false, 1.5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalcDamage(tt.attacker, tt.defender, tt.power, tt.magic, tt.multiplier)
			if result != tt.expected {
				t.Errorf("CalcDamage() = %d, want %d", result, tt.expected)
			}
		})
	}
}

func TestCalcHealing(t *testing.T) {
	if got := CalcHealing(Stats{Mag: 13}, 1.5); got != 20 {
		t.Errorf("CalcHealing(mag=13, 1.5) = %d, want 20", got)
	}
	if got := CalcHealing(Stats{Mag: 10}, 0); got != 0 {
		t.Errorf("CalcHealing(mag=10, 0) = %d, want 0", got)
	}
}

func TestComputeStats(t *testing.T) {
	knight := DefaultClasses()[0]

	tests := []struct {
		name      string
		level     int
		equipment []Stats
		expected  Stats
	}{
		{"level one base", 1, nil, Stats{HP: 120, Atk: 14, Mag: 4, Def: 12, Res: 8, Spd: 6}},
		{"level four scaling", 4, nil, Stats{HP: 135, Atk: 17, Mag: 7, Def: 15, Res: 11, Spd: 7}},
		{"equipment bonuses", 1, []Stats{{Atk: 3}, {Def: 5, HP: 10}}, Stats{HP: 130, Atk: 17, Mag: 4, Def: 17, Res: 8, Spd: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeStats(knight, tt.level, tt.equipment)
			if result != tt.expected {
				t.Errorf("ComputeStats() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

package battle

import "math"

// advantages maps each element to the element it beats.
var advantages = map[Element]Element{
	ElementFire:  ElementWind,
	ElementWind:  ElementWater,
	ElementWater: ElementFire,
}

// ElementMultiplier returns the attack multiplier of attacker against defender.
// Physical on either side is always neutral.
func ElementMultiplier(attacker, defender Element) float64 {
	if attacker == ElementPhysical || defender == ElementPhysical {
		return 1.0
	}
	if advantages[attacker] == defender {
		return 1.5
	}
	if advantages[defender] == attacker {
		return 0.75
	}
	return 1.0
}

// RawDamage is the attack-versus-defense term, floored at 1.
func RawDamage(attacker, defender Stats, power float64, magic bool) float64 {
	atk, def := attacker.Atk, defender.Def
	if magic {
		atk, def = attacker.Mag, defender.Res
	}
	return math.Max(1, float64(atk)*power-float64(def)*0.5)
}

// CalcDamage applies the element multiplier to the raw term and rounds to the nearest integer.
// The result can be 0 when a heavily resisted hit rounds down; callers clamp hp at 0.
func CalcDamage(attacker, defender Stats, power float64, magic bool, multiplier float64) int {
	return int(math.Round(RawDamage(attacker, defender, power, magic) * multiplier))
}

// CalcHealing is the heal amount of a healing skill before the max-hp cap.
func CalcHealing(caster Stats, power float64) int {
	return int(math.Round(float64(caster.Mag) * power))
}

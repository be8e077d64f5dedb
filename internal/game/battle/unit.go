package battle

// Loadout is everything needed to derive a Unit from a persisted avatar.
type Loadout struct {
	AvatarID  string
	Name      string
	Level     int
	Equipment []Stats // stat bonuses of equipped items
}

// ComputeStats applies level scaling and equipment bonuses to the class base stats.
func ComputeStats(class ClassDef, level int, equipment []Stats) Stats {
	bonus := level - 1
	if bonus < 0 {
		bonus = 0
	}
	base := class.BaseStats
	stats := Stats{
		HP:  base.HP + bonus*5,
		Atk: base.Atk + bonus,
		Mag: base.Mag + bonus,
		Def: base.Def + bonus,
		Res: base.Res + bonus,
		Spd: base.Spd + bonus/2,
	}
	for _, eq := range equipment {
		stats = stats.Add(eq)
	}
	return stats
}

// NewUnit builds a full-health combat unit.
func NewUnit(class ClassDef, l Loadout) Unit {
	stats := ComputeStats(class, l.Level, l.Equipment)
	return Unit{
		AvatarID:  l.AvatarID,
		Name:      l.Name,
		Class:     class.Name,
		Level:     l.Level,
		Stats:     stats,
		CurrentHP: stats.HP,
		CurrentMP: MaxMP,
		Skills:    class.Skills,
		Element:   class.Element,
	}
}

package dex

import (
	"sort"

	"dex-viewer/core/catalog"
)

// Matchups lists the attacking types that hit a type combination harder,
// weaker or not at all.
type Matchups struct {
	WeakTo      []string `json:"weakTo"`
	ResistantTo []string `json:"resistantTo"`
	ImmuneTo    []string `json:"immuneTo"`
}

// Multipliers combines the defensive chart of every defending type into one
// damage multiplier per attacking type. Attacking types absent from the
// result deal normal damage.
func Multipliers(types *catalog.TypeIndex, defending []string) map[string]float64 {
	mult := make(map[string]float64)
	apply := func(attackers []string, factor float64) {
		for _, a := range attackers {
			v, ok := mult[a]
			if !ok {
				v = 1
			}
			mult[a] = v * factor
		}
	}

	for _, name := range defending {
		t, ok := types.GetByInternalName(catalog.StripControl(name))
		if !ok {
			continue
		}
		apply(t.Weaknesses, 2)
		apply(t.Resistances, 0.5)
		apply(t.Immunities, 0)
	}
	return mult
}

// ComputeMatchups classifies the multipliers of a type combination.
func ComputeMatchups(types *catalog.TypeIndex, defending []string) Matchups {
	m := Matchups{WeakTo: []string{}, ResistantTo: []string{}, ImmuneTo: []string{}}
	for attacker, v := range Multipliers(types, defending) {
		switch {
		case v == 0:
			m.ImmuneTo = append(m.ImmuneTo, attacker)
		case v > 1:
			m.WeakTo = append(m.WeakTo, attacker)
		case v < 1:
			m.ResistantTo = append(m.ResistantTo, attacker)
		}
	}
	sort.Strings(m.WeakTo)
	sort.Strings(m.ResistantTo)
	sort.Strings(m.ImmuneTo)
	return m
}

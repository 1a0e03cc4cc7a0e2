package convert

import (
	"dex-viewer/core/catalog"
	"dex-viewer/core/utils"
)

// ParsePokemon reads pokemon.txt.
func ParsePokemon(content string) *catalog.PokemonIndex {
	out := newOrdered[int, catalog.Pokemon]()

	for _, b := range parseBlocks(content) {
		p := catalog.Pokemon{
			ID:            b.id,
			Types:         []string{},
			Abilities:     []string{},
			Moves:         []catalog.LevelMove{},
			EggMoves:      []string{},
			Evolutions:    []catalog.Evolution{},
			EffortPoints:  []int{},
			Compatibility: []string{},
		}
		for _, f := range b.fields {
			if f.value == "" {
				continue
			}
			applyPokemonField(&p, f)
		}
		out.put(p.ID, p)
	}

	return toIndex(out, func(p catalog.Pokemon) string { return p.InternalName })
}

func applyPokemonField(p *catalog.Pokemon, f field) {
	switch f.key {
	case "Name":
		p.Name = f.value
	case "InternalName":
		p.InternalName = f.value
	case "Type1", "Type2":
		p.Types = append(p.Types, f.value)
	case "BaseStats":
		s := ints(f.value)
		for len(s) < 6 {
			s = append(s, 0)
		}
		p.Stats = catalog.Stats{HP: s[0], Attack: s[1], Defense: s[2], Speed: s[3], SpAttack: s[4], SpDefense: s[5]}
	case "Abilities":
		p.Abilities = utils.SplitList(f.value)
	case "HiddenAbility":
		p.HiddenAbility = f.value
	case "Moves":
		parts := utils.SplitList(f.value)
		for i := 0; i+1 < len(parts); i += 2 {
			p.Moves = append(p.Moves, catalog.LevelMove{Level: atoi(parts[i]), Move: parts[i+1]})
		}
	case "EggMoves":
		p.EggMoves = utils.SplitList(f.value)
	case "Evolutions":
		p.Evolutions = parseEvolutions(f.value)
	case "Height":
		p.Height = utils.ToFloat(f.value)
	case "Weight":
		p.Weight = utils.ToFloat(f.value)
	case "Color":
		p.Color = f.value
	case "Habitat":
		p.Habitat = f.value
	case "Pokedex":
		p.Pokedex = f.value
	case "GenderRate":
		p.GenderRate = f.value
	case "GrowthRate":
		p.GrowthRate = f.value
	case "BaseEXP":
		p.BaseExp = atoi(f.value)
	case "EffortPoints":
		p.EffortPoints = ints(f.value)
	case "Rareness":
		p.Rareness = atoi(f.value)
	case "Happiness":
		p.Happiness = atoi(f.value)
	case "Compatibility":
		p.Compatibility = utils.SplitList(f.value)
	case "StepsToHatch":
		p.StepsToHatch = atoi(f.value)
	case "RegionalNumbers":
		p.RegionalNumbers = f.value
	case "Kind":
		p.Kind = f.value
	case "Shape":
		p.Shape = atoi(f.value)
	}
}

// parseEvolutions reads species,method,parameter triples. The parameter
// may be empty (e.g. Happiness evolutions).
func parseEvolutions(value string) []catalog.Evolution {
	evos := []catalog.Evolution{}
	parts := splitRaw(value)
	for i := 0; i < len(parts); i += 3 {
		if parts[i] == "" {
			continue
		}
		evo := catalog.Evolution{Species: parts[i]}
		if i+1 < len(parts) {
			evo.Method = parts[i+1]
		}
		if i+2 < len(parts) {
			evo.Parameter = parts[i+2]
		}
		evos = append(evos, evo)
	}
	return evos
}

func ints(value string) []int {
	parts := utils.SplitList(value)
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		out = append(out, atoi(part))
	}
	return out
}

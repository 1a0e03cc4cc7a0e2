package catalog

import (
	"strconv"
	"strings"
)

// SearchPokemon matches loaded Pokémon against q. A numeric query is first
// tried as an exact id; otherwise (or when no such id exists) name, internal
// name and types are matched case-insensitively as substrings.
func (c *Catalog) SearchPokemon(q string) []Pokemon {
	idx, _ := lookup[PokemonIndex](c, KindPokemon)
	return SearchPokemonIn(idx, q)
}

// SearchMoves matches loaded moves by name, internal name or type.
func (c *Catalog) SearchMoves(q string) []Move {
	idx, _ := lookup[MoveIndex](c, KindMoves)
	return SearchMovesIn(idx, q)
}

// SearchItems matches loaded items by name, internal name or description.
func (c *Catalog) SearchItems(q string) []Item {
	idx, _ := lookup[ItemIndex](c, KindItems)
	return SearchItemsIn(idx, q)
}

// SearchTrainers matches loaded trainers by name or type.
func (c *Catalog) SearchTrainers(q string) []Trainer {
	idx, _ := lookup[TrainerIndex](c, KindTrainers)
	return SearchTrainersIn(idx, q)
}

// SearchPokemonIn is SearchPokemon over an explicit index.
func SearchPokemonIn(idx *PokemonIndex, q string) []Pokemon {
	q = strings.TrimSpace(q)
	if id, err := strconv.Atoi(q); err == nil {
		if p, ok := idx.Get(id); ok {
			return []Pokemon{p}
		}
	}

	needle := strings.ToLower(q)
	return filter(idx, func(p Pokemon) bool {
		return containsFold(p.Name, needle) ||
			containsFold(p.InternalName, needle) ||
			anyContainsFold(p.Types, needle)
	})
}

// SearchMovesIn is SearchMoves over an explicit index.
func SearchMovesIn(idx *MoveIndex, q string) []Move {
	needle := strings.ToLower(strings.TrimSpace(q))
	return filter(idx, func(m Move) bool {
		return containsFold(m.Name, needle) ||
			containsFold(m.InternalName, needle) ||
			containsFold(m.Type, needle)
	})
}

// SearchItemsIn is SearchItems over an explicit index.
func SearchItemsIn(idx *ItemIndex, q string) []Item {
	needle := strings.ToLower(strings.TrimSpace(q))
	return filter(idx, func(i Item) bool {
		return containsFold(i.Name, needle) ||
			containsFold(i.InternalName, needle) ||
			containsFold(i.Description, needle)
	})
}

// SearchTrainersIn is SearchTrainers over an explicit index.
func SearchTrainersIn(idx *TrainerIndex, q string) []Trainer {
	out := []Trainer{}
	if idx == nil {
		return out
	}
	needle := strings.ToLower(strings.TrimSpace(q))
	for _, t := range idx.List {
		if containsFold(t.Name, needle) || containsFold(t.Type, needle) {
			out = append(out, t)
		}
	}
	return out
}

// containsFold expects needle already lower-cased.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}

func anyContainsFold(values []string, needle string) bool {
	for _, v := range values {
		if containsFold(v, needle) {
			return true
		}
	}
	return false
}

package catalog

// PokemonByID returns a loaded Pokémon by national id.
func (c *Catalog) PokemonByID(id int) (Pokemon, bool) {
	idx, _ := lookup[PokemonIndex](c, KindPokemon)
	return idx.Get(id)
}

// PokemonByInternalName returns a loaded Pokémon by internal name (e.g. "CHARMANDER").
func (c *Catalog) PokemonByInternalName(name string) (Pokemon, bool) {
	idx, _ := lookup[PokemonIndex](c, KindPokemon)
	return idx.GetByInternalName(name)
}

// MoveByID returns a loaded move by id.
func (c *Catalog) MoveByID(id int) (Move, bool) {
	idx, _ := lookup[MoveIndex](c, KindMoves)
	return idx.Get(id)
}

// MoveByInternalName returns a loaded move by internal name.
func (c *Catalog) MoveByInternalName(name string) (Move, bool) {
	idx, _ := lookup[MoveIndex](c, KindMoves)
	return idx.GetByInternalName(name)
}

// ItemByID returns a loaded item by id.
func (c *Catalog) ItemByID(id int) (Item, bool) {
	idx, _ := lookup[ItemIndex](c, KindItems)
	return idx.Get(id)
}

// ItemByInternalName returns a loaded item by internal name.
func (c *Catalog) ItemByInternalName(name string) (Item, bool) {
	idx, _ := lookup[ItemIndex](c, KindItems)
	return idx.GetByInternalName(name)
}

// TrainerByID returns a loaded trainer by its sanitized id.
func (c *Catalog) TrainerByID(id string) (Trainer, bool) {
	idx, ok := lookup[TrainerIndex](c, KindTrainers)
	if !ok || idx.ByID == nil {
		return Trainer{}, false
	}
	t, ok := idx.ByID[id]
	return t, ok
}

// TrainersByType returns the loaded trainers of one trainer type in source order.
func (c *Catalog) TrainersByType(trainerType string) []Trainer {
	idx, ok := lookup[TrainerIndex](c, KindTrainers)
	if !ok {
		return []Trainer{}
	}
	return TrainersOfType(idx, trainerType)
}

// TrainersOfType resolves ByType of idx.
func TrainersOfType(idx *TrainerIndex, trainerType string) []Trainer {
	out := []Trainer{}
	if idx == nil {
		return out
	}
	for _, id := range idx.ByType[trainerType] {
		if t, ok := idx.ByID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// TrainerTypeByID returns a loaded trainer type (e.g. "YOUNGSTER").
func (c *Catalog) TrainerTypeByID(id string) (TrainerType, bool) {
	idx, _ := lookup[TrainerTypeIndex](c, KindTrainerTypes)
	return idx.Get(id)
}

// EncounterByMapID returns the loaded encounters of a map.
func (c *Catalog) EncounterByMapID(mapID int) (Encounter, bool) {
	idx, _ := lookup[EncounterIndex](c, KindEncounters)
	return idx.Get(mapID)
}

// TypeByID returns a loaded type by id.
func (c *Catalog) TypeByID(id int) (Type, bool) {
	idx, _ := lookup[TypeIndex](c, KindTypes)
	return idx.Get(id)
}

// TypeByInternalName returns a loaded type by internal name (e.g. "FIRE").
func (c *Catalog) TypeByInternalName(name string) (Type, bool) {
	idx, _ := lookup[TypeIndex](c, KindTypes)
	return idx.GetByInternalName(name)
}

// AbilityByID returns a loaded ability by id.
func (c *Catalog) AbilityByID(id int) (Ability, bool) {
	idx, _ := lookup[AbilityIndex](c, KindAbilities)
	return idx.Get(id)
}

// AbilityByInternalName returns a loaded ability by internal name.
func (c *Catalog) AbilityByInternalName(name string) (Ability, bool) {
	idx, _ := lookup[AbilityIndex](c, KindAbilities)
	return idx.GetByInternalName(name)
}

// Tournament returns a loaded tournament roster.
func (c *Catalog) Tournament(name string) (*TournamentIndex, bool) {
	return lookup[TournamentIndex](c, name)
}

// TypeNames returns the internal names of the loaded types in source order.
func (c *Catalog) TypeNames() []string {
	out := []string{}
	if idx, ok := lookup[TypeIndex](c, KindTypes); ok {
		for _, t := range idx.List {
			out = append(out, t.InternalName)
		}
	}
	return out
}

// AbilityNames returns the internal names of the loaded abilities in source order.
func (c *Catalog) AbilityNames() []string {
	out := []string{}
	if idx, ok := lookup[AbilityIndex](c, KindAbilities); ok {
		for _, a := range idx.List {
			out = append(out, a.InternalName)
		}
	}
	return out
}

// MovesByType returns the loaded moves of an exact type (e.g. "FIRE").
func (c *Catalog) MovesByType(moveType string) []Move {
	idx, _ := lookup[MoveIndex](c, KindMoves)
	return filter(idx, func(m Move) bool { return m.Type == moveType })
}

// MovesByCategory returns the loaded moves of an exact category (Physical, Special, Status).
func (c *Catalog) MovesByCategory(category string) []Move {
	idx, _ := lookup[MoveIndex](c, KindMoves)
	return filter(idx, func(m Move) bool { return m.Category == category })
}

// ItemsByPocket returns the loaded items of one bag pocket.
func (c *Catalog) ItemsByPocket(pocket int) []Item {
	idx, _ := lookup[ItemIndex](c, KindItems)
	return filter(idx, func(i Item) bool { return i.Pocket == pocket })
}

// DataStats holds the record count of every core dataset; unloaded kinds count 0.
type DataStats struct {
	Pokemon      int `json:"pokemon"`
	Moves        int `json:"moves"`
	Items        int `json:"items"`
	Trainers     int `json:"trainers"`
	TrainerTypes int `json:"trainerTypes"`
	Encounters   int `json:"encounters"`
	Types        int `json:"types"`
	Abilities    int `json:"abilities"`
}

// Stats returns the record counts of the loaded datasets.
func (c *Catalog) Stats() DataStats {
	var s DataStats
	if idx, ok := lookup[PokemonIndex](c, KindPokemon); ok {
		s.Pokemon = idx.Len()
	}
	if idx, ok := lookup[MoveIndex](c, KindMoves); ok {
		s.Moves = idx.Len()
	}
	if idx, ok := lookup[ItemIndex](c, KindItems); ok {
		s.Items = idx.Len()
	}
	if idx, ok := lookup[TrainerIndex](c, KindTrainers); ok {
		s.Trainers = idx.Len()
	}
	if idx, ok := lookup[TrainerTypeIndex](c, KindTrainerTypes); ok {
		s.TrainerTypes = idx.Len()
	}
	if idx, ok := lookup[EncounterIndex](c, KindEncounters); ok {
		s.Encounters = idx.Len()
	}
	if idx, ok := lookup[TypeIndex](c, KindTypes); ok {
		s.Types = idx.Len()
	}
	if idx, ok := lookup[AbilityIndex](c, KindAbilities); ok {
		s.Abilities = idx.Len()
	}
	return s
}

func filter[K comparable, T any](idx *Index[K, T], keep func(T) bool) []T {
	out := []T{}
	if idx == nil {
		return out
	}
	for _, v := range idx.List {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

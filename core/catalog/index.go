package catalog

import "fmt"

// Index is the catalog entry of one entity kind, exactly as the converter
// writes it: records by primary key, an optional internal-name index and
// the records in source order.
type Index[K comparable, T any] struct {
	ByID           map[K]T      `json:"byId"`
	ByInternalName map[string]K `json:"byInternalName,omitempty"`
	List           []T          `json:"list"`
}

// Index returns ByID. Route loaders written against the bundled loader
// address records through "index"; both names resolve to the same map.
func (i *Index[K, T]) Index() map[K]T {
	return i.ByID
}

// Get returns the record with the given key.
func (i *Index[K, T]) Get(id K) (T, bool) {
	var zero T
	if i == nil || i.ByID == nil {
		return zero, false
	}
	v, ok := i.ByID[id]
	return v, ok
}

// GetByInternalName resolves name through ByInternalName, then ByID.
func (i *Index[K, T]) GetByInternalName(name string) (T, bool) {
	var zero T
	if i == nil || i.ByInternalName == nil {
		return zero, false
	}
	id, ok := i.ByInternalName[name]
	if !ok {
		return zero, false
	}
	return i.Get(id)
}

// Len returns the number of records in source order.
func (i *Index[K, T]) Len() int {
	if i == nil {
		return 0
	}
	return len(i.List)
}

// PokemonIndex is the catalog entry for pokemon.json.
type PokemonIndex = Index[int, Pokemon]

// MoveIndex is the catalog entry for moves.json.
type MoveIndex = Index[int, Move]

// ItemIndex is the catalog entry for items.json.
type ItemIndex = Index[int, Item]

// EncounterIndex is the catalog entry for encounters.json, keyed by map id.
type EncounterIndex = Index[int, Encounter]

// TypeIndex is the catalog entry for types.json.
type TypeIndex = Index[int, Type]

// AbilityIndex is the catalog entry for abilities.json.
type AbilityIndex = Index[int, Ability]

// TrainerTypeIndex is the catalog entry for trainertypes.json.
type TrainerTypeIndex = Index[string, TrainerType]

// TournamentIndex is the catalog entry for one tournament roster.
type TournamentIndex = Index[int, TournamentTrainer]

// TrainerIndex is the catalog entry for trainers.json. ByType maps a trainer
// type to the ids of its trainers in source order.
type TrainerIndex struct {
	ByID   map[string]Trainer  `json:"byId"`
	ByType map[string][]string `json:"byType,omitempty"`
	List   []Trainer           `json:"list"`
}

// Index returns ByID.
func (i *TrainerIndex) Index() map[string]Trainer {
	return i.ByID
}

// Len returns the number of trainers.
func (i *TrainerIndex) Len() int {
	if i == nil {
		return 0
	}
	return len(i.List)
}

// CheckIndex verifies the structural invariants of an index: every internal
// name resolves to a record carrying that internal name, and List and ByID
// have the same size. It returns one message per violation.
func CheckIndex[K comparable, T any](idx *Index[K, T], internalName func(T) string) []string {
	if idx == nil {
		return nil
	}

	var problems []string
	if len(idx.List) != len(idx.ByID) {
		problems = append(problems, fmt.Sprintf("list has %d records, byId has %d", len(idx.List), len(idx.ByID)))
	}

	if internalName == nil {
		return problems
	}
	for name, id := range idx.ByInternalName {
		rec, ok := idx.ByID[id]
		if !ok {
			problems = append(problems, fmt.Sprintf("internal name %s points to missing id %v", name, id))
			continue
		}
		if got := internalName(rec); got != name {
			problems = append(problems, fmt.Sprintf("internal name %s points to id %v named %s", name, id, got))
		}
	}
	return problems
}

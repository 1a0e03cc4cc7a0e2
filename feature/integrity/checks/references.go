package checks

import (
	"fmt"
	"sort"

	"dex-viewer/core/catalog"
)

// Datasets holds the decoded indexes a reference check walks. Nil indexes
// are treated as empty.
type Datasets struct {
	Pokemon      *catalog.PokemonIndex
	Moves        *catalog.MoveIndex
	Items        *catalog.ItemIndex
	Trainers     *catalog.TrainerIndex
	TrainerTypes *catalog.TrainerTypeIndex
	Encounters   *catalog.EncounterIndex
	Types        *catalog.TypeIndex
	Abilities    *catalog.AbilityIndex
}

// ReferenceReport lists the broken cross references per dataset.
type ReferenceReport struct {
	Matched  bool                `json:"matched"`
	Checked  map[string]int      `json:"checked"`
	Problems map[string][]string `json:"problems"`
}

type refs struct {
	report *ReferenceReport
}

func (r refs) add(kind, format string, args ...any) {
	r.report.Problems[kind] = append(r.report.Problems[kind], fmt.Sprintf(format, args...))
}

func has[K comparable, T any](idx *catalog.Index[K, T], name string) bool {
	if idx == nil {
		return false
	}
	_, ok := idx.ByInternalName[name]
	return ok
}

// CheckReferences verifies that every internal name a record points to
// resolves in the dataset it names, and that each index is consistent.
func CheckReferences(d Datasets) *ReferenceReport {
	report := &ReferenceReport{
		Checked:  make(map[string]int),
		Problems: make(map[string][]string),
	}
	r := refs{report: report}

	checkIndexes(r, d)

	if d.Pokemon != nil {
		for _, p := range d.Pokemon.List {
			report.Checked[catalog.KindPokemon]++
			for _, t := range p.Types {
				if !has(d.Types, t) {
					r.add(catalog.KindPokemon, "%s: unknown type %s", p.InternalName, t)
				}
			}
			for _, a := range p.Abilities {
				if !has(d.Abilities, a) {
					r.add(catalog.KindPokemon, "%s: unknown ability %s", p.InternalName, a)
				}
			}
			if p.HiddenAbility != "" && !has(d.Abilities, p.HiddenAbility) {
				r.add(catalog.KindPokemon, "%s: unknown hidden ability %s", p.InternalName, p.HiddenAbility)
			}
			for _, lm := range p.Moves {
				if !has(d.Moves, lm.Move) {
					r.add(catalog.KindPokemon, "%s: unknown level move %s", p.InternalName, lm.Move)
				}
			}
			for _, m := range p.EggMoves {
				if !has(d.Moves, m) {
					r.add(catalog.KindPokemon, "%s: unknown egg move %s", p.InternalName, m)
				}
			}
			for _, evo := range p.Evolutions {
				if !has(d.Pokemon, evo.Species) {
					r.add(catalog.KindPokemon, "%s: evolves into unknown species %s", p.InternalName, evo.Species)
				}
			}
		}
	}

	if d.Moves != nil {
		for _, m := range d.Moves.List {
			report.Checked[catalog.KindMoves]++
			if !has(d.Types, m.Type) {
				r.add(catalog.KindMoves, "%s: unknown type %s", m.InternalName, m.Type)
			}
		}
	}

	if d.Items != nil {
		for _, it := range d.Items.List {
			report.Checked[catalog.KindItems]++
			if it.Machine != "" && !has(d.Moves, it.Machine) {
				r.add(catalog.KindItems, "%s: teaches unknown move %s", it.InternalName, it.Machine)
			}
		}
	}

	if d.Trainers != nil {
		for _, t := range d.Trainers.List {
			report.Checked[catalog.KindTrainers]++
			if d.TrainerTypes == nil {
				r.add(catalog.KindTrainers, "%s: unknown trainer type %s", t.ID, t.Type)
			} else if _, ok := d.TrainerTypes.ByID[t.Type]; !ok {
				r.add(catalog.KindTrainers, "%s: unknown trainer type %s", t.ID, t.Type)
			}
			for _, it := range t.Items {
				if !has(d.Items, it) {
					r.add(catalog.KindTrainers, "%s: unknown item %s", t.ID, it)
				}
			}
			for n, member := range t.Party {
				if !has(d.Pokemon, member.Species) {
					r.add(catalog.KindTrainers, "%s: party %d has unknown species %s", t.ID, n, member.Species)
				}
				if member.Item != "" && !has(d.Items, member.Item) {
					r.add(catalog.KindTrainers, "%s: party %d holds unknown item %s", t.ID, n, member.Item)
				}
				for _, m := range member.Moves {
					if !has(d.Moves, m) {
						r.add(catalog.KindTrainers, "%s: party %d knows unknown move %s", t.ID, n, m)
					}
				}
				if member.Ability != "" && !has(d.Abilities, member.Ability) {
					r.add(catalog.KindTrainers, "%s: party %d has unknown ability %s", t.ID, n, member.Ability)
				}
			}
		}
	}

	if d.Encounters != nil {
		for _, e := range d.Encounters.List {
			report.Checked[catalog.KindEncounters]++
			for _, table := range e.Encounters {
				for _, slot := range table.Pokemon {
					if !has(d.Pokemon, slot.Species) {
						r.add(catalog.KindEncounters, "map %d: %s slot has unknown species %s", e.MapID, table.Type, slot.Species)
					}
				}
			}
		}
	}

	for kind := range report.Problems {
		sort.Strings(report.Problems[kind])
	}
	report.Matched = len(report.Problems) == 0
	return report
}

func checkIndexes(r refs, d Datasets) {
	indexProblems := func(kind string, problems []string) {
		for _, p := range problems {
			r.add(kind, "index: %s", p)
		}
	}

	indexProblems(catalog.KindPokemon, catalog.CheckIndex(d.Pokemon, func(p catalog.Pokemon) string { return p.InternalName }))
	indexProblems(catalog.KindMoves, catalog.CheckIndex(d.Moves, func(m catalog.Move) string { return m.InternalName }))
	indexProblems(catalog.KindItems, catalog.CheckIndex(d.Items, func(i catalog.Item) string { return i.InternalName }))
	indexProblems(catalog.KindTypes, catalog.CheckIndex(d.Types, func(t catalog.Type) string { return t.InternalName }))
	indexProblems(catalog.KindAbilities, catalog.CheckIndex(d.Abilities, func(a catalog.Ability) string { return a.InternalName }))
	indexProblems(catalog.KindEncounters, catalog.CheckIndex[int, catalog.Encounter](d.Encounters, nil))
	indexProblems(catalog.KindTrainerTypes, catalog.CheckIndex[string, catalog.TrainerType](d.TrainerTypes, nil))

	if d.Trainers == nil {
		return
	}
	if len(d.Trainers.List) != len(d.Trainers.ByID) {
		r.add(catalog.KindTrainers, "index: list has %d records, byId has %d", len(d.Trainers.List), len(d.Trainers.ByID))
	}
	for id, t := range d.Trainers.ByID {
		if t.ID != id {
			r.add(catalog.KindTrainers, "index: byId key %q holds trainer %q", id, t.ID)
		}
	}
	for typ, ids := range d.Trainers.ByType {
		for _, id := range ids {
			t, ok := d.Trainers.ByID[id]
			if !ok {
				r.add(catalog.KindTrainers, "index: byType %s lists missing trainer %q", typ, id)
				continue
			}
			if t.Type != typ {
				r.add(catalog.KindTrainers, "index: byType %s lists trainer %q of type %s", typ, id, t.Type)
			}
		}
	}
}

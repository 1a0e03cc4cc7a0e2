package catalog

import (
	"sort"
	"strings"
	"unicode"
)

// StripControl removes every control character (CR, LF, TAB, ...) from s.
func StripControl(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeTrainers rewrites a decoded trainer index so that no id, type or
// name carries control characters. ByID is rebuilt with the clean keys, List
// keeps source order and ByType is derived from the clean list. Running it
// on clean data changes nothing.
func NormalizeTrainers(idx *TrainerIndex) {
	if idx == nil {
		return
	}

	raw := idx.List
	if len(raw) == 0 && len(idx.ByID) > 0 {
		raw = trainersInKeyOrder(idx.ByID)
	} else if len(idx.ByID) > len(raw) {
		// Records only present in byId are appended after the list order.
		seen := make(map[string]struct{}, len(raw))
		for _, t := range raw {
			seen[t.ID] = struct{}{}
		}
		extra := make(map[string]Trainer)
		for key, t := range idx.ByID {
			if _, ok := seen[key]; ok {
				continue
			}
			if _, ok := seen[t.ID]; ok {
				continue
			}
			extra[key] = t
		}
		raw = append(append([]Trainer(nil), raw...), trainersInKeyOrder(extra)...)
	}

	byID := make(map[string]Trainer, len(raw))
	byType := make(map[string][]string)
	list := make([]Trainer, 0, len(raw))

	for _, t := range raw {
		clean := t
		clean.ID = StripControl(t.ID)
		clean.Type = StripControl(t.Type)
		clean.Name = StripControl(t.Name)

		if _, dup := byID[clean.ID]; dup {
			continue
		}
		byID[clean.ID] = clean
		list = append(list, clean)
		byType[clean.Type] = append(byType[clean.Type], clean.ID)
	}

	idx.ByID = byID
	idx.ByType = byType
	idx.List = list
}

// trainersInKeyOrder returns the records of m sorted by key, with the key
// used as id when a record carries none.
func trainersInKeyOrder(m map[string]Trainer) []Trainer {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Trainer, 0, len(keys))
	for _, k := range keys {
		t := m[k]
		if t.ID == "" {
			t.ID = k
		}
		out = append(out, t)
	}
	return out
}

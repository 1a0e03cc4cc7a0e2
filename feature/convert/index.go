package convert

import (
	"dex-viewer/core/catalog"
	"dex-viewer/core/utils"
)

func atoi(s string) int {
	return utils.ToInt(s)
}

// ordered collects records by key. A repeated key replaces the earlier
// record but keeps its position.
type ordered[K comparable, T any] struct {
	keys []K
	byID map[K]T
}

func newOrdered[K comparable, T any]() *ordered[K, T] {
	return &ordered[K, T]{byID: make(map[K]T)}
}

func (o *ordered[K, T]) put(key K, v T) {
	if _, ok := o.byID[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.byID[key] = v
}

func (o *ordered[K, T]) len() int {
	return len(o.keys)
}

func (o *ordered[K, T]) list() []T {
	out := make([]T, 0, len(o.keys))
	for _, k := range o.keys {
		out = append(out, o.byID[k])
	}
	return out
}

// toIndex builds the catalog entry. internalName is nil for kinds without
// a byInternalName index; records with an empty internal name are not indexed.
func toIndex[K comparable, T any](o *ordered[K, T], internalName func(T) string) *catalog.Index[K, T] {
	idx := &catalog.Index[K, T]{
		ByID: o.byID,
		List: o.list(),
	}
	if internalName != nil {
		idx.ByInternalName = make(map[string]K, len(o.keys))
		for _, k := range o.keys {
			if name := internalName(o.byID[k]); name != "" {
				idx.ByInternalName[name] = k
			}
		}
	}
	return idx
}

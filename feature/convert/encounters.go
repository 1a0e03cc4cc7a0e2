package convert

import (
	"regexp"
	"strings"

	"dex-viewer/core/catalog"
)

// slotProbabilities holds the chance in percent of every slot of an
// encounter method, in slot order.
var slotProbabilities = map[string][]int{
	"Land":         {20, 20, 10, 10, 10, 10, 5, 5, 4, 4, 1, 1},
	"Cave":         {20, 20, 10, 10, 10, 10, 5, 5, 4, 4, 1, 1},
	"Water":        {60, 30, 5, 4, 1},
	"RockSmash":    {90, 10},
	"OldRod":       {70, 30},
	"GoodRod":      {60, 20, 20},
	"SuperRod":     {40, 40, 15, 4, 1},
	"HeadbuttLow":  {50, 15, 15, 10, 5, 5},
	"HeadbuttHigh": {50, 15, 15, 10, 5, 5},
	"LandMorning":  {20, 20, 10, 10, 10, 10, 5, 5, 4, 4, 1, 1},
	"LandDay":      {20, 20, 10, 10, 10, 10, 5, 5, 4, 4, 1, 1},
	"LandNight":    {20, 20, 10, 10, 10, 10, 5, 5, 4, 4, 1, 1},
	"BugContest":   {20, 20, 10, 10, 10, 10, 5, 5, 4, 4, 1, 1},
}

var mapHeader = regexp.MustCompile(`^(\d+)`)

// SlotProbability returns the chance of slot (0-based) for an encounter
// method, 0 for unknown methods or slots.
func SlotProbability(method string, slot int) int {
	table := slotProbabilities[method]
	if slot < 0 || slot >= len(table) {
		return 0
	}
	return table[slot]
}

// ParseEncounters reads encounters.txt. Each section starts with the map id
// (optionally followed by "# name"), then the land,cave,water rates, then
// method headers each followed by species,min[,max] slot lines. A species
// listed in several slots of one method is merged: levels widen and
// probabilities add up.
func ParseEncounters(content string) *catalog.EncounterIndex {
	out := newOrdered[int, catalog.Encounter]()

	for _, lines := range splitSections(content, true) {
		if len(lines) < 3 {
			continue
		}
		m := mapHeader.FindStringSubmatch(lines[0])
		if m == nil {
			continue
		}

		mapID := atoi(m[1])
		rates := ints(lines[1])
		for len(rates) < 3 {
			rates = append(rates, 0)
		}
		enc := catalog.Encounter{
			ID:         mapID,
			MapID:      mapID,
			MapName:    strings.TrimSpace(strings.Replace(lines[0][len(m[0]):], "#", "", 1)),
			LandRate:   rates[0],
			CaveRate:   rates[1],
			WaterRate:  rates[2],
			Encounters: []catalog.EncounterTable{},
		}

		var (
			method string
			order  []string
			slots  = make(map[string][]catalog.EncounterSlot)
		)
		for _, line := range lines[2:] {
			if !strings.Contains(line, ",") {
				method = strings.TrimSpace(line)
				if _, ok := slots[method]; !ok {
					order = append(order, method)
					slots[method] = []catalog.EncounterSlot{}
				}
				continue
			}
			if method == "" {
				continue
			}
			parts := splitRaw(line)
			minLevel := atoi(col(parts, 1))
			if minLevel <= 0 {
				minLevel = 1
			}
			maxLevel := atoi(col(parts, 2))
			if maxLevel <= 0 {
				maxLevel = minLevel
			}
			slots[method] = append(slots[method], catalog.EncounterSlot{
				Species:     parts[0],
				MinLevel:    minLevel,
				MaxLevel:    maxLevel,
				Probability: SlotProbability(method, len(slots[method])),
			})
		}

		for _, method := range order {
			enc.Encounters = append(enc.Encounters, catalog.EncounterTable{
				Type:    method,
				Pokemon: mergeSlots(slots[method]),
			})
		}
		out.put(mapID, enc)
	}

	return toIndex[int, catalog.Encounter](out, nil)
}

func mergeSlots(slots []catalog.EncounterSlot) []catalog.EncounterSlot {
	merged := []catalog.EncounterSlot{}
	at := make(map[string]int)
	for _, s := range slots {
		i, ok := at[s.Species]
		if !ok {
			at[s.Species] = len(merged)
			merged = append(merged, s)
			continue
		}
		e := &merged[i]
		e.MinLevel = min(e.MinLevel, s.MinLevel)
		e.MaxLevel = max(e.MaxLevel, s.MaxLevel)
		e.Probability += s.Probability
	}
	return merged
}

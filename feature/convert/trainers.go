package convert

import (
	"fmt"
	"regexp"
	"strings"

	"dex-viewer/core/catalog"
	"dex-viewer/core/utils"
)

var (
	trainerVersion = regexp.MustCompile(`,(\d+)$`)
	internalToken  = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

// ParseTrainers reads trainers.txt. Each section holds the trainer type,
// the name with an optional ",version" suffix, an optional item count line
// followed by the item line, and one line per party member:
// species,level,item,move1..move4,ability,gender,form,shiny,nature,iv,
// happiness,nickname,shadow,ball.
func ParseTrainers(content string) *catalog.TrainerIndex {
	out := newOrdered[string, catalog.Trainer]()
	byType := make(map[string][]string)

	for _, lines := range splitSections(content, false) {
		if len(lines) < 2 {
			continue
		}

		t := catalog.Trainer{
			Type:  lines[0],
			Name:  lines[1],
			Items: []string{},
			Party: []catalog.PartyMember{},
		}
		if m := trainerVersion.FindStringSubmatch(t.Name); m != nil {
			v := atoi(m[1])
			t.Version = &v
			t.Name = t.Name[:strings.LastIndex(t.Name, ",")]
		}
		t.ID = trainerID(t)

		for i := 2; i < len(lines); i++ {
			parts := splitRaw(lines[i])

			if len(parts) == 1 && isNumeric(parts[0]) {
				if atoi(parts[0]) > 0 && i+1 < len(lines) && isItemLine(lines[i+1]) {
					t.Items = utils.SplitList(lines[i+1])
					i++
				}
				continue
			}
			if internalToken.MatchString(parts[0]) {
				t.Party = append(t.Party, parsePartyMember(parts))
			}
		}

		if _, seen := out.byID[t.ID]; !seen {
			byType[t.Type] = append(byType[t.Type], t.ID)
		}
		out.put(t.ID, t)
	}

	return &catalog.TrainerIndex{
		ByID:   out.byID,
		ByType: byType,
		List:   out.list(),
	}
}

func trainerID(t catalog.Trainer) string {
	if t.Version != nil && *t.Version > 0 {
		return fmt.Sprintf("%s_%s_%d", t.Type, t.Name, *t.Version)
	}
	return t.Type + "_" + t.Name
}

func isItemLine(line string) bool {
	for _, p := range utils.SplitList(line) {
		if !internalToken.MatchString(p) {
			return false
		}
	}
	return true
}

func parsePartyMember(parts []string) catalog.PartyMember {
	level := atoi(col(parts, 1))
	if level <= 0 {
		level = 1
	}
	pm := catalog.PartyMember{
		Species:  parts[0],
		Level:    level,
		Item:     col(parts, 2),
		Ability:  col(parts, 7),
		Gender:   col(parts, 8),
		Shiny:    col(parts, 10) == "shiny",
		Nature:   col(parts, 11),
		Nickname: col(parts, 14),
		Shadow:   utils.ToBool(col(parts, 15)),
	}

	var moves []string
	for i := 3; i <= 6; i++ {
		if m := col(parts, i); m != "" {
			moves = append(moves, m)
		}
	}
	pm.Moves = moves

	pm.Form = optionalInt(col(parts, 9))
	pm.IV = optionalInt(col(parts, 12))
	pm.Happiness = optionalInt(col(parts, 13))
	pm.Ball = optionalInt(col(parts, 16))
	return pm
}

func optionalInt(s string) *int {
	if s == "" {
		return nil
	}
	v := atoi(s)
	return &v
}

package convert

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"dex-viewer/core/catalog"
	"dex-viewer/core/utils"
)

// readRecords reads comma separated lines, skipping '#' comments. Quoted
// fields may contain commas; rows of any width are returned.
func readRecords(content string) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(normalizeNewlines(content)))
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		rows = append(rows, row)
	}
}

// splitRaw splits on commas and trims, keeping empty entries.
func splitRaw(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func col(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// isNumeric reports whether s starts with a digit.
func isNumeric(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// ParseMoves reads moves.txt: id,internal,name,function,power,type,category,
// accuracy,pp,effect chance,target,priority,flags,description.
func ParseMoves(content string) (*catalog.MoveIndex, error) {
	rows, err := readRecords(content)
	if err != nil {
		return nil, err
	}

	out := newOrdered[int, catalog.Move]()
	for _, row := range rows {
		if len(row) < 14 || !isNumeric(row[0]) {
			continue
		}
		m := catalog.Move{
			ID:           atoi(row[0]),
			InternalName: row[1],
			Name:         row[2],
			FunctionCode: row[3],
			Power:        atoi(row[4]),
			Type:         row[5],
			Category:     row[6],
			Accuracy:     atoi(row[7]),
			PP:           atoi(row[8]),
			EffectChance: atoi(row[9]),
			Target:       row[10],
			Priority:     atoi(row[11]),
			Flags:        row[12],
			Description:  strings.ReplaceAll(row[13], `"`, ""),
		}
		out.put(m.ID, m)
	}
	return toIndex(out, func(m catalog.Move) string { return m.InternalName }), nil
}

// ParseItems reads items.txt: id,internal,name,plural,pocket,price,
// description,field use,battle use,special[,machine move].
func ParseItems(content string) (*catalog.ItemIndex, error) {
	rows, err := readRecords(content)
	if err != nil {
		return nil, err
	}

	out := newOrdered[int, catalog.Item]()
	for _, row := range rows {
		if len(row) < 10 || !isNumeric(row[0]) {
			continue
		}
		it := catalog.Item{
			ID:           atoi(row[0]),
			InternalName: row[1],
			Name:         row[2],
			NamePlural:   row[3],
			Pocket:       atoi(row[4]),
			Price:        atoi(row[5]),
			Description:  strings.ReplaceAll(row[6], `"`, ""),
			FieldUse:     atoi(row[7]),
			BattleUse:    atoi(row[8]),
			SpecialItem:  atoi(row[9]),
			Machine:      col(row, 10),
		}
		out.put(it.ID, it)
	}
	return toIndex(out, func(i catalog.Item) string { return i.InternalName }), nil
}

// ParseAbilities reads abilities.txt: id,internal,name,description.
func ParseAbilities(content string) (*catalog.AbilityIndex, error) {
	rows, err := readRecords(content)
	if err != nil {
		return nil, err
	}

	out := newOrdered[int, catalog.Ability]()
	for _, row := range rows {
		if len(row) < 3 || !isNumeric(row[0]) {
			continue
		}
		a := catalog.Ability{
			ID:           atoi(row[0]),
			InternalName: row[1],
			Name:         row[2],
			Description:  strings.ReplaceAll(col(row, 3), `"`, ""),
		}
		out.put(a.ID, a)
	}
	return toIndex(out, func(a catalog.Ability) string { return a.InternalName }), nil
}

// ParseTrainerTypes reads trainertypes.txt: id,name,base money,skill level.
func ParseTrainerTypes(content string) (*catalog.TrainerTypeIndex, error) {
	rows, err := readRecords(content)
	if err != nil {
		return nil, err
	}

	out := newOrdered[string, catalog.TrainerType]()
	for _, row := range rows {
		if len(row) < 4 || row[0] == "" {
			continue
		}
		tt := catalog.TrainerType{
			ID:         row[0],
			Name:       row[1],
			BaseMoney:  atoi(row[2]),
			SkillLevel: atoi(row[3]),
		}
		out.put(tt.ID, tt)
	}
	return toIndex[string, catalog.TrainerType](out, nil), nil
}

// ParseTypes reads types.txt.
func ParseTypes(content string) *catalog.TypeIndex {
	out := newOrdered[int, catalog.Type]()
	for _, b := range parseBlocks(content) {
		t := catalog.Type{
			ID:          b.id,
			Weaknesses:  []string{},
			Resistances: []string{},
			Immunities:  []string{},
		}
		for _, f := range b.fields {
			switch f.key {
			case "Name":
				t.Name = f.value
			case "InternalName":
				t.InternalName = f.value
			case "Weaknesses":
				t.Weaknesses = utils.SplitList(f.value)
			case "Resistances":
				t.Resistances = utils.SplitList(f.value)
			case "Immunities":
				t.Immunities = utils.SplitList(f.value)
			}
		}
		out.put(t.ID, t)
	}
	return toIndex(out, func(t catalog.Type) string { return t.InternalName })
}

// ParseTournament reads a tournament roster such as pikacuptr.txt.
func ParseTournament(content string) *catalog.TournamentIndex {
	out := newOrdered[int, catalog.TournamentTrainer]()
	for _, b := range parseBlocks(content) {
		t := catalog.TournamentTrainer{ID: b.id, PokemonIDs: []int{}}
		for _, f := range b.fields {
			switch f.key {
			case "Type":
				t.Type = f.value
			case "Name":
				t.Name = f.value
			case "PokemonNos":
				for _, n := range utils.SplitList(f.value) {
					if isNumeric(n) {
						t.PokemonIDs = append(t.PokemonIDs, atoi(n))
					}
				}
			case "BeginSpeech":
				t.BeginSpeech = f.value
			case "EndSpeechWin":
				t.EndSpeechWin = f.value
			case "EndSpeechLose":
				t.EndSpeechLose = f.value
			}
		}
		out.put(t.ID, t)
	}
	return toIndex[int, catalog.TournamentTrainer](out, nil)
}

package mirror

import (
	"reflect"
	"strings"

	"dex-viewer/core/catalog"
)

// PokemonRow mirrors one species.
type PokemonRow struct {
	ID            int     `gorm:"primaryKey;autoIncrement:false;column:id"`
	InternalName  string  `gorm:"column:internal_name;type:varchar(64);index"`
	Name          string  `gorm:"column:name;type:varchar(64)"`
	Types         string  `gorm:"column:types;type:varchar(64)"`
	HP            int     `gorm:"column:hp"`
	Attack        int     `gorm:"column:attack"`
	Defense       int     `gorm:"column:defense"`
	Speed         int     `gorm:"column:speed"`
	SpAttack      int     `gorm:"column:sp_attack"`
	SpDefense     int     `gorm:"column:sp_defense"`
	Abilities     string  `gorm:"column:abilities;type:varchar(255)"`
	HiddenAbility string  `gorm:"column:hidden_ability;type:varchar(64)"`
	Height        float64 `gorm:"column:height"`
	Weight        float64 `gorm:"column:weight"`
	BaseExp       int     `gorm:"column:base_exp"`
	GrowthRate    string  `gorm:"column:growth_rate;type:varchar(32)"`
}

func (PokemonRow) TableName() string {
	return "dex_pokemon"
}

// MoveRow mirrors one move.
type MoveRow struct {
	ID           int    `gorm:"primaryKey;autoIncrement:false;column:id"`
	InternalName string `gorm:"column:internal_name;type:varchar(64);index"`
	Name         string `gorm:"column:name;type:varchar(64)"`
	Type         string `gorm:"column:type;type:varchar(32)"`
	Category     string `gorm:"column:category;type:varchar(16)"`
	Power        int    `gorm:"column:power"`
	Accuracy     int    `gorm:"column:accuracy"`
	PP           int    `gorm:"column:pp"`
	Priority     int    `gorm:"column:priority"`
	Flags        string `gorm:"column:flags;type:varchar(32)"`
}

func (MoveRow) TableName() string {
	return "dex_moves"
}

// ItemRow mirrors one item.
type ItemRow struct {
	ID           int    `gorm:"primaryKey;autoIncrement:false;column:id"`
	InternalName string `gorm:"column:internal_name;type:varchar(64);index"`
	Name         string `gorm:"column:name;type:varchar(64)"`
	Pocket       int    `gorm:"column:pocket"`
	Price        int    `gorm:"column:price"`
	Machine      string `gorm:"column:machine;type:varchar(64)"`
}

func (ItemRow) TableName() string {
	return "dex_items"
}

// TypeRow mirrors one type with its matchup lists comma joined.
type TypeRow struct {
	ID           int    `gorm:"primaryKey;autoIncrement:false;column:id"`
	InternalName string `gorm:"column:internal_name;type:varchar(32);index"`
	Name         string `gorm:"column:name;type:varchar(32)"`
	Weaknesses   string `gorm:"column:weaknesses;type:varchar(255)"`
	Resistances  string `gorm:"column:resistances;type:varchar(255)"`
	Immunities   string `gorm:"column:immunities;type:varchar(255)"`
}

func (TypeRow) TableName() string {
	return "dex_types"
}

// AbilityRow mirrors one ability.
type AbilityRow struct {
	ID           int    `gorm:"primaryKey;autoIncrement:false;column:id"`
	InternalName string `gorm:"column:internal_name;type:varchar(64);index"`
	Name         string `gorm:"column:name;type:varchar(64)"`
	Description  string `gorm:"column:description;type:text"`
}

func (AbilityRow) TableName() string {
	return "dex_abilities"
}

// Models returns one zero value of every mirror table, in sync order.
func Models() []any {
	return []any{&PokemonRow{}, &MoveRow{}, &ItemRow{}, &TypeRow{}, &AbilityRow{}}
}

// TableName returns the table of a mirror model.
func TableName(model any) string {
	if t, ok := model.(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return ""
}

// Column is a column declared by the gorm tag of a mirror model. Type is
// empty when the tag leaves it to the dialect.
type Column struct {
	Name string
	Type string
}

// Columns returns the columns declared by the gorm tags of model.
func Columns(model any) []Column {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var cols []Column
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		if name := gormSetting(tag, "column"); name != "" {
			cols = append(cols, Column{Name: name, Type: gormSetting(tag, "type")})
		}
	}
	return cols
}

// ExpectedColumns returns the column names of model.
func ExpectedColumns(model any) []string {
	var names []string
	for _, c := range Columns(model) {
		names = append(names, c.Name)
	}
	return names
}

func gormSetting(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if strings.HasPrefix(part, key+":") {
			return strings.TrimPrefix(part, key+":")
		}
	}
	return ""
}

func gormColumn(tag string) string {
	return gormSetting(tag, "column")
}

func joinList(values []string) string {
	return strings.Join(values, ",")
}

func pokemonRow(p catalog.Pokemon) PokemonRow {
	return PokemonRow{
		ID:            p.ID,
		InternalName:  p.InternalName,
		Name:          p.Name,
		Types:         joinList(p.Types),
		HP:            p.Stats.HP,
		Attack:        p.Stats.Attack,
		Defense:       p.Stats.Defense,
		Speed:         p.Stats.Speed,
		SpAttack:      p.Stats.SpAttack,
		SpDefense:     p.Stats.SpDefense,
		Abilities:     joinList(p.Abilities),
		HiddenAbility: p.HiddenAbility,
		Height:        p.Height,
		Weight:        p.Weight,
		BaseExp:       p.BaseExp,
		GrowthRate:    p.GrowthRate,
	}
}

func moveRow(m catalog.Move) MoveRow {
	return MoveRow{
		ID:           m.ID,
		InternalName: m.InternalName,
		Name:         m.Name,
		Type:         m.Type,
		Category:     m.Category,
		Power:        m.Power,
		Accuracy:     m.Accuracy,
		PP:           m.PP,
		Priority:     m.Priority,
		Flags:        m.Flags,
	}
}

func itemRow(i catalog.Item) ItemRow {
	return ItemRow{
		ID:           i.ID,
		InternalName: i.InternalName,
		Name:         i.Name,
		Pocket:       i.Pocket,
		Price:        i.Price,
		Machine:      i.Machine,
	}
}

func typeRow(t catalog.Type) TypeRow {
	return TypeRow{
		ID:           t.ID,
		InternalName: t.InternalName,
		Name:         t.Name,
		Weaknesses:   joinList(t.Weaknesses),
		Resistances:  joinList(t.Resistances),
		Immunities:   joinList(t.Immunities),
	}
}

func abilityRow(a catalog.Ability) AbilityRow {
	return AbilityRow{
		ID:           a.ID,
		InternalName: a.InternalName,
		Name:         a.Name,
		Description:  a.Description,
	}
}

func rows[T, R any](list []T, conv func(T) R) []R {
	out := make([]R, 0, len(list))
	for _, v := range list {
		out = append(out, conv(v))
	}
	return out
}

package catalog

// Stats holds the six base stats of a Pokémon.
type Stats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	Speed     int `json:"speed"`
	SpAttack  int `json:"spAttack"`
	SpDefense int `json:"spDefense"`
}

// LevelMove is a move learned at a given level.
type LevelMove struct {
	Level int    `json:"level"`
	Move  string `json:"move"`
}

// Evolution describes one evolution branch of a species.
type Evolution struct {
	Species   string `json:"species"`
	Method    string `json:"method"`
	Parameter string `json:"parameter,omitempty"`
}

// Pokemon is a species record as emitted by the converter.
type Pokemon struct {
	ID              int         `json:"id"`
	Name            string      `json:"name"`
	InternalName    string      `json:"internalName"`
	DisplayName     string      `json:"displayName,omitempty"`
	Types           []string    `json:"types"`
	Stats           Stats       `json:"stats"`
	Abilities       []string    `json:"abilities"`
	HiddenAbility   string      `json:"hiddenAbility,omitempty"`
	Moves           []LevelMove `json:"moves"`
	EggMoves        []string    `json:"eggMoves"`
	Evolutions      []Evolution `json:"evolutions"`
	Height          float64     `json:"height"`
	Weight          float64     `json:"weight"`
	Color           string      `json:"color"`
	Habitat         string      `json:"habitat"`
	Pokedex         string      `json:"pokedex"`
	GenderRate      string      `json:"genderRate"`
	GrowthRate      string      `json:"growthRate"`
	BaseExp         int         `json:"baseExp"`
	EffortPoints    []int       `json:"effortPoints"`
	Rareness        int         `json:"rareness"`
	Happiness       int         `json:"happiness"`
	Compatibility   []string    `json:"compatibility"`
	StepsToHatch    int         `json:"stepsToHatch"`
	RegionalNumbers string      `json:"regionalNumbers"`
	Kind            string      `json:"kind"`
	Shape           int         `json:"shape"`
}

// Move is a move record.
type Move struct {
	ID           int    `json:"id"`
	InternalName string `json:"internalName"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName,omitempty"`
	FunctionCode string `json:"functionCode"`
	Power        int    `json:"power"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Accuracy     int    `json:"accuracy"`
	PP           int    `json:"pp"`
	EffectChance int    `json:"effectChance"`
	Target       string `json:"target"`
	Priority     int    `json:"priority"`
	Flags        string `json:"flags"`
	Description  string `json:"description"`
}

// Item is an item record. Pocket follows the in-game bag layout
// (0 items, 1 medicine, 2 balls, 3 TMs/HMs, 4 berries, 5 mail,
// 6 battle items, 7 key items).
type Item struct {
	ID           int    `json:"id"`
	InternalName string `json:"internalName"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName,omitempty"`
	NamePlural   string `json:"namePlural"`
	Pocket       int    `json:"pocket"`
	Price        int    `json:"price"`
	Description  string `json:"description"`
	FieldUse     int    `json:"fieldUse"`
	BattleUse    int    `json:"battleUse"`
	SpecialItem  int    `json:"specialItem"`
	Machine      string `json:"machine,omitempty"`
}

// PartyMember is one Pokémon of a trainer's party.
type PartyMember struct {
	Species   string   `json:"species"`
	Level     int      `json:"level"`
	Item      string   `json:"item,omitempty"`
	Moves     []string `json:"moves,omitempty"`
	Ability   string   `json:"ability,omitempty"`
	Gender    string   `json:"gender,omitempty"`
	Form      *int     `json:"form,omitempty"`
	Shiny     bool     `json:"shiny,omitempty"`
	Nature    string   `json:"nature,omitempty"`
	IV        *int     `json:"iv,omitempty"`
	Happiness *int     `json:"happiness,omitempty"`
	Nickname  string   `json:"nickname,omitempty"`
	Shadow    bool     `json:"shadow,omitempty"`
	Ball      *int     `json:"ball,omitempty"`
}

// Trainer is a trainer battle. Its identity is type + name + optional version.
type Trainer struct {
	ID      string        `json:"id"`
	Type    string        `json:"type"`
	Name    string        `json:"name"`
	Version *int          `json:"version,omitempty"`
	Items   []string      `json:"items"`
	Party   []PartyMember `json:"party"`
}

// TrainerType is a trainer class such as YOUNGSTER.
type TrainerType struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BaseMoney  int    `json:"baseMoney"`
	SkillLevel int    `json:"skillLevel"`
}

// EncounterSlot is one species in an encounter table.
type EncounterSlot struct {
	Species     string `json:"species"`
	MinLevel    int    `json:"minLevel"`
	MaxLevel    int    `json:"maxLevel"`
	Probability int    `json:"probability"`
}

// EncounterTable groups the slots of one encounter method (Land, Cave, ...).
type EncounterTable struct {
	Type    string          `json:"type"`
	Pokemon []EncounterSlot `json:"pokemon"`
}

// Encounter holds the wild encounters of one map.
type Encounter struct {
	ID         int              `json:"id"`
	MapID      int              `json:"mapId"`
	MapName    string           `json:"mapName"`
	LandRate   int              `json:"landRate"`
	CaveRate   int              `json:"caveRate"`
	WaterRate  int              `json:"waterRate"`
	Encounters []EncounterTable `json:"encounters"`
}

// Type is an elemental type with its defensive matchups.
type Type struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	InternalName string   `json:"internalName"`
	Weaknesses   []string `json:"weaknesses"`
	Resistances  []string `json:"resistances"`
	Immunities   []string `json:"immunities"`
}

// Ability is an ability record.
type Ability struct {
	ID           int    `json:"id"`
	InternalName string `json:"internalName"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

// TournamentTrainer is one entry of a tournament roster.
type TournamentTrainer struct {
	ID            int    `json:"id"`
	Type          string `json:"type"`
	Name          string `json:"name"`
	PokemonIDs    []int  `json:"pokemonIds"`
	BeginSpeech   string `json:"beginSpeech"`
	EndSpeechWin  string `json:"endSpeechWin"`
	EndSpeechLose string `json:"endSpeechLose"`
}

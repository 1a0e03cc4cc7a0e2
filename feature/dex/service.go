package dex

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dex-viewer/core/catalog"
	"dex-viewer/core/server"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNotFound is returned by detail lookups for unknown keys.
var ErrNotFound = errors.New("not found")

var moveFlags = map[rune]string{
	'a': "Contact",
	'b': "Can Protect",
	'c': "Can Mirror Move",
	'd': "Snatchable",
	'e': "Can Magic Coat",
	'f': "Thaws User",
	'g': "High Critical Ratio",
	'h': "Biting",
	'i': "Punching",
	'j': "Sound",
	'k': "Powder",
	'l': "Pulse",
	'm': "Bomb",
	'n': "Dance",
}

// Service answers page queries from the catalog.
type Service struct {
	catalog *catalog.Catalog
	origin  string
	server  server.Config
	logger  *zap.Logger
}

// NewService creates a new dex service. origin overrides srv.BaseURL
// when set.
func NewService(cat *catalog.Catalog, origin string, srv server.Config, logger *zap.Logger) *Service {
	return &Service{
		catalog: cat,
		origin:  origin,
		server:  srv,
		logger:  logger,
	}
}

// Origin returns the configured dataset origin.
func (s *Service) Origin() string {
	return s.server.OriginFor(s.origin)
}

// orEmpty substitutes an empty dataset for a failed load.
func orEmpty[T any](l *zap.Logger, kind string, v *T, err error) *T {
	if err != nil {
		l.Warn("Dataset unavailable, using empty", zap.String("kind", kind), zap.Error(err))
		return new(T)
	}
	return v
}

func (s *Service) pokemon(ctx context.Context, origin string) *catalog.PokemonIndex {
	v, err := s.catalog.LoadPokemon(ctx, origin)
	return orEmpty(s.logger, catalog.KindPokemon, v, err)
}

func (s *Service) moves(ctx context.Context, origin string) *catalog.MoveIndex {
	v, err := s.catalog.LoadMoves(ctx, origin)
	return orEmpty(s.logger, catalog.KindMoves, v, err)
}

func (s *Service) items(ctx context.Context, origin string) *catalog.ItemIndex {
	v, err := s.catalog.LoadItems(ctx, origin)
	return orEmpty(s.logger, catalog.KindItems, v, err)
}

func (s *Service) trainers(ctx context.Context, origin string) *catalog.TrainerIndex {
	v, err := s.catalog.LoadTrainers(ctx, origin)
	return orEmpty(s.logger, catalog.KindTrainers, v, err)
}

func (s *Service) trainerTypes(ctx context.Context, origin string) *catalog.TrainerTypeIndex {
	v, err := s.catalog.LoadTrainerTypes(ctx, origin)
	return orEmpty(s.logger, catalog.KindTrainerTypes, v, err)
}

func (s *Service) encounters(ctx context.Context, origin string) *catalog.EncounterIndex {
	v, err := s.catalog.LoadEncounters(ctx, origin)
	return orEmpty(s.logger, catalog.KindEncounters, v, err)
}

func (s *Service) types(ctx context.Context, origin string) *catalog.TypeIndex {
	v, err := s.catalog.LoadTypes(ctx, origin)
	return orEmpty(s.logger, catalog.KindTypes, v, err)
}

func (s *Service) abilities(ctx context.Context, origin string) *catalog.AbilityIndex {
	v, err := s.catalog.LoadAbilities(ctx, origin)
	return orEmpty(s.logger, catalog.KindAbilities, v, err)
}

// ListPokemon returns the species matching q, optionally of one type.
func (s *Service) ListPokemon(ctx context.Context, origin, q, typ string) []catalog.Pokemon {
	list := catalog.SearchPokemonIn(s.pokemon(ctx, origin), q)
	if typ == "" {
		return list
	}
	out := []catalog.Pokemon{}
	for _, p := range list {
		if hasType(p.Types, typ) {
			out = append(out, p)
		}
	}
	return out
}

// LevelMoveDetail is a level-up move with its move record.
type LevelMoveDetail struct {
	Level int          `json:"level"`
	Move  catalog.Move `json:"move"`
}

// EvolutionDetail is an evolution branch with the target species resolved.
type EvolutionDetail struct {
	catalog.Evolution
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// PokemonDetail is a species with its references resolved.
type PokemonDetail struct {
	catalog.Pokemon
	TypeDetails         []catalog.Type    `json:"typeDetails"`
	AbilityDetails      []catalog.Ability `json:"abilityDetails"`
	HiddenAbilityDetail *catalog.Ability  `json:"hiddenAbilityDetail,omitempty"`
	LevelMoves          []LevelMoveDetail `json:"levelMoves"`
	EggMoveDetails      []catalog.Move    `json:"eggMoveDetails"`
	EvolutionDetails    []EvolutionDetail `json:"evolutionDetails"`
	Matchups            Matchups          `json:"matchups"`
}

// Pokemon returns one species by national id or internal name.
func (s *Service) Pokemon(ctx context.Context, origin, key string) (*PokemonDetail, error) {
	var (
		pokemon   *catalog.PokemonIndex
		moves     *catalog.MoveIndex
		types     *catalog.TypeIndex
		abilities *catalog.AbilityIndex
	)

	var g errgroup.Group
	g.Go(func() error { pokemon = s.pokemon(ctx, origin); return nil })
	g.Go(func() error { moves = s.moves(ctx, origin); return nil })
	g.Go(func() error { types = s.types(ctx, origin); return nil })
	g.Go(func() error { abilities = s.abilities(ctx, origin); return nil })
	_ = g.Wait()

	p, ok := byKey(pokemon, key)
	if !ok {
		return nil, fmt.Errorf("%w: pokemon %s", ErrNotFound, key)
	}

	detail := &PokemonDetail{
		Pokemon:          p,
		TypeDetails:      resolve(types, p.Types),
		AbilityDetails:   resolve(abilities, p.Abilities),
		LevelMoves:       []LevelMoveDetail{},
		EggMoveDetails:   resolve(moves, p.EggMoves),
		EvolutionDetails: []EvolutionDetail{},
		Matchups:         ComputeMatchups(types, p.Types),
	}
	if a, ok := abilities.GetByInternalName(p.HiddenAbility); ok {
		detail.HiddenAbilityDetail = &a
	}
	for _, lm := range p.Moves {
		if m, ok := moves.GetByInternalName(lm.Move); ok {
			detail.LevelMoves = append(detail.LevelMoves, LevelMoveDetail{Level: lm.Level, Move: m})
		}
	}
	for _, evo := range p.Evolutions {
		d := EvolutionDetail{Evolution: evo}
		if target, ok := pokemon.GetByInternalName(evo.Species); ok {
			d.ID = target.ID
			d.Name = target.Name
		}
		detail.EvolutionDetails = append(detail.EvolutionDetails, d)
	}
	return detail, nil
}

// CompareEntry is one species of a comparison.
type CompareEntry struct {
	catalog.Pokemon
	BaseStatTotal int      `json:"baseStatTotal"`
	Matchups      Matchups `json:"matchups"`
}

// Compare returns the requested species in request order, skipping unknown ids.
func (s *Service) Compare(ctx context.Context, origin string, ids []int) []CompareEntry {
	var (
		pokemon *catalog.PokemonIndex
		types   *catalog.TypeIndex
	)
	var g errgroup.Group
	g.Go(func() error { pokemon = s.pokemon(ctx, origin); return nil })
	g.Go(func() error { types = s.types(ctx, origin); return nil })
	_ = g.Wait()

	out := []CompareEntry{}
	for _, id := range ids {
		p, ok := pokemon.Get(id)
		if !ok {
			continue
		}
		st := p.Stats
		out = append(out, CompareEntry{
			Pokemon:       p,
			BaseStatTotal: st.HP + st.Attack + st.Defense + st.Speed + st.SpAttack + st.SpDefense,
			Matchups:      ComputeMatchups(types, p.Types),
		})
	}
	return out
}

// ListMoves returns the moves matching q, optionally of one type and category.
func (s *Service) ListMoves(ctx context.Context, origin, q, typ, category string) []catalog.Move {
	list := catalog.SearchMovesIn(s.moves(ctx, origin), q)
	if typ == "" && category == "" {
		return list
	}
	out := []catalog.Move{}
	for _, m := range list {
		if typ != "" && !strings.EqualFold(m.Type, typ) {
			continue
		}
		if category != "" && !strings.EqualFold(m.Category, category) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// MoveDetail is a move with its flag letters spelled out.
type MoveDetail struct {
	catalog.Move
	FlagNames []string `json:"flagNames"`
}

// Move returns one move by id or internal name.
func (s *Service) Move(ctx context.Context, origin, key string) (*MoveDetail, error) {
	m, ok := byKey(s.moves(ctx, origin), key)
	if !ok {
		return nil, fmt.Errorf("%w: move %s", ErrNotFound, key)
	}
	return &MoveDetail{Move: m, FlagNames: ParseFlags(m.Flags)}, nil
}

// ParseFlags spells out the flag letters of a move. Unknown letters are dropped.
func ParseFlags(flags string) []string {
	out := []string{}
	for _, r := range flags {
		if name, ok := moveFlags[r]; ok {
			out = append(out, name)
		}
	}
	return out
}

// ListItems returns the items matching q. A negative pocket matches every pocket.
func (s *Service) ListItems(ctx context.Context, origin, q string, pocket int) []catalog.Item {
	list := catalog.SearchItemsIn(s.items(ctx, origin), q)
	if pocket < 0 {
		return list
	}
	out := []catalog.Item{}
	for _, i := range list {
		if i.Pocket == pocket {
			out = append(out, i)
		}
	}
	return out
}

// ItemDetail is an item with the move its machine teaches.
type ItemDetail struct {
	catalog.Item
	MachineMove *catalog.Move `json:"machineMove,omitempty"`
}

// Item returns one item by id or internal name.
func (s *Service) Item(ctx context.Context, origin, key string) (*ItemDetail, error) {
	i, ok := byKey(s.items(ctx, origin), key)
	if !ok {
		return nil, fmt.Errorf("%w: item %s", ErrNotFound, key)
	}
	detail := &ItemDetail{Item: i}
	if i.Machine != "" {
		if m, ok := s.moves(ctx, origin).GetByInternalName(i.Machine); ok {
			detail.MachineMove = &m
		}
	}
	return detail, nil
}

// ListTrainers returns the trainers matching q, optionally of one trainer type.
func (s *Service) ListTrainers(ctx context.Context, origin, q, typ string) []catalog.Trainer {
	idx := s.trainers(ctx, origin)
	if typ == "" {
		return catalog.SearchTrainersIn(idx, q)
	}
	needle := strings.ToLower(strings.TrimSpace(q))
	out := []catalog.Trainer{}
	for _, t := range catalog.TrainersOfType(idx, typ) {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			out = append(out, t)
		}
	}
	return out
}

// PartyMemberDetail is a party member with its references resolved.
type PartyMemberDetail struct {
	catalog.PartyMember
	PokemonID     int              `json:"pokemonId,omitempty"`
	Types         []string         `json:"types,omitempty"`
	HeldItem      *catalog.Item    `json:"heldItem,omitempty"`
	MoveDetails   []catalog.Move   `json:"moveDetails"`
	AbilityDetail *catalog.Ability `json:"abilityDetail,omitempty"`
}

// TrainerDetail is a trainer with its type, bag and party resolved.
type TrainerDetail struct {
	catalog.Trainer
	TrainerType  *catalog.TrainerType `json:"trainerType,omitempty"`
	ItemDetails  []catalog.Item       `json:"itemDetails"`
	PartyDetails []PartyMemberDetail  `json:"partyDetails"`
}

// Trainer returns one trainer by id. Control characters in id are ignored.
func (s *Service) Trainer(ctx context.Context, origin, id string) (*TrainerDetail, error) {
	var (
		trainers     *catalog.TrainerIndex
		trainerTypes *catalog.TrainerTypeIndex
		pokemon      *catalog.PokemonIndex
		items        *catalog.ItemIndex
		moves        *catalog.MoveIndex
		abilities    *catalog.AbilityIndex
	)

	var g errgroup.Group
	g.Go(func() error { trainers = s.trainers(ctx, origin); return nil })
	g.Go(func() error { trainerTypes = s.trainerTypes(ctx, origin); return nil })
	g.Go(func() error { pokemon = s.pokemon(ctx, origin); return nil })
	g.Go(func() error { items = s.items(ctx, origin); return nil })
	g.Go(func() error { moves = s.moves(ctx, origin); return nil })
	g.Go(func() error { abilities = s.abilities(ctx, origin); return nil })
	_ = g.Wait()

	t, ok := trainers.ByID[catalog.StripControl(id)]
	if !ok {
		return nil, fmt.Errorf("%w: trainer %s", ErrNotFound, id)
	}

	detail := &TrainerDetail{
		Trainer:      t,
		ItemDetails:  resolve(items, t.Items),
		PartyDetails: make([]PartyMemberDetail, 0, len(t.Party)),
	}
	if tt, ok := trainerTypes.Get(t.Type); ok {
		detail.TrainerType = &tt
	}
	for _, member := range t.Party {
		d := PartyMemberDetail{PartyMember: member, MoveDetails: resolve(moves, member.Moves)}
		if p, ok := pokemon.GetByInternalName(member.Species); ok {
			d.PokemonID = p.ID
			d.Types = p.Types
		}
		if member.Item != "" {
			if i, ok := items.GetByInternalName(member.Item); ok {
				d.HeldItem = &i
			}
		}
		if member.Ability != "" {
			if a, ok := abilities.GetByInternalName(member.Ability); ok {
				d.AbilityDetail = &a
			}
		}
		detail.PartyDetails = append(detail.PartyDetails, d)
	}
	return detail, nil
}

// Encounters returns the wild encounters of every map.
func (s *Service) Encounters(ctx context.Context, origin string) []catalog.Encounter {
	return listOf(s.encounters(ctx, origin).List)
}

// EncounterDetail is the encounter table of a map with species ids resolved.
type EncounterDetail struct {
	catalog.Encounter
	PokemonIDs map[string]int `json:"pokemonIds"`
}

// Encounter returns the wild encounters of one map.
func (s *Service) Encounter(ctx context.Context, origin string, mapID int) (*EncounterDetail, error) {
	var (
		encounters *catalog.EncounterIndex
		pokemon    *catalog.PokemonIndex
	)
	var g errgroup.Group
	g.Go(func() error { encounters = s.encounters(ctx, origin); return nil })
	g.Go(func() error { pokemon = s.pokemon(ctx, origin); return nil })
	_ = g.Wait()

	e, ok := encounters.Get(mapID)
	if !ok {
		return nil, fmt.Errorf("%w: map %d", ErrNotFound, mapID)
	}

	ids := make(map[string]int)
	for _, table := range e.Encounters {
		for _, slot := range table.Pokemon {
			if p, ok := pokemon.GetByInternalName(slot.Species); ok {
				ids[slot.Species] = p.ID
			}
		}
	}
	return &EncounterDetail{Encounter: e, PokemonIDs: ids}, nil
}

// Types returns every type in source order.
func (s *Service) Types(ctx context.Context, origin string) []catalog.Type {
	return listOf(s.types(ctx, origin).List)
}

// Abilities returns every ability in source order.
func (s *Service) Abilities(ctx context.Context, origin string) []catalog.Ability {
	return listOf(s.abilities(ctx, origin).List)
}

// TrainerTypes returns every trainer type in source order.
func (s *Service) TrainerTypes(ctx context.Context, origin string) []catalog.TrainerType {
	return listOf(s.trainerTypes(ctx, origin).List)
}

// Tournament returns the roster of a tournament. Only an invalid name is an
// error; a roster that cannot be loaded is empty.
func (s *Service) Tournament(ctx context.Context, origin, name string) ([]catalog.TournamentTrainer, error) {
	v, err := s.catalog.LoadTournament(ctx, name, origin)
	if errors.Is(err, catalog.ErrInvalidTournament) {
		return nil, err
	}
	return listOf(orEmpty(s.logger, name, v, err).List), nil
}

// SearchResults holds the hits of a cross-dataset search.
type SearchResults struct {
	Query    string            `json:"query"`
	Pokemon  []catalog.Pokemon `json:"pokemon"`
	Moves    []catalog.Move    `json:"moves"`
	Items    []catalog.Item    `json:"items"`
	Trainers []catalog.Trainer `json:"trainers"`
}

// Search matches q against pokemon, moves, items and trainers, keeping at
// most limit hits per dataset. A blank query finds nothing.
func (s *Service) Search(ctx context.Context, origin, q string, limit int) SearchResults {
	res := SearchResults{
		Query:    strings.TrimSpace(q),
		Pokemon:  []catalog.Pokemon{},
		Moves:    []catalog.Move{},
		Items:    []catalog.Item{},
		Trainers: []catalog.Trainer{},
	}
	if res.Query == "" {
		return res
	}

	var g errgroup.Group
	g.Go(func() error {
		res.Pokemon = limitTo(catalog.SearchPokemonIn(s.pokemon(ctx, origin), q), limit)
		return nil
	})
	g.Go(func() error {
		res.Moves = limitTo(catalog.SearchMovesIn(s.moves(ctx, origin), q), limit)
		return nil
	})
	g.Go(func() error {
		res.Items = limitTo(catalog.SearchItemsIn(s.items(ctx, origin), q), limit)
		return nil
	})
	g.Go(func() error {
		res.Trainers = limitTo(catalog.SearchTrainersIn(s.trainers(ctx, origin), q), limit)
		return nil
	})
	_ = g.Wait()
	return res
}

// Stats loads every dataset and returns their record counts. Datasets that
// fail to load count zero.
func (s *Service) Stats(ctx context.Context, origin string) catalog.DataStats {
	var g errgroup.Group
	g.Go(func() error { s.pokemon(ctx, origin); return nil })
	g.Go(func() error { s.moves(ctx, origin); return nil })
	g.Go(func() error { s.items(ctx, origin); return nil })
	g.Go(func() error { s.trainers(ctx, origin); return nil })
	g.Go(func() error { s.trainerTypes(ctx, origin); return nil })
	g.Go(func() error { s.encounters(ctx, origin); return nil })
	g.Go(func() error { s.types(ctx, origin); return nil })
	g.Go(func() error { s.abilities(ctx, origin); return nil })
	_ = g.Wait()

	return s.catalog.Stats()
}

// byKey resolves a numeric id, then an internal name in any case.
func byKey[T any](idx *catalog.Index[int, T], key string) (T, bool) {
	key = strings.TrimSpace(key)
	if id, err := strconv.Atoi(key); err == nil {
		return idx.Get(id)
	}
	return idx.GetByInternalName(strings.ToUpper(key))
}

// resolve maps internal names to records, skipping unknown names.
func resolve[K comparable, T any](idx *catalog.Index[K, T], names []string) []T {
	out := []T{}
	for _, name := range names {
		if v, ok := idx.GetByInternalName(name); ok {
			out = append(out, v)
		}
	}
	return out
}

func hasType(types []string, typ string) bool {
	for _, t := range types {
		if strings.EqualFold(t, typ) {
			return true
		}
	}
	return false
}

func listOf[T any](list []T) []T {
	return append([]T{}, list...)
}

func limitTo[T any](list []T, n int) []T {
	if n > 0 && len(list) > n {
		return list[:n]
	}
	return list
}

package catalog

import (
	"context"
	"fmt"
	"regexp"
)

var tournamentNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// LoadPokemon returns the Pokémon index.
func (c *Catalog) LoadPokemon(ctx context.Context, origin string) (*PokemonIndex, error) {
	return load[PokemonIndex](ctx, c, KindPokemon, origin, nil)
}

// LoadMoves returns the move index.
func (c *Catalog) LoadMoves(ctx context.Context, origin string) (*MoveIndex, error) {
	return load[MoveIndex](ctx, c, KindMoves, origin, nil)
}

// LoadItems returns the item index.
func (c *Catalog) LoadItems(ctx context.Context, origin string) (*ItemIndex, error) {
	return load[ItemIndex](ctx, c, KindItems, origin, nil)
}

// LoadTrainers returns the trainer index with sanitized identifiers.
func (c *Catalog) LoadTrainers(ctx context.Context, origin string) (*TrainerIndex, error) {
	return load[TrainerIndex](ctx, c, KindTrainers, origin, NormalizeTrainers)
}

// LoadTrainerTypes returns the trainer type index.
func (c *Catalog) LoadTrainerTypes(ctx context.Context, origin string) (*TrainerTypeIndex, error) {
	return load[TrainerTypeIndex](ctx, c, KindTrainerTypes, origin, nil)
}

// LoadEncounters returns the encounter index keyed by map id.
func (c *Catalog) LoadEncounters(ctx context.Context, origin string) (*EncounterIndex, error) {
	return load[EncounterIndex](ctx, c, KindEncounters, origin, nil)
}

// LoadTypes returns the type index.
func (c *Catalog) LoadTypes(ctx context.Context, origin string) (*TypeIndex, error) {
	return load[TypeIndex](ctx, c, KindTypes, origin, nil)
}

// LoadAbilities returns the ability index.
func (c *Catalog) LoadAbilities(ctx context.Context, origin string) (*AbilityIndex, error) {
	return load[AbilityIndex](ctx, c, KindAbilities, origin, nil)
}

// LoadTournament returns the roster of the named tournament (e.g. "pikacuptr").
func (c *Catalog) LoadTournament(ctx context.Context, name, origin string) (*TournamentIndex, error) {
	if err := ValidateTournamentName(name); err != nil {
		return nil, err
	}
	return load[TournamentIndex](ctx, c, name, origin, nil)
}

// ValidateTournamentName rejects names that could escape /data/json or
// shadow a core dataset.
func ValidateTournamentName(name string) error {
	if !tournamentNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTournament, name)
	}
	if IsCoreKind(name) {
		return fmt.Errorf("%w: %q is a core dataset", ErrInvalidTournament, name)
	}
	return nil
}

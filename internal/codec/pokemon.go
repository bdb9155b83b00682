package codec

import (
	"time"

	"github.com/mobiledex/pokedex-api/internal/clients/pokeapi"
	"github.com/mobiledex/pokedex-api/internal/entities/dex"
)

// PokemonSummaryFromWire converts one {name, url} list entry into a domain
// summary. The ID comes from the URL's trailing segment; the artwork URL is
// derived from the ID. Favorite always starts false; the flag lives in
// storage and survives re-fetches there.
func PokemonSummaryFromWire(w pokeapi.NamedResource) dex.PokemonSummary {
	id := ExtractID(w.URL)
	return dex.PokemonSummary{
		ID:          id,
		Name:        w.Name,
		DisplayName: DisplayName(w.Name),
		URL:         w.URL,
		ImageURL:    ArtworkURL(id),
	}
}

// EncodePokemonSummary converts a domain summary to its storage row.
func EncodePokemonSummary(d dex.PokemonSummary, fetchedAt time.Time) PokemonSummaryRow {
	return PokemonSummaryRow{
		ID:        d.ID,
		Name:      d.Name,
		URL:       d.URL,
		ImageURL:  d.ImageURL,
		Favorite:  d.Favorite,
		FetchedAt: fetchedAt,
	}
}

// DecodePokemonSummary restores a domain summary from its storage row,
// applying the display-name casing at read time.
func DecodePokemonSummary(row PokemonSummaryRow) dex.PokemonSummary {
	return dex.PokemonSummary{
		ID:          row.ID,
		Name:        row.Name,
		DisplayName: DisplayName(row.Name),
		URL:         row.URL,
		ImageURL:    row.ImageURL,
		Favorite:    row.Favorite,
	}
}

// PokemonDetailsFromWire converts the full detail payload into the domain
// shape. Every optional branch is copied null-safely: a missing branch
// yields a nil or empty leaf, never an error.
func PokemonDetailsFromWire(w *pokeapi.PokemonResponse) dex.PokemonDetails {
	if w == nil {
		return dex.PokemonDetails{}
	}

	abilities := make([]dex.AbilitySlot, 0, len(w.Abilities))
	for _, a := range w.Abilities {
		abilities = append(abilities, dex.AbilitySlot{
			Name:   a.Ability.Name,
			Slot:   a.Slot,
			Hidden: a.IsHidden,
		})
	}

	moves := make([]dex.MoveRef, 0, len(w.Moves))
	for _, m := range w.Moves {
		moves = append(moves, dex.MoveRef{
			ID:   ExtractID(m.Move.URL),
			Name: m.Move.Name,
		})
	}

	stats := make([]dex.StatLine, 0, len(w.Stats))
	for _, st := range w.Stats {
		stats = append(stats, dex.StatLine{
			Name:   st.Stat.Name,
			Base:   st.BaseStat,
			Effort: st.Effort,
		})
	}

	types := make([]dex.TypeSlot, 0, len(w.Types))
	for _, t := range w.Types {
		types = append(types, dex.TypeSlot{
			Slot: t.Slot,
			Name: t.Type.Name,
		})
	}

	return dex.PokemonDetails{
		ID:             w.ID,
		Name:           w.Name,
		DisplayName:    DisplayName(w.Name),
		Height:         w.Height,
		Weight:         w.Weight,
		BaseExperience: w.BaseExperience,
		Abilities:      abilities,
		Moves:          moves,
		Stats:          stats,
		Types:          types,
		Sprites:        spritesFromWire(w.Sprites),
		SpeciesName:    w.Species.Name,
		SpeciesID:      ExtractID(w.Species.URL),
	}
}

func spritesFromWire(w *pokeapi.SpritesResponse) *dex.Sprites {
	if w == nil {
		return nil
	}

	s := &dex.Sprites{
		FrontDefault: stringOrEmpty(w.FrontDefault),
		BackDefault:  stringOrEmpty(w.BackDefault),
		FrontShiny:   stringOrEmpty(w.FrontShiny),
		BackShiny:    stringOrEmpty(w.BackShiny),
	}
	if w.Other != nil && w.Other.OfficialArtwork != nil {
		s.OfficialArtwork = stringOrEmpty(w.Other.OfficialArtwork.FrontDefault)
	}
	return s
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// EncodePokemonDetails converts domain details to the storage row,
// flattening the nested slices and sprites into blobs.
func EncodePokemonDetails(d dex.PokemonDetails, fetchedAt time.Time) PokemonDetailsRow {
	return PokemonDetailsRow{
		ID:             d.ID,
		Name:           d.Name,
		Height:         d.Height,
		Weight:         d.Weight,
		BaseExperience: d.BaseExperience,
		AbilitiesBlob:  marshalBlob(d.Abilities),
		MovesBlob:      marshalBlob(d.Moves),
		StatsBlob:      marshalBlob(d.Stats),
		TypesBlob:      marshalBlob(d.Types),
		SpritesBlob:    spritesBlob(d.Sprites),
		SpeciesName:    d.SpeciesName,
		SpeciesID:      d.SpeciesID,
		FetchedAt:      fetchedAt,
	}
}

func spritesBlob(s *dex.Sprites) string {
	if s == nil {
		return ""
	}
	return marshalBlob(s)
}

// DecodePokemonDetails restores domain details from the storage row. A
// corrupt blob nils out only that branch; everything else still decodes.
func DecodePokemonDetails(row PokemonDetailsRow) dex.PokemonDetails {
	d := dex.PokemonDetails{
		ID:             row.ID,
		Name:           row.Name,
		DisplayName:    DisplayName(row.Name),
		Height:         row.Height,
		Weight:         row.Weight,
		BaseExperience: row.BaseExperience,
		SpeciesName:    row.SpeciesName,
		SpeciesID:      row.SpeciesID,
	}

	unmarshalBlob(row.AbilitiesBlob, &d.Abilities)
	unmarshalBlob(row.MovesBlob, &d.Moves)
	unmarshalBlob(row.StatsBlob, &d.Stats)
	unmarshalBlob(row.TypesBlob, &d.Types)

	// An empty blob means no sprites branch was present; a corrupt blob
	// nils the leaf rather than failing the row.
	if row.SpritesBlob != "" {
		var sprites dex.Sprites
		if err := jsonUnmarshal(row.SpritesBlob, &sprites); err == nil {
			d.Sprites = &sprites
		}
	}

	return d
}

package codec

import (
	"time"

	"github.com/mobiledex/pokedex-api/internal/clients/pokeapi"
	"github.com/mobiledex/pokedex-api/internal/entities/dex"
)

// EncounterSetFromWire converts the location-area encounter list for one
// Pokémon into the domain shape. The wire payload carries no Pokémon ID of
// its own; the caller supplies the key it fetched by.
func EncounterSetFromWire(pokemonID int, w []pokeapi.EncounterResponse) dex.EncounterSet {
	set := dex.EncounterSet{
		PokemonID: pokemonID,
		Areas:     make([]dex.EncounterArea, 0, len(w)),
	}
	for _, entry := range w {
		area := dex.EncounterArea{
			Name:        entry.LocationArea.Name,
			DisplayName: DisplayName(entry.LocationArea.Name),
			Versions:    make([]string, 0, len(entry.VersionDetails)),
		}
		for _, version := range entry.VersionDetails {
			area.Versions = append(area.Versions, version.Version.Name)
			if version.MaxChance > area.MaxChance {
				area.MaxChance = version.MaxChance
			}
		}
		set.Areas = append(set.Areas, area)
	}
	return set
}

// EncodeEncounterSet converts a domain encounter set to its storage row.
func EncodeEncounterSet(d dex.EncounterSet, fetchedAt time.Time) EncounterSetRow {
	return EncounterSetRow{
		PokemonID: d.PokemonID,
		AreasBlob: marshalBlob(d.Areas),
		FetchedAt: fetchedAt,
	}
}

// DecodeEncounterSet restores a domain encounter set from its storage row,
// reapplying the display-name casing the blob does not carry.
func DecodeEncounterSet(row EncounterSetRow) dex.EncounterSet {
	set := dex.EncounterSet{PokemonID: row.PokemonID}
	unmarshalBlob(row.AreasBlob, &set.Areas)
	for i := range set.Areas {
		set.Areas[i].DisplayName = DisplayName(set.Areas[i].Name)
	}
	return set
}

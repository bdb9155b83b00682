package codec

import (
	"strings"
	"time"

	"github.com/mobiledex/pokedex-api/internal/clients/pokeapi"
	"github.com/mobiledex/pokedex-api/internal/entities/dex"
)

const englishLanguage = "en"

// SpeciesFromWire converts the species payload into the domain shape,
// picking the English flavor text and genus. Flavor text arrives with
// layout control characters baked in; those are normalized to spaces.
func SpeciesFromWire(w *pokeapi.SpeciesResponse) dex.Species {
	if w == nil {
		return dex.Species{}
	}

	s := dex.Species{
		ID:          w.ID,
		Name:        w.Name,
		DisplayName: DisplayName(w.Name),
		CaptureRate: w.CaptureRate,
		GenderRate:  w.GenderRate,
		Legendary:   w.IsLegendary,
		Mythical:    w.IsMythical,
	}

	for _, entry := range w.FlavorTextEntries {
		if entry.Language.Name == englishLanguage {
			s.FlavorText = cleanFlavorText(entry.FlavorText)
			break
		}
	}
	for _, genus := range w.Genera {
		if genus.Language.Name == englishLanguage {
			s.Genus = genus.Genus
			break
		}
	}
	if w.EvolutionChain != nil {
		s.EvolutionChainID = ExtractID(w.EvolutionChain.URL)
	}

	return s
}

func cleanFlavorText(text string) string {
	replacer := strings.NewReplacer("\n", " ", "\f", " ", "\r", " ")
	return strings.Join(strings.Fields(replacer.Replace(text)), " ")
}

// EncodeSpecies converts a domain species to its storage row.
func EncodeSpecies(d dex.Species, fetchedAt time.Time) SpeciesRow {
	return SpeciesRow{
		ID:               d.ID,
		Name:             d.Name,
		Genus:            d.Genus,
		FlavorText:       d.FlavorText,
		CaptureRate:      d.CaptureRate,
		GenderRate:       d.GenderRate,
		Legendary:        d.Legendary,
		Mythical:         d.Mythical,
		EvolutionChainID: d.EvolutionChainID,
		FetchedAt:        fetchedAt,
	}
}

// DecodeSpecies restores a domain species from its storage row.
func DecodeSpecies(row SpeciesRow) dex.Species {
	return dex.Species{
		ID:               row.ID,
		Name:             row.Name,
		DisplayName:      DisplayName(row.Name),
		Genus:            row.Genus,
		FlavorText:       row.FlavorText,
		CaptureRate:      row.CaptureRate,
		GenderRate:       row.GenderRate,
		Legendary:        row.Legendary,
		Mythical:         row.Mythical,
		EvolutionChainID: row.EvolutionChainID,
	}
}

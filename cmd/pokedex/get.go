package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	entities "github.com/mobiledex/pokedex-api/internal/entities/dex"
	"github.com/mobiledex/pokedex-api/internal/orchestrators/dex"
)

var getCmd = &cobra.Command{
	Use:   "get <resource> <id-or-name>",
	Short: "Get one resource, cache first",
	Long: `Get one resource by numeric ID (or by name, for pokemon). Resources:
pokemon, species, ability, move, type, evolution, encounters.`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(_ *cobra.Command, args []string) error {
	service, err := newService()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	kind, arg := args[0], args[1]
	id, _ := strconv.Atoi(arg)

	switch kind {
	case "pokemon":
		input := &dex.GetPokemonInput{ID: id}
		if id == 0 {
			input = &dex.GetPokemonInput{Name: strings.ToLower(arg)}
		}
		return consume(service.GetPokemon(ctx, input), printDetails)
	case "species":
		return consume(service.GetSpecies(ctx, &dex.GetSpeciesInput{ID: id}), printSpecies)
	case "ability":
		return consume(service.GetAbility(ctx, &dex.GetAbilityInput{ID: id}), printAbility)
	case "move":
		return consume(service.GetMove(ctx, &dex.GetMoveInput{ID: id}), printMove)
	case "type":
		return consume(service.GetType(ctx, &dex.GetTypeInput{ID: id}), printType)
	case "evolution":
		return consume(service.GetEvolutionChain(ctx, &dex.GetEvolutionChainInput{ID: id}), printEvolution)
	case "encounters":
		return consume(service.GetEncounters(ctx, &dex.GetEncountersInput{PokemonID: id}), printEncounters)
	default:
		return fmt.Errorf("unknown resource %q", kind)
	}
}

func printDetails(d entities.PokemonDetails) {
	if d.ID == 0 {
		return
	}
	fmt.Printf("#%d %s\n", d.ID, d.DisplayName)
	fmt.Printf("  height: %d  weight: %d  base experience: %d\n", d.Height, d.Weight, d.BaseExperience)
	if len(d.Types) > 0 {
		names := make([]string, 0, len(d.Types))
		for _, t := range d.Types {
			names = append(names, t.Name)
		}
		fmt.Printf("  types: %s\n", strings.Join(names, ", "))
	}
	for _, a := range d.Abilities {
		hidden := ""
		if a.Hidden {
			hidden = " (hidden)"
		}
		fmt.Printf("  ability: %s%s\n", a.Name, hidden)
	}
	fmt.Printf("  moves: %d  stats: %d\n", len(d.Moves), len(d.Stats))
}

func printSpecies(sp entities.Species) {
	if sp.ID == 0 {
		return
	}
	fmt.Printf("#%d %s (%s)\n", sp.ID, sp.DisplayName, sp.Genus)
	fmt.Printf("  capture: %s  gender: %s\n", sp.CaptureTierOf(), formatGender(sp.GenderSplitOf()))
	if sp.Legendary {
		fmt.Println("  legendary")
	}
	if sp.Mythical {
		fmt.Println("  mythical")
	}
	if sp.FlavorText != "" {
		fmt.Printf("  %s\n", sp.FlavorText)
	}
}

func printAbility(a entities.Ability) {
	if a.ID == 0 {
		return
	}
	fmt.Printf("#%d %s\n", a.ID, a.DisplayName)
	if a.ShortEffect != "" {
		fmt.Printf("  %s\n", a.ShortEffect)
	}
	fmt.Printf("  holders: %d\n", len(a.Holders))
}

func printMove(m entities.Move) {
	if m.ID == 0 {
		return
	}
	fmt.Printf("#%d %s (%s, %s)\n", m.ID, m.DisplayName, m.Type, m.DamageClass)
	fmt.Printf("  power: %s  accuracy: %s  pp: %s\n",
		intOrDash(m.Power), intOrDash(m.Accuracy), intOrDash(m.PP))
	if m.Effect != "" {
		fmt.Printf("  %s\n", m.Effect)
	}
}

func printType(t entities.TypeInfo) {
	if t.ID == 0 {
		return
	}
	fmt.Printf("#%d %s\n", t.ID, t.DisplayName)
	fmt.Printf("  double damage to: %s\n", strings.Join(t.Relations.DoubleTo, ", "))
	fmt.Printf("  double damage from: %s\n", strings.Join(t.Relations.DoubleFrom, ", "))
}

func printEvolution(c entities.EvolutionChain) {
	if c.Root == nil {
		return
	}
	fmt.Printf("evolution chain #%d\n", c.ID)
	for _, ref := range c.Flatten() {
		fmt.Printf("  #%d %s\n", ref.ID, ref.Name)
	}
}

func printEncounters(e entities.EncounterSet) {
	if len(e.Areas) == 0 {
		fmt.Println("no encounter areas")
		return
	}
	for _, area := range e.Areas {
		fmt.Printf("  %s (max chance %d%%): %s\n",
			area.DisplayName, area.MaxChance, strings.Join(area.Versions, ", "))
	}
}

func formatGender(g entities.GenderSplit) string {
	if g.Genderless {
		return "genderless"
	}
	return fmt.Sprintf("%.1f%% female / %.1f%% male", g.FemalePercent, g.MalePercent)
}

func intOrDash(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

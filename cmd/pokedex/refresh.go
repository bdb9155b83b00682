package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mobiledex/pokedex-api/internal/orchestrators/dex"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh <id>",
	Short: "Re-fetch a Pokémon's details from the remote API",
	Long: `Re-fetch details regardless of cache state and replace the cached
row. Cached encounters for the Pokémon are dropped too.`,
	Args: cobra.ExactArgs(1),
	RunE: runRefresh,
}

func runRefresh(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	service, err := newService()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return consume(service.RefreshPokemon(ctx, &dex.RefreshPokemonInput{ID: id}), printDetails)
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	entities "github.com/mobiledex/pokedex-api/internal/entities/dex"
	"github.com/mobiledex/pokedex-api/internal/orchestrators/dex"
)

var favoriteUnset bool

var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Mark a cached Pokémon as a favorite",
	Long: `Flip the favorite flag on a cached summary. Purely local; the flag
survives later list re-fetches.`,
	Args: cobra.ExactArgs(1),
	RunE: runFavorite,
}

func init() {
	favoriteCmd.Flags().BoolVar(&favoriteUnset, "unset", false, "Clear the flag instead of setting it")
}

func runFavorite(_ *cobra.Command, args []string) error {
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

	return consume(service.SetFavorite(ctx, &dex.SetFavoriteInput{
		ID:       id,
		Favorite: !favoriteUnset,
	}), func(s entities.PokemonSummary) {
		if s.ID == 0 {
			return
		}
		state := "favorite"
		if !s.Favorite {
			state = "not a favorite"
		}
		fmt.Printf("#%d %s is now %s\n", s.ID, s.DisplayName, state)
	})
}

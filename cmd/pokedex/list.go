package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	entities "github.com/mobiledex/pokedex-api/internal/entities/dex"
	"github.com/mobiledex/pokedex-api/internal/orchestrators/dex"
)

var (
	listLimit  int
	listOffset int
	listPages  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Pokémon summaries",
	Long: `List Pokémon summaries one window at a time. With --pages > 1 the
windows are merged into a single de-duplicated, id-ordered view.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", dex.DefaultPageLimit, "Page size")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "Start offset")
	listCmd.Flags().IntVar(&listPages, "pages", 1, "Number of pages to load and merge")
}

func runList(_ *cobra.Command, _ []string) error {
	service, err := newService()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pager := dex.NewPager()
	offset := listOffset
	for i := 0; i < listPages; i++ {
		var page *entities.PokemonPage
		err := consume(service.GetPokemonPage(ctx, &dex.GetPokemonPageInput{
			Limit:  listLimit,
			Offset: offset,
		}), func(p entities.PokemonPage) {
			page = &p
		})
		if err != nil {
			return err
		}
		if page == nil {
			return fmt.Errorf("operation cancelled")
		}

		pager.Merge(*page)
		next := pager.NextOffset()
		if next == nil {
			break
		}
		offset = *next
	}

	for _, item := range pager.Items() {
		star := " "
		if item.Favorite {
			star = "*"
		}
		fmt.Printf("%s #%-4d %s\n", star, item.ID, item.DisplayName)
	}
	fmt.Printf("%d of %d\n", len(pager.Items()), pager.Total())
	return nil
}

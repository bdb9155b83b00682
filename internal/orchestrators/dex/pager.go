package dex

import (
	"context"
	"log/slog"
	"sort"

	"github.com/mobiledex/pokedex-api/internal/codec"
	"github.com/mobiledex/pokedex-api/internal/entities/dex"
	"github.com/mobiledex/pokedex-api/internal/errors"
	"github.com/mobiledex/pokedex-api/internal/repositories/pokemon"
	"github.com/mobiledex/pokedex-api/internal/resource"
)

func (o *orchestrator) GetPokemonPage(ctx context.Context, input *GetPokemonPageInput) <-chan resource.Resource[dex.PokemonPage] {
	return stream(ctx, func(ctx context.Context) resource.Resource[dex.PokemonPage] {
		if input == nil {
			input = &GetPokemonPageInput{}
		}
		limit := input.Limit
		if limit <= 0 {
			limit = DefaultPageLimit
		}
		if input.Offset < 0 {
			return resource.Error("offset must not be negative", emptyPage())
		}

		opID := o.idGen.Generate()

		cached, err := o.pokemonRepo.ListSummaries(ctx, pokemon.ListSummariesInput{
			Offset: input.Offset,
			Limit:  limit,
		})
		if err != nil {
			slog.WarnContext(ctx, "cache read failed, falling through to fetch",
				"op", "get_pokemon_page", "op_id", opID, "error", err)
			cached = &pokemon.ListSummariesOutput{}
		}

		// The window is served locally only when every slot is cached.
		if len(cached.Rows) == limit {
			slog.DebugContext(ctx, "cache hit", "op", "get_pokemon_page", "op_id", opID,
				"offset", input.Offset, "limit", limit)
			return resource.Success(pageFromRows(cached.Rows, cached.Total, input.Offset, limit))
		}

		wire, err := o.client.FetchPokemonPage(ctx, limit, input.Offset)
		if err != nil {
			slog.WarnContext(ctx, "fetch failed", "op", "get_pokemon_page", "op_id", opID,
				"offset", input.Offset, "limit", limit, "error", err)
			// Partial cached rows are the fallback; Items stays non-nil.
			fallback := pageFromRows(cached.Rows, cached.Total, input.Offset, limit)
			fallback.NextOffset = nil
			return resource.Error(errors.GetMessage(err), fallback)
		}

		if ctx.Err() != nil {
			return resource.Error(errors.GetMessage(errors.Canceled("operation cancelled")), emptyPage())
		}

		items := make([]dex.PokemonSummary, 0, len(wire.Results))
		if len(wire.Results) > 0 {
			rows := make([]codec.PokemonSummaryRow, 0, len(wire.Results))
			now := o.clock.Now()
			for _, ref := range wire.Results {
				rows = append(rows, codec.EncodePokemonSummary(codec.PokemonSummaryFromWire(ref), now))
			}

			written, err := o.pokemonRepo.UpsertSummaries(ctx, pokemon.UpsertSummariesInput{
				Rows:  rows,
				Total: wire.Count,
			})
			if err != nil {
				slog.ErrorContext(ctx, "write-through failed", "op", "get_pokemon_page",
					"op_id", opID, "error", err)
				for _, row := range rows {
					items = append(items, codec.DecodePokemonSummary(row))
				}
			} else {
				// Written rows carry favorite flags preserved from
				// earlier fetches.
				for _, row := range written.Rows {
					items = append(items, codec.DecodePokemonSummary(row))
				}
			}
		}

		page := dex.PokemonPage{Items: items, Total: wire.Count}
		if wire.Next != nil {
			next := input.Offset + limit
			page.NextOffset = &next
		}
		return resource.Success(page)
	})
}

func emptyPage() dex.PokemonPage {
	return dex.PokemonPage{Items: []dex.PokemonSummary{}}
}

func pageFromRows(rows []codec.PokemonSummaryRow, total, offset, limit int) dex.PokemonPage {
	items := make([]dex.PokemonSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, codec.DecodePokemonSummary(row))
	}
	page := dex.PokemonPage{Items: items, Total: total}
	if next := offset + limit; next < total {
		page.NextOffset = &next
	}
	return page
}

// Pager accumulates successive list pages into one de-duplicated,
// ascending-id view. Merging the same page again is a no-op apart from
// refreshing the stored entries, so retries are safe.
type Pager struct {
	byID  map[int]dex.PokemonSummary
	total int
	next  *int
}

// NewPager creates an empty pager.
func NewPager() *Pager {
	return &Pager{byID: make(map[int]dex.PokemonSummary)}
}

// Merge folds one page into the accumulated view. Entries sharing an ID are
// replaced, last seen wins. The page's total and next-offset cursor replace
// the pager's.
func (p *Pager) Merge(page dex.PokemonPage) {
	for _, item := range page.Items {
		p.byID[item.ID] = item
	}
	p.total = page.Total
	if page.NextOffset == nil {
		p.next = nil
	} else {
		next := *page.NextOffset
		p.next = &next
	}
}

// Items returns the accumulated summaries in ascending ID order. The slice
// is freshly allocated and never nil.
func (p *Pager) Items() []dex.PokemonSummary {
	items := make([]dex.PokemonSummary, 0, len(p.byID))
	for _, item := range p.byID {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Total returns the total reported by the most recently merged page.
func (p *Pager) Total() int {
	return p.total
}

// NextOffset returns the cursor for the next page, or nil when the most
// recently merged page was the last.
func (p *Pager) NextOffset() *int {
	return p.next
}

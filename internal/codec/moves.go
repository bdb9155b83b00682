package codec

import (
	"time"

	"github.com/mobiledex/pokedex-api/internal/clients/pokeapi"
	"github.com/mobiledex/pokedex-api/internal/entities/dex"
)

// MoveFromWire converts a move payload into the domain shape. Accuracy,
// power and PP stay nil when the move has none; the effect text prefers
// the English short effect and falls back to the long one.
func MoveFromWire(w *pokeapi.MoveResponse) dex.Move {
	if w == nil {
		return dex.Move{}
	}

	m := dex.Move{
		ID:          w.ID,
		Name:        w.Name,
		DisplayName: DisplayName(w.Name),
		Accuracy:    copyIntPtr(w.Accuracy),
		Power:       copyIntPtr(w.Power),
		PP:          copyIntPtr(w.PP),
		Priority:    w.Priority,
	}
	if w.Type != nil {
		m.Type = w.Type.Name
	}
	if w.DamageClass != nil {
		m.DamageClass = w.DamageClass.Name
	}
	for _, entry := range w.EffectEntries {
		if entry.Language.Name == englishLanguage {
			m.Effect = entry.ShortEffect
			if m.Effect == "" {
				m.Effect = entry.Effect
			}
			break
		}
	}
	return m
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// EncodeMove converts a domain move to its storage row. The row carries
// the optional numbers directly; there is nothing nested to flatten.
func EncodeMove(d dex.Move, fetchedAt time.Time) MoveRow {
	return MoveRow{
		ID:          d.ID,
		Name:        d.Name,
		Accuracy:    copyIntPtr(d.Accuracy),
		Power:       copyIntPtr(d.Power),
		PP:          copyIntPtr(d.PP),
		Priority:    d.Priority,
		Type:        d.Type,
		DamageClass: d.DamageClass,
		Effect:      d.Effect,
		FetchedAt:   fetchedAt,
	}
}

// DecodeMove restores a domain move from its storage row.
func DecodeMove(row MoveRow) dex.Move {
	return dex.Move{
		ID:          row.ID,
		Name:        row.Name,
		DisplayName: DisplayName(row.Name),
		Accuracy:    copyIntPtr(row.Accuracy),
		Power:       copyIntPtr(row.Power),
		PP:          copyIntPtr(row.PP),
		Priority:    row.Priority,
		Type:        row.Type,
		DamageClass: row.DamageClass,
		Effect:      row.Effect,
	}
}

// AbilityFromWire converts an ability payload into the domain shape.
func AbilityFromWire(w *pokeapi.AbilityResponse) dex.Ability {
	if w == nil {
		return dex.Ability{}
	}

	a := dex.Ability{
		ID:          w.ID,
		Name:        w.Name,
		DisplayName: DisplayName(w.Name),
		Holders:     make([]dex.AbilityHolder, 0, len(w.Pokemon)),
	}
	for _, entry := range w.EffectEntries {
		if entry.Language.Name == englishLanguage {
			a.Effect = entry.Effect
			a.ShortEffect = entry.ShortEffect
			break
		}
	}
	for _, holder := range w.Pokemon {
		a.Holders = append(a.Holders, dex.AbilityHolder{
			PokemonID:   ExtractID(holder.Pokemon.URL),
			PokemonName: holder.Pokemon.Name,
			Hidden:      holder.IsHidden,
		})
	}
	return a
}

// EncodeAbility converts a domain ability to its storage row.
func EncodeAbility(d dex.Ability, fetchedAt time.Time) AbilityRow {
	return AbilityRow{
		ID:          d.ID,
		Name:        d.Name,
		Effect:      d.Effect,
		ShortEffect: d.ShortEffect,
		HoldersBlob: marshalBlob(d.Holders),
		FetchedAt:   fetchedAt,
	}
}

// DecodeAbility restores a domain ability from its storage row.
func DecodeAbility(row AbilityRow) dex.Ability {
	a := dex.Ability{
		ID:          row.ID,
		Name:        row.Name,
		DisplayName: DisplayName(row.Name),
		Effect:      row.Effect,
		ShortEffect: row.ShortEffect,
	}
	unmarshalBlob(row.HoldersBlob, &a.Holders)
	return a
}

// TypeFromWire converts a type payload into the domain shape. Damage
// relation buckets come out empty, never nil.
func TypeFromWire(w *pokeapi.TypeResponse) dex.TypeInfo {
	if w == nil {
		return dex.TypeInfo{}
	}

	t := dex.TypeInfo{
		ID:          w.ID,
		Name:        w.Name,
		DisplayName: DisplayName(w.Name),
		Relations: dex.DamageRelations{
			DoubleFrom: resourceNames(w.DamageRelations.DoubleDamageFrom),
			DoubleTo:   resourceNames(w.DamageRelations.DoubleDamageTo),
			HalfFrom:   resourceNames(w.DamageRelations.HalfDamageFrom),
			HalfTo:     resourceNames(w.DamageRelations.HalfDamageTo),
			NoneFrom:   resourceNames(w.DamageRelations.NoDamageFrom),
			NoneTo:     resourceNames(w.DamageRelations.NoDamageTo),
		},
		Pokemon: make([]string, 0, len(w.Pokemon)),
	}
	for _, entry := range w.Pokemon {
		t.Pokemon = append(t.Pokemon, entry.Pokemon.Name)
	}
	return t
}

func resourceNames(refs []pokeapi.NamedResource) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return names
}

// EncodeType converts a domain type to its storage row.
func EncodeType(d dex.TypeInfo, fetchedAt time.Time) TypeRow {
	return TypeRow{
		ID:            d.ID,
		Name:          d.Name,
		RelationsBlob: marshalBlob(d.Relations),
		PokemonBlob:   marshalBlob(d.Pokemon),
		FetchedAt:     fetchedAt,
	}
}

// DecodeType restores a domain type from its storage row.
func DecodeType(row TypeRow) dex.TypeInfo {
	t := dex.TypeInfo{
		ID:          row.ID,
		Name:        row.Name,
		DisplayName: DisplayName(row.Name),
	}
	unmarshalBlob(row.RelationsBlob, &t.Relations)
	unmarshalBlob(row.PokemonBlob, &t.Pokemon)
	return t
}

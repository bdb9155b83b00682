// Package codec converts each entity between its wire shape (as fetched),
// its storage shape (nested graphs flattened to JSON text blobs), and its
// domain shape (as consumed by observers).
//
// All conversions are pure and by-value. Display-name casing is applied on
// the way out to the domain and never persisted, so a storage round-trip
// reproduces the domain value exactly.
package codec

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// artworkURLFormat is the official artwork location for a Pokémon ID. The
// image itself is fetched by an external image loader; we only produce the
// URL string.
const artworkURLFormat = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"

// ExtractID derives a numeric ID from a resource URL's trailing path
// segment, e.g. ".../pokemon/25/" yields 25. A URL with a non-numeric
// trailing segment yields 0; that is a documented edge case, not an error.
func ExtractID(url string) int {
	trimmed := strings.TrimRight(url, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 {
		return 0
	}
	id, err := strconv.Atoi(trimmed[idx+1:])
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// DisplayName upper-cases only the first rune of a raw lowercase wire name.
func DisplayName(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// ArtworkURL returns the official artwork URL for a Pokémon ID, or the
// empty string when the ID is unknown.
func ArtworkURL(id int) string {
	if id <= 0 {
		return ""
	}
	return fmt.Sprintf(artworkURLFormat, id)
}

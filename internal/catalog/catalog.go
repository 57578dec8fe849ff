// Package catalog provides the curated style and artist choices offered by
// the UI, plus normalization for free-entered values so composed prompts
// read consistently ("by monet" becomes "by Monet").
package catalog

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var styles = []string{
	"impressionism",
	"surrealism",
	"cubism",
	"art nouveau",
	"pop art",
	"ukiyo-e",
	"watercolor",
	"oil painting",
	"pixel art",
	"photorealism",
}

var artists = []string{
	"Claude Monet",
	"Vincent van Gogh",
	"Salvador Dali",
	"Pablo Picasso",
	"Katsushika Hokusai",
	"Frida Kahlo",
	"Gustav Klimt",
	"Georgia O'Keeffe",
}

var titleCaser = cases.Title(language.English)

// Styles returns the selector choices in display order.
func Styles() []string {
	return append([]string(nil), styles...)
}

// Artists returns the selector choices in display order.
func Artists() []string {
	return append([]string(nil), artists...)
}

// NormalizeStyle lowercases a style so it slots into the
// "in the style of ..." clause.
func NormalizeStyle(style string) string {
	return strings.ToLower(strings.Join(strings.Fields(style), " "))
}

// NormalizeArtist title-cases an artist name for the "by ..." clause. A
// curated entry keeps its canonical spelling.
func NormalizeArtist(artist string) string {
	normalized := strings.Join(strings.Fields(artist), " ")
	if normalized == "" {
		return ""
	}
	canonical, found := lo.Find(artists, func(a string) bool {
		return strings.EqualFold(a, normalized)
	})
	if found {
		return canonical
	}
	return titleCaser.String(strings.ToLower(normalized))
}

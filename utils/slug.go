package utils

import "github.com/gosimple/slug"

// Slugify turns titles and place names into URL-safe identifiers
func Slugify(s string) string {
	return slug.Make(s)
}

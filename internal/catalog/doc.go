// Package catalog holds the fixed set of releases users can search.
//
// The catalog is built once, either from the built-in seed data or from a
// JSON file, and never changes afterwards:
//
//	cat, err := catalog.LoadFile(settings.CatalogPath) // "" uses the seed
//	results := cat.Search("floyd")
//
// Search matches the query against title, artist and genre as a
// case-insensitive substring. Case folding uses golang.org/x/text/cases so
// that non-ASCII titles fold the same way as ASCII ones. Folded keys are
// computed when the catalog is built, so repeated searches only fold the
// query.
package catalog

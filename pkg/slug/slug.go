// Package slug derives stable, URL-safe identifiers from merchant names.
// The slug is used as the reference id prefix for rail-side wallets, so two
// names differing only in case or whitespace must map to the same slug.
package slug

import "strings"

// Make lowercases name and collapses every run of whitespace into a single
// hyphen. Leading and trailing whitespace produce no separator.
func Make(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, "-")
}

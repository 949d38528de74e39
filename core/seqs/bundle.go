// core/seqs/bundle.go
package seqs

import "strings"

// BundleDelimiter separates independently assembled segments that upstream
// stages pack into a single FASTA record.
const BundleDelimiter = 'X'

// SplitBundles splits seq on BundleDelimiter. The delimiter is dropped, order
// is kept, and adjacent delimiters yield an empty bundle.
func SplitBundles(seq string) []string {
	return strings.Split(seq, string(BundleDelimiter))
}

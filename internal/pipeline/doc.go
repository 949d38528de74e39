// Package pipeline drives graph construction over FASTA inputs.
//
// Merged builds one shared graph sequentially across every record of every
// file. PerRecord builds one private graph per record on a pool of worker
// goroutines that claim records from a shared fasta.Source; only the claim
// and the emit are synchronized, graph construction is not.
package pipeline

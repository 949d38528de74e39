// core/seqs/revcomp.go
package seqs

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['a'] = 't'
	complement['c'] = 'g'
	complement['g'] = 'c'
	complement['t'] = 'a'
}

// RevComp returns the reverse complement of seq. Bytes outside ACGT/acgt
// complement to 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// ReverseComplement is the string form of RevComp.
func ReverseComplement(seq string) string {
	return string(RevComp([]byte(seq)))
}

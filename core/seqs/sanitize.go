// core/seqs/sanitize.go
package seqs

// IsClean reports whether seq is made only of upper-case A, C, G and T.
func IsClean(seq string) bool {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// Sanitize upper-cases seq and replaces anything outside ACGT with 'A'.
// A clean input is returned as is.
func Sanitize(seq string) string {
	if IsClean(seq) {
		return seq
	}
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b := seq[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		switch b {
		case 'A', 'C', 'G', 'T':
			out[i] = b
		default:
			out[i] = 'A'
		}
	}
	return string(out)
}

package cards

// NaturalLess compares two strings with embedded numbers compared by value,
// so "AA-2" sorts before "AA-10". Non-digit runs compare bytewise.
func NaturalLess(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			// skip leading zeros, then compare run length, then digits
			si, sj := i, j
			for si < len(a) && a[si] == '0' {
				si++
			}
			for sj < len(b) && b[sj] == '0' {
				sj++
			}
			ei, ej := si, sj
			for ei < len(a) && isDigit(a[ei]) {
				ei++
			}
			for ej < len(b) && isDigit(b[ej]) {
				ej++
			}
			if ei-si != ej-sj {
				return ei-si < ej-sj
			}
			if na, nb := a[si:ei], b[sj:ej]; na != nb {
				return na < nb
			}
			// equal value: fewer leading zeros first
			if (si-i) != (sj-j) {
				return (si - i) < (sj - j)
			}
			i, j = ei, ej
			continue
		}
		if a[i] != b[j] {
			return a[i] < b[j]
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

package validate

// Dezenas reports whether the slice is a valid Lotofácil bet: exactly 15
// distinct numbers in [1,25].
func Dezenas(dezenas []int32) bool {
	if len(dezenas) != 15 {
		return false
	}
	var seen [26]bool
	for _, d := range dezenas {
		if d < 1 || d > 25 || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

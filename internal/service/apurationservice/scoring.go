package apurationservice

// CountHits counts how many of a ticket's dezenas appear in the drawn set.
// Both slices hold numbers in [1,25]; duplicates never occur in persisted
// rows, so membership is enough.
func CountHits(ticket, drawn []int32) int {
	var set [26]bool
	for _, d := range drawn {
		if d >= 1 && d <= 25 {
			set[d] = true
		}
	}
	hits := 0
	for _, d := range ticket {
		if d >= 1 && d <= 25 && set[d] {
			hits++
		}
	}
	return hits
}

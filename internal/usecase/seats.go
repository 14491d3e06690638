package usecase

import "sort"

// shared seat-list helpers for the booking services

func sortSeats(seats []int) {
	sort.Ints(seats)
}

// intersectSeats returns the members of requested also present in taken,
// sorted, for conflict reporting.
func intersectSeats(requested, taken []int) []int {
	set := make(map[int]struct{}, len(taken))
	for _, seat := range taken {
		set[seat] = struct{}{}
	}

	var conflicts []int
	for _, seat := range requested {
		if _, ok := set[seat]; ok {
			conflicts = append(conflicts, seat)
		}
	}
	sortSeats(conflicts)
	return conflicts
}

// hasDuplicateSeats reports true when seats contains the same number twice.
func hasDuplicateSeats(seats []int) bool {
	seen := make(map[int]struct{}, len(seats))
	for _, seat := range seats {
		if _, ok := seen[seat]; ok {
			return true
		}
		seen[seat] = struct{}{}
	}
	return false
}

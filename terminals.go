package airportfta

import "fmt"

// CountTerminals reads a group descriptor [groups, count1, count2, ...]
// and returns the total count and the number of groups. A nil descriptor
// has no groups. Every group must hold at least one terminal.
func CountTerminals(desc []int) (count, groups int, err error) {
	if len(desc) == 0 {
		return 0, 0, nil
	}
	groups = desc[0]
	if groups < 0 || groups > len(desc)-1 {
		return 0, 0, fmt.Errorf("descriptor declares %d groups, has %d counts", groups, len(desc)-1)
	}
	for i, c := range desc[1 : groups+1] {
		if c <= 0 {
			return 0, 0, fmt.Errorf("group %d: %w", i, ErrEmptyGroup)
		}
		count += c
	}
	return count, groups, nil
}

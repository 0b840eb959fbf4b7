package tilemapping

import (
	"fmt"
)

// SortMW sorts the machine word in place. Insertion sort; racks and plays
// are tiny.
func SortMW(l MachineWord) {
	ll := len(l)
	for i := 1; i < ll; i++ {
		for j := i; j > 0 && l[j-1] > l[j]; j-- {
			l[j-1], l[j] = l[j], l[j-1]
		}
	}
}

// Leave calculates the leave from the rack and the made play, validating
// along the way that every played tile was actually on the rack. A
// designated blank consumes a blank; a played-through marker consumes
// nothing.
func Leave(rack MachineWord, play MachineWord, isExchange bool) (MachineWord, error) {
	rackletters := map[MachineLetter]int{}
	for _, l := range rack {
		rackletters[l]++
	}
	leave := make([]MachineLetter, 0, len(rack))

	for _, t := range play {
		if t == 0 && !isExchange {
			// play-through
			continue
		}
		if t.IsBlanked() {
			if isExchange {
				return nil, fmt.Errorf("cannot exchange a designated blank")
			}
			t = 0
		}
		if rackletters[t] != 0 {
			rackletters[t]--
		} else {
			return nil, fmt.Errorf("tile in play but not in rack: %v", t)
		}
	}

	for k, v := range rackletters {
		for i := 0; i < v; i++ {
			leave = append(leave, k)
		}
	}
	SortMW(leave)
	return leave, nil
}

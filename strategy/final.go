package strategy

import "hog/game"

// Final is the composite tournament strategy: free bacon near the goal to
// avoid a Pig out, swap-seeking rolls when far behind, and a roll count
// scaled to the deficit otherwise.
func Final() game.Strategy {
	swap := Swap()
	return func(score, opponentScore int) int {
		bacon := game.FreeBacon(opponentScore)
		losing := opponentScore - score

		if score > 90 {
			return 0
		}

		if losing > 20 {
			// Either free bacon or a ten-dice Pig out can land on an exact
			// double and force a favorable swap.
			if (score+bacon)*2 == opponentScore {
				return 0
			}
			if (score+1)*2 == opponentScore {
				return 10
			}
			if score*2+1 == opponentScore {
				return 10
			}
		}

		switch {
		case losing > 40:
			return 10
		case losing > 20:
			return 8
		case losing > 10:
			return 6
		case losing == 0:
			return 4
		}
		return swap(score, opponentScore)
	}
}

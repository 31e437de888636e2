package game

// Score evaluates guess against answer, one status per letter.
//
// Pass 1 marks exact matches as right.
// Pass 2 walks the remaining positions left to right. A letter is misplaced
// while the answer still holds an occurrence of it that is claimed neither by
// a right position (anywhere in the word) nor by an earlier misplaced one.
//
// Both words must be lowercase and of equal length; Score returns nil otherwise.
func Score(answer, guess string) []LetterStatus {
	n := len(answer)
	if len(guess) != n {
		return nil
	}
	out := make([]LetterStatus, n)

	var inAnswer, claimedRight [26]int
	for i := 0; i < n; i++ {
		if j := idx(answer[i]); j >= 0 {
			inAnswer[j]++
		}
		if guess[i] == answer[i] {
			out[i] = StatusRight
			if j := idx(guess[i]); j >= 0 {
				claimedRight[j]++
			}
		}
	}

	var claimedMisplaced [26]int
	for i := 0; i < n; i++ {
		if out[i] == StatusRight {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && inAnswer[j]-claimedRight[j]-claimedMisplaced[j] > 0 {
			out[i] = StatusMisplaced
			claimedMisplaced[j]++
		} else {
			out[i] = StatusWrong
		}
	}
	return out
}

// idx maps a lowercase ASCII letter to 0..25, or -1 for anything else.
func idx(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}

// allRight reports whether every status is StatusRight.
func allRight(s []LetterStatus) bool {
	if len(s) == 0 {
		return false
	}
	for _, x := range s {
		if x != StatusRight {
			return false
		}
	}
	return true
}

// internal/daily/daily.go
//
// Keys used inside the daily-state document.

package daily

import (
	"fmt"
)

// playStatsKey names the statistics entry inside a state record.
const playStatsKey = "play_stats"

// StateKey returns the composite key under which progress for one word-list
// fingerprint and guess limit is kept.
func StateKey(fingerprint string, maxGuesses int) string {
	return fmt.Sprintf("wldig:%s_maxg:%d", fingerprint, maxGuesses)
}

// DayKey returns the entry name for a day offset, e.g. "day:412".
func DayKey(dayOffset int) string {
	return fmt.Sprintf("day:%d", dayOffset)
}

package flappy

import "fmt"

// SessionStats aggregates finished runs for as long as the session lives.
// Nothing here is persisted.
type SessionStats struct {
	HighScore   int
	TotalScore  int
	GamesPlayed int
}

// Record adds a finished run.
func (s *SessionStats) Record(score int) {
	s.HighScore = max(s.HighScore, score)
	s.TotalScore += score
	s.GamesPlayed++
}

// Average returns the mean score, or 0 before the first game.
func (s SessionStats) Average() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalScore) / float64(s.GamesPlayed)
}

// FormatAverage formats an average score with two decimals.
func FormatAverage(avg float64) string {
	return fmt.Sprintf("%.2f", avg)
}

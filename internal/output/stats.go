package output

import (
	"time"

	"github.com/masmgr/historian/internal/burst"
	"github.com/masmgr/historian/internal/entropy"
	"github.com/masmgr/historian/internal/history"
)

// HistoryStats summarizes who owns the surviving lines of a file and when they were written.
type HistoryStats struct {
	Entries          int     `json:"entries"`
	Lines            int     `json:"lines"`
	Authors          int     `json:"authors"`
	TopAuthor        string  `json:"topAuthor,omitempty"`
	TopAuthorShare   float64 `json:"topAuthorShare"`
	OwnershipEntropy float64 `json:"ownershipEntropy"`
	BurstScore       float64 `json:"burstScore"`
	BurstWindowDays  int     `json:"burstWindowDays"`
}

// ComputeStats derives HistoryStats from the entries of log.
// A non-positive windowDays selects burst.DefaultWindowDays.
func ComputeStats(log *history.Log, windowDays int) HistoryStats {
	entries := log.Entries()
	calc := burst.NewCalculator(windowDays)

	linesByAuthor := make(map[string]int)
	dates := make([]time.Time, 0, len(entries))
	stats := HistoryStats{
		Entries:         len(entries),
		BurstWindowDays: calc.WindowDays(),
	}
	for _, e := range entries {
		stats.Lines += len(e.Lines)
		linesByAuthor[e.Commit.AuthorEmail] += len(e.Lines)
		dates = append(dates, e.Commit.Date)
	}

	stats.Authors = len(linesByAuthor)
	stats.TopAuthor, stats.TopAuthorShare = entropy.TopOwner(linesByAuthor)
	stats.OwnershipEntropy = entropy.Ownership(linesByAuthor)
	stats.BurstScore = calc.Score(dates)
	return stats
}

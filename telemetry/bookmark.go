package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkLongRally  BookmarkType = "long_rally"
	BookmarkComeback   BookmarkType = "comeback"
	BookmarkMatchPoint BookmarkType = "match_point"
)

// Bookmark represents an automatically triggered highlight.
type Bookmark struct {
	Type        BookmarkType
	MatchID     string
	Point       int
	Description string
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"match_id", b.MatchID,
		"point", b.Point,
		"description", b.Description,
	)
}

// minLongRally is the fewest paddle hits a rally needs to count as long.
const minLongRally = 6

// comebackDeficit is the lead a side must have overturned to trigger a comeback.
const comebackDeficit = 3

// BookmarkDetector detects notable points within a match.
type BookmarkDetector struct {
	// Rolling history of rally lengths (circular buffer)
	history     []int
	historySize int
	historyIdx  int
	historyFull bool

	winningScore int
	matchID      string
	maxDeficit   [2]int // largest deficit faced by left, right this match
	matchPoint   [2]bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize, winningScore int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:      make([]int, historySize),
		historySize:  historySize,
		winningScore: winningScore,
	}
}

// Check analyzes a freshly scored point and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(rec PointRecord) []Bookmark {
	if rec.MatchID != bd.matchID {
		bd.matchID = rec.MatchID
		bd.maxDeficit = [2]int{}
		bd.matchPoint = [2]bool{}
	}

	var bookmarks []Bookmark

	// Long rally: at least minLongRally hits and 2x the rolling average
	if b := bd.checkLongRally(rec); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Comeback: trailed by comebackDeficit or more, now level
	if b := bd.checkComeback(rec); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Match point: first time a side is one point from winning
	if b := bd.checkMatchPoint(rec); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(rec.RallyHits)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(hits int) {
	bd.history[bd.historyIdx] = hits
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []int {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkLongRally(rec PointRecord) *Bookmark {
	if rec.RallyHits < minLongRally {
		return nil
	}
	history := bd.getHistory()
	if len(history) > 0 {
		sum := 0
		for _, h := range history {
			sum += h
		}
		avg := float64(sum) / float64(len(history))
		if float64(rec.RallyHits) <= 2*avg {
			return nil
		}
	}
	return &Bookmark{
		Type:        BookmarkLongRally,
		MatchID:     rec.MatchID,
		Point:       rec.Point,
		Description: fmt.Sprintf("%d-hit rally won by %s", rec.RallyHits, rec.Scorer),
	}
}

func (bd *BookmarkDetector) checkComeback(rec PointRecord) *Bookmark {
	if d := rec.RightScore - rec.LeftScore; d > bd.maxDeficit[0] {
		bd.maxDeficit[0] = d
	}
	if d := rec.LeftScore - rec.RightScore; d > bd.maxDeficit[1] {
		bd.maxDeficit[1] = d
	}
	if rec.LeftScore != rec.RightScore {
		return nil
	}

	side := 0
	if rec.Scorer == "right" {
		side = 1
	}
	if bd.maxDeficit[side] < comebackDeficit {
		return nil
	}
	deficit := bd.maxDeficit[side]
	bd.maxDeficit[side] = 0
	return &Bookmark{
		Type:        BookmarkComeback,
		MatchID:     rec.MatchID,
		Point:       rec.Point,
		Description: fmt.Sprintf("%s levels at %d-%d after trailing by %d", rec.Scorer, rec.LeftScore, rec.RightScore, deficit),
	}
}

func (bd *BookmarkDetector) checkMatchPoint(rec PointRecord) *Bookmark {
	if bd.winningScore <= 1 {
		return nil
	}
	scores := [2]int{rec.LeftScore, rec.RightScore}
	names := [2]string{"left", "right"}
	for i, s := range scores {
		if s == bd.winningScore-1 && !bd.matchPoint[i] {
			bd.matchPoint[i] = true
			return &Bookmark{
				Type:        BookmarkMatchPoint,
				MatchID:     rec.MatchID,
				Point:       rec.Point,
				Description: fmt.Sprintf("match point %s at %d-%d", names[i], rec.LeftScore, rec.RightScore),
			}
		}
	}
	return nil
}

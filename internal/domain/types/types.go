// Package types contains the serialisable shapes of ranking output.
package types

import "github.com/okian/blade/internal/domain/model"

// Entry represents one row of a published ranking.
type Entry struct {
	Rank    int    `json:"rank"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Matches int    `json:"matches"`
	Score   int    `json:"score"`
}

// Ranking is the published form of a tournament ranking.
type Ranking struct {
	Total     int     `json:"total"`
	Champion  Entry   `json:"champion"`
	Standings []Entry `json:"standings"`
}

// EntryFrom converts a standing to its published form.
func EntryFrom(s model.Standing) Entry {
	e := Entry{Rank: s.Rank, Score: s.Score}
	if s.Competitor != nil {
		e.ID = s.Competitor.ID
		e.Name = s.Competitor.Name
		e.Matches = len(s.Competitor.Matches)
	}
	return e
}

// RankingFrom converts standings and their champion to the published form.
func RankingFrom(standings []model.Standing, champion model.Standing, total int) Ranking {
	r := Ranking{
		Total:     total,
		Champion:  EntryFrom(champion),
		Standings: make([]Entry, len(standings)),
	}
	for i, s := range standings {
		r.Standings[i] = EntryFrom(s)
	}
	return r
}

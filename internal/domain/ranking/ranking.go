// Package ranking orders competitors by tournament score and picks a champion.
package ranking

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/okian/blade/internal/domain/model"
	"github.com/okian/blade/internal/domain/scoring"
	"github.com/okian/blade/pkg/logger"
	"github.com/okian/blade/pkg/metrics"
)

const nanosecondsPerMillisecond = 1e6

// Service ranks competitors using a scoring.Scorer.
type Service struct {
	scorer    scoring.Scorer
	sanctions bool
	logger    logger.Logger
}

// New constructs a ranking Service around scorer. Without WithLogger it logs
// nothing.
func New(scorer scoring.Scorer, opts ...Option) *Service {
	s := &Service{scorer: scorer}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Nop()
	}

	return s
}

// Rank scores every competitor and returns standings ordered by score
// descending. Competitors with equal scores keep their input order. The
// competitors themselves are not modified.
//
// Unless sanctions are enabled, scores come from match histories alone.
func (s *Service) Rank(ctx context.Context, competitors []*model.Competitor) ([]model.Standing, error) {
	start := time.Now()

	if len(competitors) == 0 {
		metrics.RecordRankingError("no_players")
		return nil, ErrNoPlayers
	}

	standings := make([]model.Standing, len(competitors))
	for i, c := range competitors {
		if c == nil {
			metrics.RecordRankingError("nil_competitor")
			return nil, fmt.Errorf("competitor %d: %w", i, ErrNilCompetitor)
		}
		score, err := s.score(c)
		if err != nil {
			metrics.RecordRankingError(errorKind(err))
			return nil, fmt.Errorf("score competitor %q: %w", c.ID, err)
		}
		standings[i] = model.Standing{Competitor: c, Score: score}
		s.logger.Debug(ctx, "scored competitor",
			logger.String("id", c.ID),
			logger.String("name", c.Name),
			logger.Int("matches", len(c.Matches)),
			logger.Int("score", score),
		)
	}

	slices.SortStableFunc(standings, func(a, b model.Standing) int {
		return cmp.Compare(b.Score, a.Score)
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	metrics.RecordRanking(len(standings), standings[0].Score)
	metrics.RecordRankingLatency(float64(time.Since(start).Nanoseconds()) / nanosecondsPerMillisecond)
	s.logger.Debug(ctx, "ranking computed",
		logger.Int("competitors", len(standings)),
		logger.Bool("sanctions", s.sanctions),
	)

	return standings, nil
}

// Champion returns the top standing, the earliest competitor among those
// tied for the highest score.
func (s *Service) Champion(ctx context.Context, competitors []*model.Competitor) (model.Standing, error) {
	if len(competitors) == 0 {
		metrics.RecordRankingError("no_players")
		return model.Standing{}, ErrNoPlayers
	}

	standings, err := s.Rank(ctx, competitors)
	if err != nil {
		return model.Standing{}, err
	}
	return standings[0], nil
}

func (s *Service) score(c *model.Competitor) (int, error) {
	if s.sanctions {
		return s.scorer.Calculate(c.Matches, c.Disqualified, c.PenaltyPoints)
	}
	return s.scorer.Calculate(c.Matches, false, 0)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, scoring.ErrInvalidPenalty):
		return "invalid_penalty"
	case errors.Is(err, model.ErrUnknownOutcome):
		return "unknown_outcome"
	default:
		return "other"
	}
}

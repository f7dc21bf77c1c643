// Package service wires roster loading, scoring and ranking for the CLI.
package service

import (
	"context"
	"fmt"

	"github.com/okian/blade/internal/adapters/roster"
	"github.com/okian/blade/internal/domain/model"
	"github.com/okian/blade/internal/domain/ranking"
	"github.com/okian/blade/internal/domain/scoring"
	"github.com/okian/blade/pkg/logger"
)

// Report is the outcome of ranking a tournament.
type Report struct {
	// Standings is ordered best first, truncated to the configured top.
	Standings []model.Standing
	// Champion is the first standing of the full ranking.
	Champion  model.Standing
	// Total is the number of competitors ranked.
	Total     int
}

// Service ranks tournaments.
type Service struct {
	ranker *ranking.Service

	top       int
	sanctions bool
	logger    logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTop limits the standings in a Report to the best n; n <= 0 keeps all.
func WithTop(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.top = n
		}
	}
}

// WithSanctions applies competitors' disqualification and penalty points.
func WithSanctions(enabled bool) Option {
	return func(s *Service) {
		s.sanctions = enabled
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.ranker = ranking.New(scoring.NewCalculator(),
		ranking.WithLogger(s.logger.Named("ranking")),
		ranking.WithSanctions(s.sanctions),
	)

	return s
}

// Competitors loads the roster at path, or the built-in sample roster when
// path is empty.
func (s *Service) Competitors(ctx context.Context, path string) ([]*model.Competitor, error) {
	if path == "" {
		s.logger.Info(ctx, "no roster configured, using sample roster")
		return roster.Sample(ctx)
	}

	competitors, err := roster.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "roster loaded",
		logger.String("path", path),
		logger.Int("competitors", len(competitors)),
	)
	return competitors, nil
}

// Report ranks competitors and picks the champion.
func (s *Service) Report(ctx context.Context, competitors []*model.Competitor) (Report, error) {
	standings, err := s.ranker.Rank(ctx, competitors)
	if err != nil {
		s.logger.Error(ctx, "ranking failed", logger.Error(err))
		return Report{}, fmt.Errorf("rank tournament: %w", err)
	}

	r := Report{
		Standings: standings,
		Champion:  standings[0],
		Total:     len(standings),
	}
	if s.top > 0 && len(r.Standings) > s.top {
		r.Standings = r.Standings[:s.top]
	}

	s.logger.Info(ctx, "tournament ranked",
		logger.Int("competitors", r.Total),
		logger.String("champion", r.Champion.Competitor.Name),
		logger.Int("score", r.Champion.Score),
		logger.Bool("sanctions", s.sanctions),
	)
	return r, nil
}

// Champion returns only the top standing.
func (s *Service) Champion(ctx context.Context, competitors []*model.Competitor) (model.Standing, error) {
	champion, err := s.ranker.Champion(ctx, competitors)
	if err != nil {
		s.logger.Error(ctx, "champion selection failed", logger.Error(err))
		return model.Standing{}, fmt.Errorf("select champion: %w", err)
	}
	return champion, nil
}

package ranking

import "github.com/okian/blade/pkg/logger"

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

// WithSanctions makes ranking pass each competitor's disqualification flag
// and penalty points to the scorer. By default only match histories count.
func WithSanctions(enabled bool) Option {
	return func(s *Service) {
		s.sanctions = enabled
	}
}

package pathtree

import "log/slog"

type Option func(*Store)

// WithLogger sets the store's logger.  By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.log = logger
		}
	}
}

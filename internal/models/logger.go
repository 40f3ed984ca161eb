package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which a query is logged as a warning.
//
// Generating a shopping list prefetches plans, recipes, units and stock in a
// handful of queries, none of which should come close to this.
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger sends gorm's log output to zerolog.
type queryLogger struct {
	logger        zerolog.Logger
	slowThreshold time.Duration
}

func newQueryLogger(l zerolog.Logger) *queryLogger {
	return &queryLogger{
		logger:        l.With().Str("component", "gorm").Logger(),
		slowThreshold: slowQueryThreshold,
	}
}

// LogMode is a no-op, the level is controlled by zerolog's global level.
func (l *queryLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *queryLogger) Info(_ context.Context, s string, args ...interface{}) {
	l.logger.Info().Msgf(s, args...)
}

func (l *queryLogger) Warn(_ context.Context, s string, args ...interface{}) {
	l.logger.Warn().Msgf(s, args...)
}

func (l *queryLogger) Error(_ context.Context, s string, args ...interface{}) {
	l.logger.Error().Msgf(s, args...)
}

func (l *queryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]interface{}{
		"sql":      sql,
		"rows":     rows,
		"duration": elapsed,
	}

	// Not finding a record is an expected outcome, e.g. for a week without a plan
	if err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.logger.Error().Err(err).Fields(fields).Msg("query error")
		return
	}

	if l.slowThreshold > 0 && elapsed > l.slowThreshold {
		l.logger.Warn().Fields(fields).Msg("slow query")
		return
	}

	l.logger.Debug().Fields(fields).Msg("query")
}

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-patient-guard/internal/logger"
)

// retryDelays are the waits between attempts of a retryable operation.
var retryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond, 500 * time.Millisecond}

// withRetry runs fn until it succeeds, fails with a non-retryable error, or
// the attempts run out. Failures come back as *PersistenceError, except
// errors marked with errDomain, which are returned as is on the first try.
func (db *DB) withRetry(ctx context.Context, op string, fn func() error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 0; ; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if d, ok := err.(domainError); ok {
			return d.err
		}

		retryable := db.classify(err) == Retryable
		if !retryable || attempt >= len(retryDelays) {
			return &PersistenceError{Op: op, Retryable: retryable, Err: err}
		}

		log.Warn().Err(err).
			Str("func", "DB.withRetry").
			Str("op", op).
			Int("attempt", attempt+1).
			Msg("retryable database error, retrying")

		select {
		case <-ctx.Done():
			return &PersistenceError{Op: op, Retryable: true, Err: ctx.Err()}
		case <-time.After(retryDelays[attempt]):
		}
	}
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// domainError marks an error that should bypass retry and persistence
// wrapping, such as ErrNotFound.
type domainError struct{ err error }

func (d domainError) Error() string { return d.err.Error() }

func errDomain(err error) error { return domainError{err: err} }

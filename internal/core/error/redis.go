package errx

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
)

// WrapRedis maps Redis errors to the unified AppError type with appropriate
// status codes. redis.Nil becomes a 404; everything else a 502 so upstream
// callers can tell "missing" apart from "down".
func WrapRedis(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, redis.Nil) {
		return New(err, http.StatusNotFound, RedisNotFoundMessage)
	}

	return New(fmt.Errorf("%w: %w", ErrStoreUnavailable, err), http.StatusBadGateway, RedisErrorMessage)
}

// WrapSpecialist maps a failed specialist invocation to the unified AppError
// type. The original error stays reachable through Unwrap for logging.
func WrapSpecialist(err error) error {
	if err == nil {
		return nil
	}
	return New(fmt.Errorf("%w: %w", ErrSpecialistUnavailable, err), http.StatusBadGateway, SpecialistErrorMessage)
}

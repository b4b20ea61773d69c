package retrier

import (
	"context"
	"errors"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой повторной попыткой с ошибкой и паузой до нее.
type NotifyFunc func(err error, delay time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// Если nil - ретраятся все ошибки, если не nil - только те где функция вернула true
	ShouldRetry ShouldRetryFunc

	OnRetry NotifyFunc
}

// RetryUnless ретраит все ошибки, кроме перечисленных (и обернутых в них).
func RetryUnless(permanent ...error) ShouldRetryFunc {
	return func(err error) bool {
		for _, target := range permanent {
			if errors.Is(err, target) {
				return false
			}
		}
		return true
	}
}

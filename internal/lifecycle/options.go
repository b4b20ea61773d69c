package lifecycle

import (
	"time"

	"github.com/google/uuid"
)

const DefaultResponseWindow = 72 * time.Hour

type options struct {
	now            func() time.Time
	newID          func() string
	responseWindow time.Duration
}

type Option func(*options)

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

// WithResponseWindow задает, сколько продавец может отвечать на индивидуальный заказ.
func WithResponseWindow(window time.Duration) Option {
	return func(o *options) {
		if window > 0 {
			o.responseWindow = window
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:            func() time.Time { return time.Now().UTC() },
		newID:          uuid.NewString,
		responseWindow: DefaultResponseWindow,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

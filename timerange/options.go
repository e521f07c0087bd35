package timerange

import (
	"time"

	"github.com/reugn/go-timerange/logger"
)

// Option configures a progression.
type Option func(*options)

type options struct {
	location *time.Location
	logger   logger.Logger
}

// WithLocation sets the timezone used to resolve date-times to instants.
// The location is fixed for the lifetime of the progression. A nil location
// selects [time.Local].
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

// WithLogger sets the logger. A nil logger discards all records.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.location == nil {
		o.location = time.Local
	}
	if o.logger == nil {
		o.logger = logger.NoOpLogger{}
	}
	return o
}

// LoadLocation returns the Location with the given name, as
// [time.LoadLocation] does. An unknown name unwraps to ErrIllegalArgument.
func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, illegalArgumentError(err.Error())
	}
	return loc, nil
}

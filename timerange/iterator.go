package timerange

import (
	"errors"

	"github.com/reugn/go-timerange/logger"
)

// ordered is implemented by the point types: time.Time, Date and DateTime.
type ordered[T any] interface {
	Compare(T) int
}

// advanceFunc returns the point that follows the given one.
type advanceFunc[T any] func(T) (T, error)

// Iterator produces the points of a range or progression one at a time,
// in strictly increasing order. An Iterator holds the iteration cursor and
// is not safe for concurrent use.
type Iterator[T ordered[T]] struct {
	cursor  T
	end     T
	advance advanceFunc[T]
	logger  logger.Logger
	err     error // reported by the next call to Next
	done    bool
}

func newIterator[T ordered[T]](first, end T, advance advanceFunc[T], l logger.Logger) *Iterator[T] {
	return &Iterator[T]{
		cursor:  first,
		end:     end,
		advance: advance,
		logger:  l,
	}
}

// HasNext reports whether a call to Next will produce a point or report an
// error.
func (it *Iterator[T]) HasNext() bool {
	if it.done {
		return false
	}
	return it.err != nil || it.cursor.Compare(it.end) <= 0
}

// Next returns the current point and advances the cursor.
//
// When advancing past the returned point fails, with ErrCalendarOverflow or
// ErrNoProgress, the point is still returned and the failure is reported by
// the following call. After that the iterator is exhausted. Next returns
// ErrExhaustedSequence when HasNext reports false.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if !it.HasNext() {
		return zero, exhaustedSequenceError()
	}
	if it.err != nil {
		err := it.err
		it.err, it.done = nil, true
		return zero, err
	}

	value := it.cursor
	next, err := it.advance(value)
	switch {
	case errors.Is(err, errScheduleEnded):
		it.done = true
	case err != nil:
		it.logger.Warn("Failed to advance iterator", "cursor", value, "error", err)
		it.err = err
	case next.Compare(value) <= 0:
		it.err = noProgressError(value, next)
		it.logger.Warn("Iterator made no progress", "cursor", value, "next", next)
	default:
		it.cursor = next
	}

	return value, nil
}

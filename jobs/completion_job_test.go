package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingCompleter struct {
	calls int
	err   error
}

func (c *countingCompleter) CompletePastBookings(context.Context) (int64, error) {
	c.calls++
	return 3, c.err
}

func TestAddBookingCompletion(t *testing.T) {
	s := NewScheduler()
	assert.NoError(t, s.AddBookingCompletion("0 3 * * *", &countingCompleter{}))
	assert.NoError(t, s.AddBookingCompletion("@daily", &countingCompleter{}))
	assert.Error(t, s.AddBookingCompletion("not a schedule", &countingCompleter{}))
	assert.Len(t, s.cron.Entries(), 2)
}

func TestCompletionJobRun(t *testing.T) {
	completer := &countingCompleter{}
	(&completionJob{completer: completer}).Run()
	assert.Equal(t, 1, completer.calls)

	completer.err = errors.New("db down")
	(&completionJob{completer: completer}).Run()
	assert.Equal(t, 2, completer.calls)
}

func TestRunStopsWithContext(t *testing.T) {
	s := NewScheduler()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, s.Run(ctx))
}

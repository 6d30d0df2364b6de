package scheduler

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	runs int
	err  error
}

func (j *countingJob) Run() error {
	j.runs++
	return j.err
}

func (*countingJob) Name() string { return "counting" }

func TestAddJobAcceptsStandardSchedules(t *testing.T) {
	s := New(zerolog.Nop())

	require.NoError(t, s.AddJob("0 18 * * MON-FRI", &countingJob{}))
	require.NoError(t, s.AddJob("@hourly", &countingJob{}))
	require.NoError(t, s.AddJob("@every 30m", &countingJob{}))
}

func TestAddJobRejectsInvalidSchedule(t *testing.T) {
	s := New(zerolog.Nop())

	// Six-field (seconds-resolution) specs are not accepted.
	assert.Error(t, s.AddJob("0 0 18 * * MON-FRI", &countingJob{}))
	assert.Error(t, s.AddJob("not a schedule", &countingJob{}))
}

func TestRunNow(t *testing.T) {
	s := New(zerolog.Nop())

	job := &countingJob{}
	require.NoError(t, s.RunNow(job))
	assert.Equal(t, 1, job.runs)

	failing := &countingJob{err: fmt.Errorf("sync failed")}
	assert.Error(t, s.RunNow(failing))
	assert.Equal(t, 1, failing.runs)
}

package system

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name  string
	phase Phase
	err   error
	log   *[]string
}

func (r *recorder) Phase() Phase { return r.phase }

func (r *recorder) Update(time.Duration) error {
	*r.log = append(*r.log, r.name)
	return r.err
}

func TestRunnerOrdersByPhaseThenRegistration(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(&recorder{name: "stats", phase: PhaseCleanup, log: &log})
	r.Register(&recorder{name: "creeps", phase: PhaseUpdate, log: &log})
	r.Register(&recorder{name: "step", phase: PhaseCleanup, log: &log})
	r.Register(&recorder{name: "events", phase: PhasePreUpdate, log: &log})

	require.NoError(t, r.Tick(time.Millisecond))
	assert.Equal(t, []string{"events", "creeps", "stats", "step"}, log)
	assert.EqualValues(t, 1, r.Ticks())
}

func TestRunnerStopsOnError(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	r := NewRunner()
	r.Register(&recorder{name: "creeps", phase: PhaseUpdate, err: boom, log: &log})
	r.Register(&recorder{name: "spawns", phase: PhasePostUpdate, log: &log})

	err := r.Tick(0)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"creeps"}, log)
}

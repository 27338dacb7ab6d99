package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderSteps(t *testing.T) {
	t.Parallel()

	r, err := New("soldeploy-test")
	require.NoError(t, err)

	compile := r.NewMeasurer("compile")
	time.Sleep(5 * time.Millisecond)
	compile.Measure(nil)

	deploy := r.NewMeasurer("deploy")
	deploy.Measure(nil)
	deploy.Restart()
	deploy.Measure(errors.New("boom"))

	steps := r.Steps()
	require.Len(t, steps, 2)

	assert.Equal(t, "compile", steps[0].Name)
	assert.Equal(t, 1, steps[0].Count)
	assert.GreaterOrEqual(t, steps[0].Total, 5*time.Millisecond)
	assert.Equal(t, 0, steps[0].Failures)

	assert.Equal(t, "deploy", steps[1].Name)
	assert.Equal(t, 2, steps[1].Count)
	assert.Equal(t, 1, steps[1].Failures)
}

func TestRecorderEmpty(t *testing.T) {
	t.Parallel()

	r, err := New("soldeploy-test")
	require.NoError(t, err)
	assert.Empty(t, r.Steps())
}

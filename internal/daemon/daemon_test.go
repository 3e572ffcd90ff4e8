package daemon

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whisperctl/whisperctl/internal/config"
	"github.com/whisperctl/whisperctl/internal/state"
)

type fakeCapture struct {
	active   bool
	starts   int
	stops    int
	startErr error
}

func (f *fakeCapture) StartCapture() error {
	if f.startErr != nil {
		return f.startErr
	}
	f.starts++
	f.active = true
	return nil
}

func (f *fakeCapture) StopCapture() error {
	f.stops++
	f.active = false
	return nil
}

func (f *fakeCapture) Active() bool {
	return f.active
}

func newTestDaemon(t *testing.T) (*Daemon, *fakeCapture) {
	dir := t.TempDir()
	cfg := config.Config{
		MarkerFile:  filepath.Join(dir, "whisper_recording"),
		ControlFile: filepath.Join(dir, "whisper_control"),
		ScratchDir:  filepath.Join(dir, "scratch"),
	}
	fc := &fakeCapture{}
	return &Daemon{
		cfg:   cfg,
		store: state.NewStore(cfg.MarkerFile, cfg.ControlFile),
		cap:   fc,
	}, fc
}

func TestDispatchStartStop(t *testing.T) {
	d, cap := newTestDaemon(t)

	d.dispatch(state.CommandStart)
	assert.Equal(t, 1, cap.starts)
	assert.True(t, cap.Active())

	d.dispatch(state.CommandStop)
	assert.Equal(t, 1, cap.stops)
	assert.False(t, cap.Active())
}

func TestDispatchIgnoresRepeatedWords(t *testing.T) {
	d, cap := newTestDaemon(t)

	d.dispatch(state.CommandStart)
	d.dispatch(state.CommandStart)
	assert.Equal(t, 1, cap.starts)

	d.dispatch(state.CommandStop)
	d.dispatch(state.CommandStop)
	assert.Equal(t, 1, cap.stops)
}

func TestDispatchIgnoresReadySeed(t *testing.T) {
	d, cap := newTestDaemon(t)

	d.dispatch(state.CommandReady)
	d.dispatch("garbage")
	assert.Zero(t, cap.starts)
	assert.Zero(t, cap.stops)
}

func TestDispatchStartWhileActive(t *testing.T) {
	d, cap := newTestDaemon(t)
	cap.active = true

	d.dispatch(state.CommandStart)
	assert.Zero(t, cap.starts)
}

func TestDispatchStartFailureAllowsRetry(t *testing.T) {
	d, cap := newTestDaemon(t)
	cap.startErr = errors.New("no input device")

	d.dispatch(state.CommandStart)
	assert.Zero(t, cap.starts)

	// The word changed, so a stop followed by a fresh start must dispatch
	cap.startErr = nil
	d.dispatch(state.CommandStop)
	d.dispatch(state.CommandStart)
	assert.Equal(t, 1, cap.starts)
}

func TestPollReadsControlFile(t *testing.T) {
	d, cap := newTestDaemon(t)

	// Missing control file is tolerated
	d.poll()
	assert.Zero(t, cap.starts)

	require.NoError(t, d.store.WriteControl(state.CommandStart))
	d.poll()
	assert.Equal(t, 1, cap.starts)

	require.NoError(t, d.store.WriteControl(state.CommandStop))
	d.poll()
	assert.Equal(t, 1, cap.stops)
}

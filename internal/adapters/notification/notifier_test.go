package notification

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/tempus-cli/internal/config"
	"github.com/xvierd/tempus-cli/internal/ports"
)

var _ ports.Notifier = (*Notifier)(nil)

type sent struct {
	via, title, message string
}

func newRecordingNotifier(cfg *config.NotificationConfig, fail error) (*Notifier, *[]sent) {
	var log []sent
	n := New(cfg)
	n.notify = func(title, message string) error {
		log = append(log, sent{"notify", title, message})
		return fail
	}
	n.alert = func(title, message string) error {
		log = append(log, sent{"alert", title, message})
		return fail
	}
	return n, &log
}

func TestNotifier_Disabled(t *testing.T) {
	n, log := newRecordingNotifier(&config.NotificationConfig{Enabled: false}, nil)
	require.NoError(t, n.Notify("t", "m"))
	assert.Empty(t, *log)
	assert.False(t, n.IsEnabled())

	nilCfg := New(nil)
	assert.False(t, nilCfg.IsEnabled())
	assert.NoError(t, nilCfg.Notify("t", "m"))
}

func TestNotifier_NotifyCompleted(t *testing.T) {
	n, log := newRecordingNotifier(&config.NotificationConfig{Enabled: true}, nil)
	require.NoError(t, n.NotifyCompleted("Tea", 3*time.Minute+2*time.Second))
	require.Len(t, *log, 1)
	assert.Equal(t, sent{"notify", "Tea completed!", "Duration: 3m 2s"}, (*log)[0])
}

func TestNotifier_SoundUsesAlert(t *testing.T) {
	n, log := newRecordingNotifier(&config.NotificationConfig{Enabled: true, Sound: true}, nil)
	require.NoError(t, n.NotifyRemaining("Tea", time.Minute))
	require.Len(t, *log, 1)
	assert.Equal(t, "alert", (*log)[0].via)
	assert.Equal(t, "Tea: 1m 0s remaining", (*log)[0].title)
}

func TestNotifier_WrapsErrors(t *testing.T) {
	boom := errors.New("no dbus")
	n, _ := newRecordingNotifier(&config.NotificationConfig{Enabled: true}, boom)
	err := n.Notify("t", "m")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

package overlay

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestToastManager() *ToastManager {
	s := spinner.New()
	return NewToastManager(&s)
}

func TestToast_LifecyclePhases(t *testing.T) {
	tm := newTestToastManager()
	id := tm.Info("photos synced")
	require.NotEmpty(t, id)
	assert.True(t, tm.HasActiveToasts())

	// Force the slide-in to elapse and tick.
	tm.toasts[0].PhaseStart = time.Now().Add(-SlideInDuration * 2)
	tm.Tick()
	assert.Equal(t, PhaseVisible, tm.toasts[0].Phase)

	// Force the visible duration to elapse.
	tm.toasts[0].PhaseStart = time.Now().Add(-InfoDismissAfter * 2)
	tm.Tick()
	assert.Equal(t, PhaseSlidingOut, tm.toasts[0].Phase)

	// Force the slide-out to elapse; toast is dropped.
	tm.toasts[0].PhaseStart = time.Now().Add(-SlideOutDuration * 2)
	tm.Tick()
	assert.False(t, tm.HasActiveToasts())
}

func TestToast_AnimationDisabledSkipsSlidePhases(t *testing.T) {
	tm := newTestToastManager()
	tm.SetAnimate(false)

	tm.Info("photos synced")
	require.Len(t, tm.toasts, 1)
	assert.Equal(t, PhaseVisible, tm.toasts[0].Phase)
	assert.Equal(t, 0, tm.toasts[0].slideOffset())

	// Expiry drops the toast without a slide-out phase.
	tm.toasts[0].PhaseStart = time.Now().Add(-InfoDismissAfter * 2)
	tm.Tick()
	assert.False(t, tm.HasActiveToasts())
}

func TestToast_LoadingDoesNotAutoDismiss(t *testing.T) {
	tm := newTestToastManager()
	tm.Loading("syncing photos")

	tm.toasts[0].Phase = PhaseVisible
	tm.toasts[0].PhaseStart = time.Now().Add(-time.Hour)
	tm.Tick()
	assert.Equal(t, PhaseVisible, tm.toasts[0].Phase)
}

func TestToast_ResolveTransitionsLoading(t *testing.T) {
	tm := newTestToastManager()
	id := tm.Loading("syncing photos")

	tm.Resolve(id, ToastSuccess, "sync: 3 downloaded")
	require.Len(t, tm.toasts, 1)
	assert.Equal(t, ToastSuccess, tm.toasts[0].Type)
	assert.Equal(t, "sync: 3 downloaded", tm.toasts[0].Message)
	assert.Equal(t, SuccessDismissAfter, tm.toasts[0].Duration)
}

func TestToast_ResolveUnknownIDIsNoop(t *testing.T) {
	tm := newTestToastManager()
	tm.Info("hello")
	tm.Resolve("toast-9999999", ToastError, "x")
	assert.Equal(t, ToastInfo, tm.toasts[0].Type)
}

func TestToast_DuplicateResetsTimer(t *testing.T) {
	tm := newTestToastManager()
	id1 := tm.Error("could not reach repository")
	id2 := tm.Error("could not reach repository")
	assert.Equal(t, id1, id2)
	assert.Len(t, tm.toasts, 1)
}

func TestToast_MaxToastsEvictsOldest(t *testing.T) {
	tm := newTestToastManager()
	for i := 0; i < MaxToasts+2; i++ {
		tm.Info(string(rune('a' + i)))
	}
	assert.LessOrEqual(t, len(tm.toasts), MaxToasts)
}

func TestToast_ViewEmptyWhenNoToasts(t *testing.T) {
	tm := newTestToastManager()
	assert.Equal(t, "", tm.View())
}

func TestToast_PositionStaysOnScreen(t *testing.T) {
	tm := newTestToastManager()
	tm.SetSize(20, 10) // narrower than MinToastWidth
	tm.Info("x")
	tm.toasts[0].Phase = PhaseVisible

	x, y := tm.GetPosition()
	assert.GreaterOrEqual(t, x, 0)
	assert.Equal(t, 1, y)
}

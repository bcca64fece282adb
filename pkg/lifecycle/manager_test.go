package lifecycle_test

import (
	"testing"
	"time"

	"github.com/hualeng/dashboard-metrics-backend/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicateServiceRegistrationFails(t *testing.T) {
	mgr := lifecycle.NewManager()

	_, err := mgr.NewServiceHandle("worker")
	require.NoError(t, err)

	_, err = mgr.NewServiceHandle("worker")
	assert.Error(t, err)
}

func TestShutdownCancelsSleep(t *testing.T) {
	mgr := lifecycle.NewManager()
	handle, err := mgr.NewServiceHandle("sleeper")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		defer handle.Close()
		done <- handle.Sleep(time.Minute)
	}()

	mgr.Shutdown()

	select {
	case err := <-done:
		assert.Error(t, err, "停机信号应中断休眠")
	case <-time.After(time.Second):
		t.Fatal("Sleep未被停机信号中断")
	}

	remaining := mgr.WaitWithTimeout(time.Second)
	assert.Empty(t, remaining)
}

func TestWaitWithTimeoutReportsStragglers(t *testing.T) {
	mgr := lifecycle.NewManager()
	_, err := mgr.NewServiceHandle("stuck-worker")
	require.NoError(t, err)

	mgr.Shutdown()

	remaining := mgr.WaitWithTimeout(50 * time.Millisecond)
	assert.Equal(t, []string{"stuck-worker"}, remaining)
}

package ui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sapopener/updater"
)

func TestPendingUpdateConcurrentAccess(t *testing.T) {
	// The update check runs on its own goroutine while the event thread
	// reads the result; both go through the guarded accessors
	mw := &MainWindow{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			mw.setUpdateInfo(&updater.UpdateInfo{LatestVersion: "v9.9.9", UpdateAvailable: true})
		}()
		go func() {
			defer wg.Done()
			_ = mw.pendingUpdate()
		}()
	}
	wg.Wait()

	info := mw.pendingUpdate()
	require.NotNil(t, info)
	assert.Equal(t, "v9.9.9", info.LatestVersion)
}

func TestPendingUpdateEmpty(t *testing.T) {
	mw := &MainWindow{}
	assert.Nil(t, mw.pendingUpdate())
}

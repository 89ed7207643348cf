package gosu

import (
	"github.com/ignite-laboratories/core/std"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

type failingDesktop struct {
	*fakeDriver
	fail bool
}

func (d *failingDesktop) DesktopSize() (std.XY[int], error) {
	if d.fail {
		return std.XY[int]{}, errFake
	}
	return d.fakeDriver.DesktopSize()
}

func TestScreenSizeIsCached(t *testing.T) {
	resetDisplayMode()
	d := newFakeDriver()

	size, err := ScreenSize(d)
	require.NoError(t, err)
	assert.Equal(t, std.XY[int]{X: 1920, Y: 1080}, size)

	d.desktop = std.XY[int]{X: 1, Y: 1}
	assert.Equal(t, 1920, ScreenWidth(d))
	assert.Equal(t, 1080, ScreenHeight(d))
	assert.Equal(t, 1, d.desktopQueries)
}

func TestScreenSizeRetriesAfterFailure(t *testing.T) {
	resetDisplayMode()
	d := &failingDesktop{fakeDriver: newFakeDriver(), fail: true}

	_, err := ScreenSize(d)
	require.Error(t, err)
	assert.Zero(t, ScreenWidth(d))

	d.fail = false
	assert.Equal(t, 1920, ScreenWidth(d))
	assert.Equal(t, 1, d.desktopQueries)
}

func TestScreenSizeConcurrentFirstUse(t *testing.T) {
	resetDisplayMode()
	d := newFakeDriver()

	var wg sync.WaitGroup
	sizes := make([]std.XY[int], 16)
	for i := range sizes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sizes[i], _ = ScreenSize(d)
		}(i)
	}
	wg.Wait()

	for _, size := range sizes {
		assert.Equal(t, std.XY[int]{X: 1920, Y: 1080}, size)
	}
	assert.Equal(t, 1, d.desktopQueries)
}

package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadingFrames(t *testing.T) {
	frames := LoadingFrames("Loading", 3)

	assert.Equal(t, [][]rune{
		[]rune("Loading"),
		[]rune("Loading."),
		[]rune("Loading.."),
		[]rune("Loading..."),
	}, frames)
}

func TestLoadingFramesWithoutDots(t *testing.T) {
	assert.Equal(t, [][]rune{[]rune("Wait")}, LoadingFrames("Wait", 0))
}

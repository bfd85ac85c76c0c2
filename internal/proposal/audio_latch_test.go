package proposal

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestAudioLatchFiresOnce(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	player := &countingPlayer{}
	l := NewAudioLatch(player, logrus.NewEntry(logger))

	assert.False(t, l.Fired())
	assert.True(t, l.Fire())
	for i := 0; i < 10; i++ {
		assert.False(t, l.Fire())
	}
	l.Wait()

	assert.True(t, l.Fired())
	assert.Equal(t, int32(1), player.calls.Load())
}

func TestAudioLatchWithoutPlayer(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	l := NewAudioLatch(nil, logrus.NewEntry(logger))

	assert.True(t, l.Fire())
	l.Wait()
	assert.Empty(t, hook.AllEntries())
}

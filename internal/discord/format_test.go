package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "999", formatInt(999))
	assert.Equal(t, "1,532", formatInt(1532))
	assert.Equal(t, "60,842,096", formatInt(60842096))
	assert.Equal(t, "-2,400,536", formatInt(-2400536))
}

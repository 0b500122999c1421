package drawer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay_FollowsState(t *testing.T) {
	o := NewOverlay(0.05)

	assert.Nil(t, o.React(Closed), "never attached while Closed")
	assert.Nil(t, o.React(Sliding))
	assert.False(t, o.Attached())

	assert.Equal(t, []Effect{AttachOverlay{}, FadeOverlay{Alpha: 0.05}}, o.React(Open))
	assert.True(t, o.Attached())
	assert.Nil(t, o.React(Open))
	assert.Nil(t, o.React(Sliding), "sliding keeps the overlay")
	assert.True(t, o.Attached())

	assert.Equal(t, []Effect{FadeOverlay{Alpha: 0, Detach: true}}, o.React(Closed))
	assert.False(t, o.Attached())
}

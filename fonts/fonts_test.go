package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadHUD(t *testing.T) {
	t.Cleanup(func() { hud = nil })

	assert.PanicsWithValue(t, ErrNotLoaded, func() { HUD() })

	require.NoError(t, LoadHUD(goregular.TTF, 12))
	assert.Positive(t, HUD().Metrics().Height.Ceil())

	assert.Error(t, LoadHUD([]byte("not a font"), 12))
	assert.NotNil(t, HUD(), "a failed load keeps the previous face")
}

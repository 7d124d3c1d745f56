package barcode

import (
	"bytes"
	"image/png"
	"testing"

	"trace-backend/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPNG(t *testing.T) {
	r := NewRenderer()

	data, err := r.Render("AV-240301-001")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, barWidth, img.Bounds().Dx())
	assert.Equal(t, barHeight+textStrip, img.Bounds().Dy())
}

func TestRenderIsIdempotent(t *testing.T) {
	r := NewRenderer()

	first, err := r.Render("AV-240301-002")
	require.NoError(t, err)
	second, err := r.Render("AV-240301-002")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderEmptyLotNumber(t *testing.T) {
	r := NewRenderer()

	_, err := r.Render("")
	require.Error(t, err)

	var re *apperrors.RenderError
	assert.ErrorAs(t, err, &re)
}

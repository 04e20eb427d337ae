package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/geodots/internal/geo"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/require"
)

func TestRenderPreview(t *testing.T) {
	img, err := RenderPreview([]DotRecord{
		{Lon: 0, Lat: 0, Country: "Null Island", Continent: geo.Africa},
	}, 360)
	require.NoError(t, err)
	require.Equal(t, 360, img.Bounds().Dx())
	require.Equal(t, 180, img.Bounds().Dy())

	// dot center carries the continent tint, corners stay background
	center := img.RGBAAt(180, 90)
	require.Greater(t, center.R, background.R)
	require.Greater(t, center.G, background.G)
	corner := img.RGBAAt(5, 5)
	require.InDelta(t, background.R, corner.R, 1)
	require.InDelta(t, background.G, corner.G, 1)
	require.InDelta(t, background.B, corner.B, 1)
}

func TestRenderPreviewBadWidth(t *testing.T) {
	for _, width := range []int{-1, 0, 1} {
		_, err := RenderPreview(nil, width)
		require.ErrorIs(t, err, ErrValidation, width)
	}

	img, err := RenderPreview(nil, 2)
	require.NoError(t, err)
	require.Equal(t, 1, img.Bounds().Dy())
}

func TestSavePreview(t *testing.T) {
	img, err := RenderPreview([]DotRecord{
		{Lon: 2.35, Lat: 48.85, Country: "France", Continent: geo.Europe},
	}, 128)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "dots.webp")
	require.NoError(t, SavePreview(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cfg, err := webp.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 128, cfg.Width)
	require.Equal(t, 64, cfg.Height)
}

package processor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/woozymasta/geodots/internal/geo"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"
)

// background matches the globe wireframe color of the viewer.
var background = color.RGBA{R: 0x22, G: 0x33, B: 0x44, A: 0xff}

// supersample is the factor the canvas is drawn at before downscaling.
const supersample = 2

// RenderPreview plots records on an equirectangular width x width/2 image,
// one continent-colored dot per record.
func RenderPreview(records []DotRecord, width int) (*image.RGBA, error) {
	if width < 2 {
		return nil, fmt.Errorf("%w: preview width must be >= 2, got %d", ErrValidation, width)
	}
	height := width / 2

	w, h := width*supersample, height*supersample
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	radius := max(w/512, 2)
	for _, rec := range records {
		x, y := geo.Equirectangular(rec.Lon, rec.Lat, w, h)
		fillCircle(canvas, int(x), int(y), radius, rec.Continent.Color())
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Over, nil)

	return out, nil
}

// SavePreview encodes img as webp at path.
func SavePreview(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrWrite, closeErr)
		}
	}()

	if err := webp.Encode(f, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return fmt.Errorf("%w: encode webp: %w", ErrWrite, err)
	}

	log.Debug().Str("path", path).Int("width", img.Bounds().Dx()).Msg("Preview written")
	return nil
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	b := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(b) {
				img.SetRGBA(p.X, p.Y, c)
			}
		}
	}
}

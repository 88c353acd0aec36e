package seed

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
)

// Placeholder demo images, one solid color per business kind. Generated
// once at init so every seeded business carries real JPEG bytes.
var (
	restaurantImage  = placeholderJPEG(color.RGBA{R: 220, G: 90, B: 60, A: 255})
	plumberImage     = placeholderJPEG(color.RGBA{R: 60, G: 120, B: 200, A: 255})
	electricianImage = placeholderJPEG(color.RGBA{R: 240, G: 200, B: 60, A: 255})
	cleaningImage    = placeholderJPEG(color.RGBA{R: 90, G: 190, B: 120, A: 255})
	serviceImage     = placeholderJPEG(color.RGBA{R: 140, G: 140, B: 150, A: 255})
)

func placeholderJPEG(c color.RGBA) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 75}); err != nil {
		// Encoding a solid in-memory RGBA image cannot fail at runtime.
		panic(err)
	}
	return buf.Bytes()
}

package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	canvasW = 2150
	canvasH = 2048

	cardW = 200
	cardH = 280
	gap   = 10
	cols  = 10
)

// ComposeDeckImage lays out the leader, the QR of the deck code, and up to
// 50 card images on a shareable canvas. Missing images leave their slot
// blank.
func ComposeDeckImage(leader image.Image, cardImgs []image.Image, qr image.Image) image.Image {
	canvas := imaging.New(canvasW, canvasH, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})

	if leader != nil {
		l := imaging.Resize(leader, 400, 560, imaging.Lanczos)
		canvas = imaging.Paste(canvas, l, image.Pt(gap, gap))
	}
	if qr != nil {
		q := imaging.Resize(qr, 400, 400, imaging.Lanczos)
		canvas = imaging.Paste(canvas, q, image.Pt(canvasW-gap-400, gap))
	}

	// card grid below the header row
	for i, c := range cardImgs {
		if i >= 50 {
			break
		}
		x := gap + (i%cols)*(cardW+gap)
		y := 620 + (i/cols)*(cardH+gap)
		r := imaging.Resize(c, cardW, cardH, imaging.Lanczos)
		canvas = imaging.Paste(canvas, r, image.Pt(x, y))
	}

	return canvas
}

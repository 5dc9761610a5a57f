package imagepkg

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/youruser/kcgdeck/internal/util"
)

// DownloadImage fetches and decodes a card image.
func DownloadImage(url string) (image.Image, error) {
	body, err := util.GetBytes(url)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}

package steg

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	"github.com/pkg/errors"
)

// NewPixmapFromImage is used to convert a decoded image to a pixmap.
// The samples are copied, mutating the pixmap never changes img.
func NewPixmapFromImage(img image.Image) *Pixmap {
	rect := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, rect.Min, draw.Src)
	return &Pixmap{
		Pix:    nrgba.Pix,
		Width:  rect.Dx(),
		Height: rect.Dy(),
	}
}

// Image is used to view the pixmap as an NRGBA image, it shares the
// sample buffer.
func (pm *Pixmap) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    pm.Pix,
		Stride: pm.Width * pixelSize,
		Rect:   image.Rect(0, 0, pm.Width, pm.Height),
	}
}

// EncodeToPNG is used to load a PNG image, embed message into it and
// encode the result back to PNG.
func EncodeToPNG(pic []byte, message, password string, progress ProgressFunc) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pic))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	pm := NewPixmapFromImage(img)
	err = Encode(pm, message, password, progress)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(make([]byte, 0, len(pic)))
	encoder := png.Encoder{
		CompressionLevel: png.BestCompression,
	}
	err = encoder.Encode(buf, pm.Image())
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}

// DecodeFromPNG is used to load a PNG image and extract the embedded
// message from it.
func DecodeFromPNG(pic []byte, password string, progress ProgressFunc) (string, error) {
	img, err := png.Decode(bytes.NewReader(pic))
	if err != nil {
		return "", errors.WithStack(err)
	}
	return Decode(NewPixmapFromImage(img), password, progress)
}

// Package barcode renders lot numbers as scannable Code 128 labels with the
// human-readable number printed beneath the bars.
package barcode

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"trace-backend/internal/apperrors"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	barWidth  = 300
	barHeight = 80
	textStrip = 16 // extra rows under the bars for the printed lot number
)

// Renderer produces PNG barcode labels. It is stateless; the zero value is
// not usable, construct with NewRenderer.
type Renderer struct {
	face font.Face
}

func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// Render encodes lotNumber as a Code 128 barcode and returns PNG bytes.
// Output is deterministic for a given lot number.
func (r *Renderer) Render(lotNumber string) ([]byte, error) {
	if lotNumber == "" {
		return nil, apperrors.Render("barcode", apperrors.Invalid("lot_number", "must not be empty"))
	}

	code, err := code128.Encode(lotNumber)
	if err != nil {
		return nil, apperrors.Render("barcode", err)
	}

	scaled, err := barcode.Scale(code, barWidth, barHeight)
	if err != nil {
		return nil, apperrors.Render("barcode", err)
	}

	// Compose bars plus a white strip carrying the human-readable number.
	label := image.NewRGBA(image.Rect(0, 0, barWidth, barHeight+textStrip))
	draw.Draw(label, label.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(label, image.Rect(0, 0, barWidth, barHeight), scaled, image.Point{}, draw.Over)
	r.drawText(label, lotNumber)

	var buf bytes.Buffer
	if err := png.Encode(&buf, label); err != nil {
		return nil, apperrors.Render("barcode", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawText(img *image.RGBA, text string) {
	width := font.MeasureString(r.face, text).Ceil()
	x := (barWidth - width) / 2
	if x < 0 {
		x = 0
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: r.face,
		Dot:  fixed.P(x, barHeight+textStrip-3),
	}
	d.DrawString(text)
}

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/infinitelist/pkg/infinite"
)

// ImageOptions configures Image.
type ImageOptions struct {
	// Width is the image width in pixels.
	Width int
	// RowHeight is the pixel height of one entry.
	RowHeight int
	// Padding is the horizontal inset of start-aligned rows.
	Padding int
	// Status draws the status line above the rows.
	Status bool
}

// DefaultImageOptions returns options for a 320px wide snapshot.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{Width: 320, RowHeight: 20, Padding: 8, Status: true}
}

var (
	background  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	foreground  = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	muted       = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	failedColor = color.RGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0xff}
	divider     = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
)

// Image draws v into an RGBA image. Rows are RowHeight tall and separated
// by the container spacing.
func Image(v View, opts ImageOptions) *image.RGBA {
	opts = withImageDefaults(opts)
	face := basicfont.Face7x13

	rows := len(v.Rows)
	if opts.Status {
		rows++
	}
	gap := int(v.Spacing)
	height := rows*opts.RowHeight + max(len(v.Rows)-1, 0)*gap
	if height <= 0 {
		height = opts.RowHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	y := 0
	if opts.Status {
		drawText(img, face, v.StatusLine(), opts.Padding, y, opts.RowHeight, muted)
		y += opts.RowHeight
	}
	for i, row := range v.Rows {
		if i > 0 && gap > 0 {
			line := image.Rect(0, y+gap/2, opts.Width, y+gap/2+1)
			draw.Draw(img, line, image.NewUniform(divider), image.Point{}, draw.Src)
			y += gap
		}
		label, c := row.Label, foreground
		switch {
		case row.Kind == infinite.EntryLoading:
			c = muted
		case row.Failed:
			label, c = failedLabel, failedColor
		}
		x := opts.Padding
		if row.Layout.ExpandWidth {
			x = alignX(face, label, opts.Width, opts.Padding, row.Layout.Alignment)
		}
		drawText(img, face, label, x, y, opts.RowHeight, c)
		y += opts.RowHeight
	}
	return img
}

// PNG encodes Image(v, opts) to w.
func PNG(w io.Writer, v View, opts ImageOptions) error {
	return png.Encode(w, Image(v, opts))
}

func withImageDefaults(opts ImageOptions) ImageOptions {
	def := DefaultImageOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.RowHeight <= 0 {
		opts.RowHeight = def.RowHeight
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	return opts
}

func alignX(face font.Face, label string, width, padding int, a infinite.Alignment) int {
	textWidth := font.MeasureString(face, label).Ceil()
	switch a {
	case infinite.AlignCenter:
		return max((width-textWidth)/2, 0)
	case infinite.AlignEnd:
		return max(width-padding-textWidth, 0)
	default:
		return padding
	}
}

// drawText draws label vertically centred in the row starting at top.
func drawText(dst draw.Image, face font.Face, label string, x, top, rowHeight int, c color.Color) {
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()
	baseline := top + (rowHeight-textHeight)/2 + metrics.Ascent.Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(label)
}

// Package render draws the resolved boxes of a scene into an image, for
// inspecting layouts. It only reads layout results.
package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/pkg/scene"
)

// palette colors boxes by depth.
var palette = [][3]float64{
	{0.26, 0.52, 0.96},
	{0.20, 0.66, 0.33},
	{0.98, 0.74, 0.02},
	{0.92, 0.26, 0.21},
	{0.61, 0.15, 0.69},
	{0.00, 0.59, 0.53},
}

// Options controls rendering.
type Options struct {
	// Scale multiplies all coordinates. Zero means 1.
	Scale float64
	// Labels draws box ids.
	Labels bool
	// Margin is the blank border around the scene in output pixels.
	Margin int
}

// Renderer draws one scene.
type Renderer struct {
	context *gg.Context
	opts    Options
}

// NewRenderer creates a canvas large enough for the scene's bounds.
func NewRenderer(s *scene.Scene, opts Options) (*Renderer, error) {
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.Scale < 0 {
		return nil, fmt.Errorf("render: negative scale %v", opts.Scale)
	}
	b := Bounds(s)
	width := int(math.Ceil(b.Right()*opts.Scale)) + 2*opts.Margin
	height := int(math.Ceil(b.Bottom()*opts.Scale)) + 2*opts.Margin
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: empty scene (%dx%d)", width, height)
	}
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	return &Renderer{context: dc, opts: opts}, nil
}

// Bounds returns the union of all visible boxes in scene coordinates.
func Bounds(s *scene.Scene) flex.Rect {
	var bounds flex.Rect
	first := true
	s.Walk(func(b *scene.Box) bool {
		if b.Hidden() {
			return false
		}
		r := b.WorldRect()
		if first {
			bounds, first = r, false
		} else {
			bounds = bounds.Union(r)
		}
		return true
	})
	return bounds
}

// Render paints the scene: a white background, then every visible box as a
// translucent fill with an outline, parents below children.
func (r *Renderer) Render(s *scene.Scene) {
	dc := r.context
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.Push()
	dc.Translate(float64(r.opts.Margin), float64(r.opts.Margin))
	dc.Scale(r.opts.Scale, r.opts.Scale)
	s.Walk(func(b *scene.Box) bool {
		if b.Hidden() {
			return false
		}
		r.drawBox(b)
		return true
	})
	dc.Pop()
}

func (r *Renderer) drawBox(b *scene.Box) {
	dc := r.context
	rect := b.WorldRect()
	c := palette[b.Depth()%len(palette)]

	dc.DrawRectangle(rect.X, rect.Y, rect.Width, rect.Height)
	dc.SetRGBA(c[0], c[1], c[2], 0.25)
	dc.FillPreserve()
	dc.SetRGBA(c[0], c[1], c[2], 1)
	dc.SetLineWidth(1 / r.opts.Scale)
	dc.Stroke()

	// The content area of a padded container is outlined with dashes.
	if pad := b.Padding(); !pad.IsZero() {
		content := rect.Inset(pad)
		if !content.IsEmpty() {
			dc.Push()
			dc.SetDash(4/r.opts.Scale, 2/r.opts.Scale)
			dc.DrawRectangle(content.X, content.Y, content.Width, content.Height)
			dc.Stroke()
			dc.Pop()
		}
	}

	if r.opts.Labels && rect.Width > 0 && rect.Height > 0 {
		dc.SetRGB(0, 0, 0)
		dc.Push()
		// Text is drawn unscaled so labels stay readable.
		dc.Scale(1/r.opts.Scale, 1/r.opts.Scale)
		dc.DrawString(b.ID, rect.X*r.opts.Scale+3, rect.Y*r.opts.Scale+13)
		dc.Pop()
	}
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// EncodePNG writes the rendered image as PNG.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}

// SavePNG writes the rendered image to a PNG file.
func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

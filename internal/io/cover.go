package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"

	"golang.org/x/image/draw"
)

// tileSize is the edge length of one disc in the unscaled mosaic.
const tileSize = 64

// CoverRenderer draws playlist cover art from item colours.
//
// The cover is a 2x2 grid of discs, one per colour, on a dark background.
// With fewer than four colours the remaining cells stay empty; with one
// colour the disc fills the whole cover. The grid is drawn at a small fixed
// size and scaled up with Catmull-Rom, which keeps the disc edges smooth.
type CoverRenderer struct {
	Background color.Color
	Quality    int
}

// NewCoverRenderer creates a CoverRenderer with the default background and
// JPEG quality 90.
func NewCoverRenderer() *CoverRenderer {
	return &CoverRenderer{
		Background: color.RGBA{R: 0x2e, G: 0x10, B: 0x65, A: 0xff},
		Quality:    90,
	}
}

// RenderMosaic returns a size x size JPEG built from up to four colours.
func (r *CoverRenderer) RenderMosaic(ctx context.Context, colors []color.RGBA, size int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(colors) > 4 {
		colors = colors[:4]
	}

	cells := 2
	if len(colors) <= 1 {
		cells = 1
	}

	src := image.NewRGBA(image.Rect(0, 0, cells*tileSize, cells*tileSize))
	draw.Draw(src, src.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)

	for i, c := range colors {
		x := (i % cells) * tileSize
		y := (i / cells) * tileSize
		cell := image.Rect(x, y, x+tileSize, y+tileSize)
		drawDisc(src, cell, c)
	}

	if size <= 0 {
		size = src.Bounds().Dx()
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: r.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawDisc paints a record: an outer disc in c with a dark spindle hole.
func drawDisc(dst draw.Image, cell image.Rectangle, c color.RGBA) {
	center := image.Pt(cell.Min.X+cell.Dx()/2, cell.Min.Y+cell.Dy()/2)
	radius := cell.Dx()/2 - 2

	draw.DrawMask(dst, cell, image.NewUniform(c), image.Point{}, &circle{center, radius}, cell.Min, draw.Over)
	draw.DrawMask(dst, cell, image.NewUniform(color.Black), image.Point{}, &circle{center, radius / 8}, cell.Min, draw.Over)
}

// circle is an alpha mask that is opaque inside the radius.
type circle struct {
	p image.Point
	r int
}

func (c *circle) ColorModel() color.Model {
	return color.AlphaModel
}

func (c *circle) Bounds() image.Rectangle {
	return image.Rect(c.p.X-c.r, c.p.Y-c.r, c.p.X+c.r, c.p.Y+c.r)
}

func (c *circle) At(x, y int) color.Color {
	xx, yy, rr := float64(x-c.p.X)+0.5, float64(y-c.p.Y)+0.5, float64(c.r)
	if xx*xx+yy*yy < rr*rr {
		return color.Alpha{A: 255}
	}
	return color.Alpha{}
}

package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/mj1618/captvty-nav/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LabelMode controls what text is drawn on each highlighted element.
type LabelMode int

const (
	// LabelNames draws the element name.
	LabelNames LabelMode = iota
	// LabelIDs draws "[id]" element IDs.
	LabelIDs
	// LabelCoords draws "(x,y)" screen-absolute center coordinates.
	LabelCoords
)

// ParseLabelMode converts a --labels flag value to a LabelMode.
func ParseLabelMode(s string) (LabelMode, error) {
	switch s {
	case "names", "":
		return LabelNames, nil
	case "ids":
		return LabelIDs, nil
	case "coords":
		return LabelCoords, nil
	default:
		return LabelNames, fmt.Errorf("unknown label mode %q (use names, ids, or coords)", s)
	}
}

// highlight is an element drawn on top of the window outline.
type highlight struct {
	el    *model.Element
	color color.RGBA
}

var (
	backgroundColor = color.RGBA{R: 32, G: 32, B: 32, A: 255}
	outlineColor    = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	shadowColor     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// RenderWindow draws the outline of every element of window, then the
// highlighted elements with labels. Element bounds are screen-absolute;
// the image origin is the window's top-left corner.
func RenderWindow(window *model.Element, marks []highlight, mode LabelMode) *image.RGBA {
	w, h := window.Bounds[2], window.Bounds[3]
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	winX, winY := window.Bounds[0], window.Bounds[1]
	var outline func(el *model.Element)
	outline = func(el *model.Element) {
		drawElementBox(img, el, winX, winY, outlineColor)
		for i := range el.Children {
			outline(&el.Children[i])
		}
	}
	outline(window)

	for _, m := range marks {
		drawElementBox(img, m.el, winX, winY, m.color)
	}
	// Labels last so boxes never cover text.
	for _, m := range marks {
		x, y := m.el.Center()
		drawTextWithOutline(img, elementLabel(m.el, mode), x-winX, y-winY, textColor, shadowColor)
	}
	return img
}

func elementLabel(el *model.Element, mode LabelMode) string {
	switch mode {
	case LabelIDs:
		return fmt.Sprintf("[%d]", el.ID)
	case LabelCoords:
		x, y := el.Center()
		return fmt.Sprintf("(%d,%d)", x, y)
	default:
		return el.Name
	}
}

func drawElementBox(img *image.RGBA, el *model.Element, winX, winY int, c color.Color) {
	x := el.Bounds[0] - winX
	y := el.Bounds[1] - winY
	drawRectangle(img, x, y, x+el.Bounds[2], y+el.Bounds[3], c)
}

// isWithinBounds checks if a point is within the image bounds
func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline on the image
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}

// drawTextWithOutline draws text centered on (x, y) with a one-pixel outline.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, fg, outline color.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	originX := x - width/2
	// basicfont's Dot is the baseline; Ascent 11 of Height 13.
	originY := y + face.Ascent - face.Height/2

	if !isWithinBounds(img.Bounds(), x, y) {
		return
	}

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(outline),
				Face: face,
				Dot:  fixed.P(originX+dx, originY+dy),
			}
			d.DrawString(text)
		}
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(originX, originY),
	}
	d.DrawString(text)
}

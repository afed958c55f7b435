package gallery

import (
	"html"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/galleryroom/vr-gallery/internal/model"
)

// Caption canvas geometry, in logical units. The canvas is supersampled for
// sharpness; layout happens in device pixels.
const (
	CaptionCanvasWidth  = 1024
	CaptionCanvasHeight = 410
	CaptionSupersample  = 2

	captionMarginX    = 64
	captionTitleY     = 64
	captionDateY      = 104
	captionBodyTop    = 150
	captionBodyBottom = 380

	captionLineGap      = 8
	captionParagraphGap = 14
)

// CaptionPainter renders a work item's title, date, and body onto a caption
// texture. Body text wraps character by character, which stays correct for
// dense scripts without word spacing.
type CaptionPainter struct {
	face  font.Face
	scale int
}

// NewCaptionPainter creates a painter with the default face
func NewCaptionPainter() *CaptionPainter {
	return &CaptionPainter{
		face:  basicfont.Face7x13,
		scale: CaptionSupersample,
	}
}

// Paint renders the caption texture for item. Text that would run past the
// fixed vertical extent is silently dropped; the canvas never grows.
func (p *CaptionPainter) Paint(item *model.WorkItem) *image.RGBA {
	w := CaptionCanvasWidth * p.scale
	h := CaptionCanvasHeight * p.scale

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 40, G: 40, B: 40, A: 255}),
		Face: p.face,
	}

	// Title, centered near the top
	if item.Title != "" {
		width := drawer.MeasureString(item.Title)
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(w/2) - width/2,
			Y: fixed.I(captionTitleY * p.scale),
		}
		drawer.DrawString(item.Title)
	}

	// Shooting date, centered under the title
	if date := item.FormattedDate(); date != "" {
		width := drawer.MeasureString(date)
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(w/2) - width/2,
			Y: fixed.I(captionDateY * p.scale),
		}
		drawer.DrawString(date)
	}

	// Body, wrapped against the margins and truncated at the bottom bound
	maxWidth := fixed.I(w - 2*captionMarginX*p.scale)
	lineHeight := p.face.Metrics().Height.Ceil() + captionLineGap

	y := captionBodyTop * p.scale
	bottom := captionBodyBottom * p.scale

	for _, paragraph := range splitParagraphs(item.Body) {
		if paragraph == "" {
			y += captionParagraphGap
			continue
		}
		for _, line := range wrapByRune(p.face, paragraph, maxWidth) {
			if y > bottom {
				return img
			}
			drawer.Dot = fixed.Point26_6{
				X: fixed.I(captionMarginX * p.scale),
				Y: fixed.I(y),
			}
			drawer.DrawString(line)
			y += lineHeight
		}
		y += captionParagraphGap
	}

	return img
}

// splitParagraphs converts the body's HTML fragment into plain-text
// paragraphs: explicit line-break tags become paragraph boundaries, any other
// markup is stripped, and entities are unescaped.
func splitParagraphs(body string) []string {
	if body == "" {
		return nil
	}

	for _, br := range []string{"<br />", "<br/>", "<br>", "<BR>"} {
		body = strings.ReplaceAll(body, br, "\n")
	}
	body = stripTags(body)
	body = html.UnescapeString(body)

	parts := strings.Split(body, "\n")
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		paragraphs = append(paragraphs, strings.TrimSpace(part))
	}
	return paragraphs
}

// stripTags removes any remaining markup without touching text content
func stripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// wrapByRune breaks s into lines no wider than maxWidth, measuring rune by
// rune in the target face.
func wrapByRune(face font.Face, s string, maxWidth fixed.Int26_6) []string {
	var lines []string
	var line strings.Builder
	var lineWidth fixed.Int26_6

	for _, r := range s {
		advance, ok := face.GlyphAdvance(r)
		if !ok {
			advance, _ = face.GlyphAdvance('?')
		}

		if lineWidth+advance > maxWidth && line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}

		line.WriteRune(r)
		lineWidth += advance
	}

	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

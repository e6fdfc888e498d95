// Package bignum renders counts as large block numerals using half-block characters.
package bignum

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontPaths lists monospace fonts tried before the built-in bitmap face.
var fontPaths = []string{
	// macOS
	"/System/Library/Fonts/Menlo.ttc",
	"/System/Library/Fonts/Monaco.ttf",
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSansMono-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationMono-Bold.ttf",
	"/usr/share/fonts/opentype/noto/NotoSansMono-Bold.ttf",
	// Windows
	"C:\\Windows\\Fonts\\consolab.ttf",
}

// glyphKey identifies one rendered character at one size.
type glyphKey struct {
	r          rune
	cols, rows int
}

// Renderer draws strings with one font face. Each character is rendered
// once per size and cached, so the cache is bounded by the character set.
type Renderer struct {
	face  font.Face
	cache map[glyphKey][]string
}

// New returns a renderer using the first system font found, or the built-in
// 7x13 bitmap face when none is installed.
func New() *Renderer {
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face := parseFace(data); face != nil {
			return NewWithFace(face)
		}
	}
	return NewWithFace(basicfont.Face7x13)
}

// NewWithFace returns a renderer drawing with face.
func NewWithFace(face font.Face) *Renderer {
	return &Renderer{
		face:  face,
		cache: make(map[glyphKey][]string),
	}
}

func parseFace(data []byte) font.Face {
	// Font collections first (.ttc)
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: 48, DPI: 72}); err == nil {
				return face
			}
		}
	}

	// Single TrueType font
	if fnt, err := truetype.Parse(data); err == nil {
		return truetype.NewFace(fnt, &truetype.Options{Size: 48, DPI: 72})
	}

	return nil
}

// Render draws s as block art rows lines tall. Each line is cols cells
// wide per character of s. It returns "" for empty input or invalid sizes.
func (r *Renderer) Render(s string, cols, rows int) string {
	if s == "" || cols < 1 || rows < 1 || r.face == nil {
		return ""
	}

	lines := make([]string, rows)
	for _, c := range s {
		g := r.glyph(c, cols, rows)
		if g == nil {
			return ""
		}
		for i := range lines {
			lines[i] += g[i]
		}
	}
	return strings.Join(lines, "\n")
}

// glyph returns the rows lines of block art for c.
func (r *Renderer) glyph(c rune, cols, rows int) []string {
	key := glyphKey{r: c, cols: cols, rows: rows}
	if g, ok := r.cache[key]; ok {
		return g
	}

	art := r.render(string(c), cols, rows)
	if art == "" {
		return nil
	}
	g := strings.Split(art, "\n")
	r.cache[key] = g
	return g
}

func (r *Renderer) render(s string, cols, rows int) string {
	metrics := r.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()

	d := &font.Drawer{Face: r.face}
	width := d.MeasureString(s).Ceil()
	if width < 1 || height < 1 {
		return ""
	}

	srcImg := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d.Dst = srcImg
	d.Src = image.White
	d.Dot = fixed.P(0, ascent)
	d.DrawString(s)

	n := len([]rune(s))
	scaled := scaleDown(srcImg, cols*n, rows*2)
	return imageToHalfBlocks(scaled, cols*n, rows)
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := max(int(float64(dx+1)*xRatio), sx1+1)
			sy2 := max(int(float64(dy+1)*yRatio), sy1+1)
			sx2 = min(sx2, srcWidth)
			sy2 = min(sy2, srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art.
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = uint8(40)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img, col, row*2) > threshold
			bottomOn := brightness(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				b.WriteRune('█')
			case topOn:
				b.WriteRune('▀')
			case bottomOn:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

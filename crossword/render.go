package crossword

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LetterGrid lays the assignment's words onto a Height×Width rune
// grid; cells outside any variable stay zero.
func (c *Crossword) LetterGrid(a Assignment) [][]rune {
	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, c.Width)
	}
	for v, w := range a {
		for k, cell := range v.Cells() {
			grid[cell[0]][cell[1]] = rune(w[k])
		}
	}

	return grid
}

// Render returns the solved puzzle as text: letters in open cells,
// full blocks elsewhere.
func (c *Crossword) Render(a Assignment) string {
	grid := c.LetterGrid(a)
	var sb strings.Builder
	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			switch {
			case !c.structure[i][j]:
				sb.WriteRune('█')
			case grid[i][j] != 0:
				sb.WriteRune(grid[i][j])
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// PNG rendering geometry.
const (
	cellSize   = 100
	cellBorder = 2
)

// SaveImage writes a PNG rendering of the assignment: white cells with
// centered letters on a black background.
func (c *Crossword) SaveImage(a Assignment, path string) error {
	grid := c.LetterGrid(a)
	img := image.NewRGBA(image.Rect(0, 0, c.Width*cellSize, c.Height*cellSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i := 0; i < c.Height; i++ {
		for j := 0; j < c.Width; j++ {
			if !c.structure[i][j] {
				continue
			}
			cell := image.Rect(
				j*cellSize+cellBorder, i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder, (i+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.White, image.Point{}, draw.Src)
			if grid[i][j] == 0 {
				continue
			}
			s := string(grid[i][j])
			d := font.Drawer{
				Dst:  img,
				Src:  image.Black,
				Face: face,
				Dot: fixed.P(
					j*cellSize+cellSize/2-face.Advance/2,
					i*cellSize+cellSize/2+face.Height/2,
				),
			}
			d.DrawString(s)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crossword: create image file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("crossword: encode image: %w", err)
	}

	return nil
}

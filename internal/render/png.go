package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/iamasit07/connectfour/internal/domain"
)

const (
	cellSize = 40
	margin   = 10
	legend   = 20
	radius   = 15

	ImageWidth  = domain.Columns*cellSize + 2*margin
	ImageHeight = domain.Rows*cellSize + 2*margin + legend
)

// PNG draws board as a PNG image of ImageWidth x ImageHeight pixels.
func PNG(w io.Writer, board domain.Board) error {
	dc := gg.NewContext(ImageWidth, ImageHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Frame
	dc.SetRGB(0.1, 0.3, 0.8)
	dc.DrawRectangle(margin, margin, domain.Columns*cellSize, domain.Rows*cellSize)
	dc.Fill()

	y := float64(margin + cellSize/2)
	for row := 0; row < domain.Rows; row++ {
		x := float64(margin + cellSize/2)

		for col := 0; col < domain.Columns; col++ {
			switch board.Cell(row, col) {
			case domain.PlayerOne:
				dc.SetRGB(0.9, 0.1, 0.1)
			case domain.PlayerTwo:
				dc.SetRGB(1, 0.85, 0)
			default:
				dc.SetRGB(1, 1, 1)
			}

			dc.DrawCircle(x, y, radius)
			dc.Fill()

			x += cellSize
		}

		y += cellSize
	}

	dc.SetRGB(0, 0, 0)
	legendY := float64(margin + domain.Rows*cellSize + legend/2)
	for col := 0; col < domain.Columns; col++ {
		x := float64(margin + col*cellSize + cellSize/2)
		dc.DrawStringAnchored(strconv.Itoa(col), x, legendY, 0.5, 0.5)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNGBytes is PNG into a byte slice.
func PNGBytes(board domain.Board) ([]byte, error) {
	var b bytes.Buffer
	if err := PNG(&b, board); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

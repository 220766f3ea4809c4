// Package diagram renders a position as an SVG board for diagnostics,
// the graphical counterpart of the UCI "d" command.
package diagram

import (
	"fmt"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/AKAA-2025/Chess-AI-Engine/internal/board"
)

const (
	squareSize = 48
	margin     = 24
	boardSize  = 8 * squareSize
)

const (
	lightFill = "fill:#f0d9b5"
	darkFill  = "fill:#b58863"
	whiteText = "font-family:monospace;font-size:32px;text-anchor:middle;fill:#ffffff;stroke:#000000;stroke-width:1"
	blackText = "font-family:monospace;font-size:32px;text-anchor:middle;fill:#000000"
	labelText = "font-family:monospace;font-size:14px;text-anchor:middle;fill:#333333"
)

// Render writes the position as an SVG document. Rank 8 is drawn at
// the top, as on a printed diagram.
func Render(w io.Writer, pos *board.Position) {
	canvas := svg.New(w)
	canvas.Start(boardSize+2*margin, boardSize+2*margin)

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := margin + file*squareSize
			y := margin + (7-rank)*squareSize

			style := darkFill
			if (file+rank)%2 == 1 {
				style = lightFill
			}
			canvas.Rect(x, y, squareSize, squareSize, style)

			piece := pos.PieceAt(board.NewSquare(file, rank))
			if piece == board.NoPiece {
				continue
			}

			style = blackText
			if piece.Color() == board.White {
				style = whiteText
			}
			canvas.Text(x+squareSize/2, y+squareSize-12, piece.String(), style)
		}
	}

	// File and rank labels.
	for file := 0; file < 8; file++ {
		x := margin + file*squareSize + squareSize/2
		canvas.Text(x, margin+boardSize+16, fmt.Sprintf("%c", 'a'+file), labelText)
	}
	for rank := 0; rank < 8; rank++ {
		y := margin + (7-rank)*squareSize + squareSize/2 + 4
		canvas.Text(margin/2, y, fmt.Sprintf("%d", rank+1), labelText)
	}

	canvas.End()
}

// WriteFile renders the position into the named SVG file.
func WriteFile(path string, pos *board.Position) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	Render(f, pos)
	return nil
}

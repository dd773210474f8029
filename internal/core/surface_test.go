package core

import "testing"

func TestFitCanvas(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		wantW      int
		wantH      int
	}{
		{"classic terminal is height-bound", 80, 24, 32, 24},
		{"wide terminal is height-bound", 200, 100, 134, 100},
		{"narrow terminal is width-bound", 20, 100, 20, 15},
		{"no space", 0, 24, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := FitCanvas(tc.cols, tc.rows, 400, 600)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("FitCanvas(%d, %d) = (%d, %d), expected (%d, %d)",
					tc.cols, tc.rows, w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestCellSurfaceFillRect(t *testing.T) {
	s := NewScreen(40, 30) // 10 x 20 logical units per cell
	surf := NewCellSurface(s, 400, 600)

	surf.FillRect(NewRect(0, 0, 400, 600), ColorSky)
	surf.FillRect(NewRect(80, 300, 40, 40), ColorKite)

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			inKite := x >= 8 && x < 12 && y >= 15 && y < 17
			want := ColorSky
			if inKite {
				want = ColorKite
			}
			if got := s.GetCell(x, y).BG; got != want {
				t.Fatalf("cell (%d, %d) BG = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestCellSurfaceFillRectClipping(t *testing.T) {
	s := NewScreen(40, 30)
	surf := NewCellSurface(s, 400, 600)

	// Entirely off the left edge: nothing painted
	surf.FillRect(NewRect(-100, 0, 60, 600), ColorObstacle)
	for y := 0; y < 30; y++ {
		if s.GetCell(0, y).BG == ColorObstacle {
			t.Fatalf("off-screen rect painted cell (0, %d)", y)
		}
	}

	// Partly visible: clipped to the left column range
	surf.FillRect(NewRect(-30, 0, 60, 100), ColorObstacle)
	if s.GetCell(0, 0).BG != ColorObstacle || s.GetCell(2, 0).BG != ColorObstacle {
		t.Error("visible part of a clipped rect should be painted")
	}
	if s.GetCell(3, 0).BG == ColorObstacle {
		t.Error("clipped rect painted past its right edge")
	}

	// Sub-cell rects still cover one cell
	surf.FillRect(NewRect(200, 500, 2, 2), ColorKite)
	if s.GetCell(20, 25).BG != ColorKite {
		t.Error("tiny rect should cover at least one cell")
	}
}

func TestCellSurfaceFillText(t *testing.T) {
	s := NewScreen(40, 30)
	surf := NewCellSurface(s, 400, 600)

	surf.FillText(200, 300, "Game Over", TextStyle{Size: 30, Color: ColorWhite, Align: AlignCenter})
	if s.GetCell(16, 14).Rune != 'G' {
		t.Errorf("centered text misplaced, row 14 = %q", s.Row(14))
	}

	surf.FillText(10, 30, "Score: 0", TextStyle{Size: 20, Color: ColorInk})
	if s.GetCell(1, 1).Rune != 'S' {
		t.Errorf("left-aligned text misplaced, row 1 = %q", s.Row(1))
	}

	// Text below the canvas clamps to the last row
	surf.FillText(0, 10000, "x", TextStyle{Size: 20})
	if s.GetCell(0, 29).Rune != 'x' {
		t.Error("text below the canvas should clamp to the last row")
	}

	w, h := surf.Size()
	if w != 400 || h != 600 {
		t.Errorf("Size() = (%v, %v), expected (400, 600)", w, h)
	}
}

func TestCellSurfaceEmptyScreen(t *testing.T) {
	surf := NewCellSurface(NewScreen(0, 0), 400, 600)
	// Must not panic
	surf.FillRect(NewRect(0, 0, 400, 600), ColorSky)
	surf.FillText(0, 0, "x", TextStyle{})
}

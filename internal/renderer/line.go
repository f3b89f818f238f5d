package renderer

import "image"

// bresenham returns the cells on the line from (x0,y0) to (x1,y1),
// both endpoints included.
func bresenham(x0, y0, x1, y1 int) []image.Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	pts := make([]image.Point, 0, dx+dy+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// lineChar returns the character for a line running along (dx, dy) in
// screen space.
func lineChar(dx, dy float64) rune {
	// Cells are about twice as tall as wide; a slope under ~1/4 in cell
	// units reads as horizontal.
	adx, ady := absf(dx), absf(dy)
	switch {
	case ady*4 <= adx:
		return '─'
	case adx*4 <= ady:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// arrowChar returns an arrowhead pointing along (dx, dy) in screen space.
func arrowChar(dx, dy float64) rune {
	if absf(dy)*2 > absf(dx) {
		if dy > 0 {
			return '▼'
		}
		return '▲'
	}
	if dx > 0 {
		return '►'
	}
	return '◄'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

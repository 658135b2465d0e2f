package raster

import "tinyrender/internal/tga"

// DrawLine plots the segment (ax,ay)-(bx,by) into img with Bresenham's
// integer algorithm. Pixels outside img are skipped. The plotted set does not
// depend on the order of the endpoints.
func DrawLine(ax, ay, bx, by int, img *tga.Image, c tga.Color) {
	steep := abs(ax-bx) < abs(ay-by)
	if steep {
		ax, ay = ay, ax
		bx, by = by, bx
	}
	if ax > bx {
		ax, bx = bx, ax
		ay, by = by, ay
	}

	dx := bx - ax
	dy := abs(by - ay)
	ystep := 1
	if by < ay {
		ystep = -1
	}

	y := ay
	ierror := 0
	for x := ax; x <= bx; x++ {
		if steep {
			img.Set(y, x, c)
		} else {
			img.Set(x, y, c)
		}
		ierror += 2 * dy
		if ierror > dx {
			y += ystep
			ierror -= 2 * dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

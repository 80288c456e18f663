package entity

import "math"

// edgeSamples are the fractional positions probed along every box edge.
// Corner-only probing lets thin walls slip between corners of a large box.
var edgeSamples = [...]float64{0, 0.25, 0.5, 0.75, 1}

// IsSolidAt checks if the world point lies on a solid tile.
// Points outside the grid, and every point of an invalid grid, are solid.
func (g *TileGrid) IsSolidAt(x, y float64) bool {
	if !g.Valid() || x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return true
	}
	tx := int(x) / g.TileSize
	ty := int(y) / g.TileSize
	code, ok := g.Code(tx, ty)
	if !ok {
		return true
	}
	return IsSolidCode(code)
}

// CanOccupy checks whether a box at (x, y) touches no solid tile.
// It samples the corners plus quarter, half and three-quarter points on each edge.
func (g *TileGrid) CanOccupy(x, y, w, h float64) bool {
	for _, f := range edgeSamples {
		px := x + w*f
		py := y + h*f
		if g.IsSolidAt(px, y) || g.IsSolidAt(px, y+h) ||
			g.IsSolidAt(x, py) || g.IsSolidAt(x+w, py) {
			return false
		}
	}
	return true
}

// CanOccupyBox is CanOccupy for a hitbox
func (g *TileGrid) CanOccupyBox(hb Hitbox) bool {
	return g.CanOccupy(hb.X, hb.Y, hb.Width, hb.Height)
}

// IsOnFloor checks if either bottom corner, one unit below the box, is solid
func (g *TileGrid) IsOnFloor(hb Hitbox) bool {
	below := hb.Bottom() + 1
	return g.IsSolidAt(hb.X, below) || g.IsSolidAt(hb.Right(), below)
}

// IsFloorAhead checks for floor under the leading bottom corner after moving dx
func (g *TileGrid) IsFloorAhead(hb Hitbox, dx float64) bool {
	below := hb.Bottom() + 1
	if dx > 0 {
		return g.IsSolidAt(hb.Right()+dx, below)
	}
	return g.IsSolidAt(hb.X+dx, below)
}

// SnapX returns the X that puts the box flush against the wall it would
// penetrate by moving dx. The positive side stops one unit short because
// sampling includes the right edge.
func (g *TileGrid) SnapX(hb Hitbox, dx float64) float64 {
	if !g.Valid() {
		return hb.X
	}
	ts := float64(g.TileSize)
	if dx > 0 {
		wallTile := math.Floor((hb.Right() + dx) / ts)
		return wallTile*ts - hb.Width - 1
	}
	wallTile := math.Floor((hb.X + dx) / ts)
	return (wallTile + 1) * ts
}

// SnapY returns the Y that rests the box on the floor it would penetrate by
// falling dy, or puts it right under the ceiling when rising.
func (g *TileGrid) SnapY(hb Hitbox, dy float64) float64 {
	if !g.Valid() {
		return hb.Y
	}
	ts := float64(g.TileSize)
	if dy >= 0 {
		floorTile := math.Floor((hb.Bottom() + dy) / ts)
		return floorTile*ts - hb.Height - 1
	}
	roofTile := math.Floor((hb.Y + dy) / ts)
	return (roofTile + 1) * ts
}

package delaunay

// BoundingBox is an axis-aligned extent [minX, minY, maxX, maxY].
type BoundingBox [4]float64

// BBox computes the bounding box of a set of points. Neither the core
// triangulator nor encoding/gpkg calls it.
func BBox(points ...Point) (bbox BoundingBox) {
	for i, pt := range points {
		if i == 0 {
			bbox[0], bbox[1], bbox[2], bbox[3] = pt.X, pt.Y, pt.X, pt.Y
			continue
		}
		switch {
		case pt.X < bbox[0]:
			bbox[0] = pt.X
		case pt.X > bbox[2]:
			bbox[2] = pt.X
		}
		switch {
		case pt.Y < bbox[1]:
			bbox[1] = pt.Y
		case pt.Y > bbox[3]:
			bbox[3] = pt.Y
		}
	}
	return
}

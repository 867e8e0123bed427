package geometry

// CubicAt evaluates the cubic Bezier curve from p0 to p3 with control points
// p1 and p2 at parameter t in [0, 1].
func CubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// FlattenCubic approximates the curve with a polyline of the given number of
// segments. The result always starts at p0 and ends at p3.
func FlattenCubic(p0, p1, p2, p3 Point, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	out := make([]Point, 0, segments+1)
	out = append(out, p0)
	for i := 1; i < segments; i++ {
		out = append(out, CubicAt(p0, p1, p2, p3, float64(i)/float64(segments)))
	}
	return append(out, p3)
}

// CubicSegments picks a flattening resolution from the length of the control
// polygon so that on-screen steps stay around the given tolerance.
func CubicSegments(p0, p1, p2, p3 Point, tolerance float64) int {
	if tolerance <= 0 {
		tolerance = 1
	}
	length := Distance(p0, p1) + Distance(p1, p2) + Distance(p2, p3)
	n := int(length / tolerance)
	if n < 8 {
		return 8
	}
	if n > 256 {
		return 256
	}
	return n
}

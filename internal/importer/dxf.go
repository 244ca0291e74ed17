package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// segment is a line between two world points, used to chain loose DXF
// LINE and ARC entities into closed outlines.
type segment struct {
	start model.Point
	end   model.Point
}

// dxfJoinTolerance is the maximum endpoint distance at which two
// entities are considered connected.
const dxfJoinTolerance = 0.01

// ImportDXF reads a DXF floor drawing and converts every closed shape
// (LWPOLYLINE, CIRCLE, or chain of connected LINEs/ARCs) into a polygon
// pillar zone. Architectural drawings typically describe columns and
// walls this way; the result lands on the plan as fixed obstructions.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines [][]model.Point
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := lwPolylinePoints(e)
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Circle:
			outlines = append(outlines, circlePoints(e.Center[0], e.Center[1], e.Radius, 64))

		case *entity.Arc:
			pts := arcPoints(e, 32)
			for i := 0; i < len(pts)-1; i++ {
				segments = append(segments, segment{start: pts[i], end: pts[i+1]})
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: model.Point{X: e.Start[0], Y: e.Start[1]},
				end:   model.Point{X: e.End[0], Y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	outlines = append(outlines, chainSegments(segments, dxfJoinTolerance)...)

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	num := 0
	for _, outline := range outlines {
		n := geometry.Normalize(outline)
		if n == nil {
			continue
		}
		if n.W < model.GridUnit && n.H < model.GridUnit {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f)", n.W, n.H))
			continue
		}
		num++
		pillar := model.NewPillar(n.X, n.Y, n.W, n.H)
		pillar.Points = n.Points
		pillar.Label = fmt.Sprintf("DXF Pillar %d", num)
		result.Booths = append(result.Booths, pillar)
	}

	return result
}

// lwPolylinePoints flattens an LWPOLYLINE into a point outline,
// interpolating bulged vertices as arc segments. A bulge is the tangent
// of a quarter of the arc's included angle.
func lwPolylinePoints(lw *entity.LwPolyline) []model.Point {
	var outline []model.Point
	for i := 0; i < len(lw.Vertices); i++ {
		v := lw.Vertices[i]
		current := model.Point{X: v[0], Y: v[1]}

		bulge := 0.0
		if i < len(lw.Bulges) {
			bulge = lw.Bulges[i]
		}
		if math.Abs(bulge) <= 1e-9 {
			outline = append(outline, current)
			continue
		}

		next := lw.Vertices[(i+1)%len(lw.Vertices)]
		arc := bulgePoints(current, model.Point{X: next[0], Y: next[1]}, bulge, 16)
		// The closing vertex arrives on the next loop iteration.
		outline = append(outline, arc[:len(arc)-1]...)
	}
	return outline
}

// bulgePoints interpolates the arc between two vertices described by a
// DXF bulge factor.
func bulgePoints(p1, p2 model.Point, bulge float64, segments int) []model.Point {
	mx := (p1.X + p2.X) / 2
	my := (p1.Y + p2.Y) / 2
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	chord := math.Hypot(dx, dy)
	if chord < 1e-9 {
		return []model.Point{p1, p2}
	}

	sagitta := math.Abs(bulge) * chord / 2
	radius := (chord*chord/(4*sagitta) + sagitta) / 2

	perpX := -dy / chord
	perpY := dx / chord
	if bulge > 0 {
		perpX, perpY = -perpX, -perpY
	}
	cx := mx + perpX*(radius-sagitta)
	cy := my + perpY*(radius-sagitta)

	start := math.Atan2(p1.Y-cy, p1.X-cx)
	end := math.Atan2(p2.Y-cy, p2.X-cx)
	if bulge < 0 && end > start {
		end -= 2 * math.Pi
	}
	if bulge > 0 && end < start {
		end += 2 * math.Pi
	}

	pts := make([]model.Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		a := start + t*(end-start)
		pts = append(pts, model.Point{X: cx + radius*math.Cos(a), Y: cy + radius*math.Sin(a)})
	}
	return pts
}

// circlePoints approximates a circle as a regular polygon.
func circlePoints(cx, cy, r float64, segments int) []model.Point {
	pts := make([]model.Point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = model.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}

// arcPoints converts a DXF ARC entity into a polyline.
func arcPoints(a *entity.Arc, segments int) []model.Point {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	start := a.Angle[0] * math.Pi / 180
	end := a.Angle[1] * math.Pi / 180
	if end <= start {
		end += 2 * math.Pi
	}

	pts := make([]model.Point, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		angle := start + t*(end-start)
		pts[i] = model.Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return pts
}

// chainSegments connects loose segments into closed outlines. Open
// chains are dropped; closed ones lose the duplicate closing point.
func chainSegments(segs []segment, tolerance float64) [][]model.Point {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][]model.Point

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []model.Point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		for extended := true; extended; {
			extended = false
			tail := chain[len(chain)-1]
			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					extended = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					extended = true
					break
				}
			}
		}

		closed := len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance)
		if closed {
			outlines = append(outlines, chain[:len(chain)-1])
		}
	}

	// Largest shapes first for predictable stacking on the plan.
	sort.Slice(outlines, func(i, j int) bool {
		return geometry.PolygonArea(outlines[i]) > geometry.PolygonArea(outlines[j])
	})
	return outlines
}

func pointsClose(a, b model.Point, tolerance float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= tolerance
}

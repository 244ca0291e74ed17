package export

import (
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
)

// svgPadding is the whitespace kept around the plan extent, in world units.
const svgPadding = 20.0

// svgScale maps world units to SVG pixels.
const svgScale = 2.0

// ExportSVG writes the floor plan as a scalable vector drawing. Booths
// are drawn as filled outlines with their walls; open walls (aisle-facing
// sides) are left without a wall stroke so the drawing reads like a real
// exhibition plan.
func ExportSVG(path string, plan model.Plan) error {
	if len(plan.Items) == 0 {
		return fmt.Errorf("no zones to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SVG file: %w", err)
	}
	defer f.Close()

	extent := planExtent(plan)
	width := int((extent.W + 2*svgPadding) * svgScale)
	height := int((extent.H + 2*svgPadding) * svgScale)

	toPx := func(wx, wy float64) (int, int) {
		return int((wx - extent.X + svgPadding) * svgScale),
			int((wy - extent.Y + svgPadding) * svgScale)
	}

	canvas := svg.New(f)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#fafafa")

	for _, z := range plan.Items {
		if z.Kind == model.KindPillar {
			drawSVGZone(canvas, z, "#787878", toPx)
		}
	}
	for _, z := range plan.Items {
		if z.Kind == model.KindBooth {
			fill := z.FillColor
			if fill == "" {
				fill = "#4caf50"
			}
			drawSVGZone(canvas, z, fill, toPx)
		}
	}

	canvas.End()
	return nil
}

// drawSVGZone renders one zone with fill, walls, and centered label.
func drawSVGZone(canvas *svg.SVG, z model.Zone, fill string, toPx func(float64, float64) (int, int)) {
	if z.IsPolygon() {
		world := z.WorldPoints()
		xs := make([]int, len(world))
		ys := make([]int, len(world))
		for i, p := range world {
			xs[i], ys[i] = toPx(p.X, p.Y)
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;fill-opacity:0.85", fill))
		for i := range world {
			if z.EdgeOpen(i) {
				continue
			}
			j := (i + 1) % len(world)
			canvas.Line(xs[i], ys[i], xs[j], ys[j], "stroke:#1e1e1e;stroke-width:2")
		}
	} else {
		corners := geometry.CornerPositions(z)
		xs := make([]int, 4)
		ys := make([]int, 4)
		for i, p := range corners {
			xs[i], ys[i] = toPx(p.X, p.Y)
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;fill-opacity:0.85", fill))

		// Corner order is TL,TR,BR,BL, so edge i runs top,right,bottom,left.
		top, bottom, left, right := z.Opening.OpenWalls()
		open := [4]bool{top, right, bottom, left}
		for i := 0; i < 4; i++ {
			if open[i] {
				continue
			}
			j := (i + 1) % 4
			canvas.Line(xs[i], ys[i], xs[j], ys[j], "stroke:#1e1e1e;stroke-width:2")
		}
	}

	if z.Label != "" {
		cx, cy := toPx(z.Center().X, z.Center().Y)
		textColor := z.TextColor
		if textColor == "" {
			textColor = "#000000"
		}
		canvas.Text(cx, cy, z.Label,
			fmt.Sprintf("text-anchor:middle;dominant-baseline:middle;font-family:sans-serif;font-size:12px;fill:%s", textColor))
	}
}

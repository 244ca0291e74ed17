package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
)

// ExportDXF writes the plan as a DXF drawing for CAD interchange. Booths
// and pillars land on separate layers as closed lightweight polylines,
// with booth labels as text entities on their own layer.
func ExportDXF(path string, plan model.Plan) error {
	if len(plan.Items) == 0 {
		return fmt.Errorf("no zones to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("PILLARS", color.Grey128, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add pillar layer: %w", err)
	}
	for _, z := range plan.Items {
		if z.Kind != model.KindPillar {
			continue
		}
		if err := writeZoneOutline(d, z); err != nil {
			return err
		}
	}

	if _, err := d.AddLayer("BOOTHS", color.Green, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add booth layer: %w", err)
	}
	for _, z := range plan.Items {
		if z.Kind != model.KindBooth {
			continue
		}
		if err := writeZoneOutline(d, z); err != nil {
			return err
		}
	}

	if _, err := d.AddLayer("LABELS", color.White, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to add label layer: %w", err)
	}
	for _, z := range plan.Booths() {
		if z.Label == "" {
			continue
		}
		c := z.Center()
		// DXF Y axis points up; plans use screen-style Y down.
		if _, err := d.Text(z.Label, c.X, -c.Y, 0.0, model.GridUnit); err != nil {
			return fmt.Errorf("failed to write label for %q: %w", z.Label, err)
		}
	}

	return d.SaveAs(path)
}

// writeZoneOutline emits one zone as a closed polyline on the current layer.
func writeZoneOutline(d *drawing.Drawing, z model.Zone) error {
	var outline []model.Point
	if z.IsPolygon() {
		outline = z.WorldPoints()
	} else {
		corners := geometry.CornerPositions(z)
		outline = corners[:]
	}

	vertices := make([][]float64, len(outline))
	for i, p := range outline {
		vertices[i] = []float64{p.X, -p.Y, 0.0}
	}
	if _, err := d.LwPolyline(true, vertices...); err != nil {
		return fmt.Errorf("failed to write outline for %q: %w", z.Label, err)
	}
	return nil
}

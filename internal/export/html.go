package export

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/expofloor/boothplan/internal/geometry"
	"github.com/expofloor/boothplan/internal/model"
)

// htmlZone is the template view of one rendered zone.
type htmlZone struct {
	Points    string
	Fill      string
	IsPillar  bool
	Label     string
	Exhibitor string
	LabelX    float64
	LabelY    float64
	TextColor string
	NetArea   float64
	Width     float64
	Height    float64
}

// htmlPage is the root template context.
type htmlPage struct {
	PlanName string
	Width    float64
	Height   float64
	Zones    []htmlZone
	Summary  geometry.Summary
	Sellable float64
}

var planTemplate = template.Must(template.New("plan").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.PlanName}} - Floor Plan</title>
<style>
body { font-family: sans-serif; margin: 20px; background: #f5f5f5; }
h1 { font-size: 20px; }
svg { background: #fff; border: 1px solid #ccc; }
polygon { fill-opacity: 0.85; stroke: #1e1e1e; stroke-width: 1; cursor: pointer; }
polygon:hover { fill-opacity: 1; stroke-width: 2; }
table { border-collapse: collapse; margin-top: 16px; background: #fff; }
th, td { border: 1px solid #ccc; padding: 4px 10px; font-size: 13px; text-align: left; }
.stats { color: #555; font-size: 13px; margin-bottom: 10px; }
</style>
</head>
<body>
<h1>{{.PlanName}}</h1>
<p class="stats">Booths: {{.Summary.BoothCount}} &middot; Pillars: {{.Summary.PillarCount}} &middot;
Gross: {{printf "%.0f" .Summary.GrossTotal}} &middot; Net: {{printf "%.0f" .Summary.NetTotal}} &middot;
Sellable: {{printf "%.1f" .Sellable}}%</p>
<svg viewBox="0 0 {{.Width}} {{.Height}}" width="{{.Width}}" height="{{.Height}}">
{{- range .Zones}}
<polygon points="{{.Points}}" fill="{{.Fill}}">
<title>{{.Label}}{{if .Exhibitor}} — {{.Exhibitor}}{{end}} ({{printf "%.0f" .NetArea}} net)</title>
</polygon>
{{- if .Label}}
<text x="{{.LabelX}}" y="{{.LabelY}}" text-anchor="middle" dominant-baseline="middle"
 font-size="12" fill="{{.TextColor}}">{{.Label}}</text>
{{- end}}
{{- end}}
</svg>
<table>
<tr><th>Booth</th><th>Exhibitor</th><th>W</th><th>H</th><th>Net Area</th></tr>
{{- range .Zones}}{{if not .IsPillar}}
<tr><td>{{.Label}}</td><td>{{.Exhibitor}}</td>
<td>{{printf "%.0f" .Width}}</td><td>{{printf "%.0f" .Height}}</td>
<td>{{printf "%.0f" .NetArea}}</td></tr>
{{- end}}{{end}}
</table>
</body>
</html>
`))

// ExportHTML writes a self-contained interactive HTML page: an inline SVG
// rendering of the plan with hover tooltips, plus a booth table. The file
// opens in any browser with no external assets.
func ExportHTML(path string, plan model.Plan) error {
	if len(plan.Items) == 0 {
		return fmt.Errorf("no zones to export")
	}

	extent := planExtent(plan)
	page := htmlPage{
		PlanName: plan.Name,
		Width:    extent.W + 2*svgPadding,
		Height:   extent.H + 2*svgPadding,
		Summary:  geometry.Summarize(plan),
	}
	page.Sellable = page.Summary.SellableRatio()

	toLocal := func(p model.Point) (float64, float64) {
		return p.X - extent.X + svgPadding, p.Y - extent.Y + svgPadding
	}

	appendZone := func(z model.Zone) {
		var outline []model.Point
		if z.IsPolygon() {
			outline = z.WorldPoints()
		} else {
			corners := geometry.CornerPositions(z)
			outline = corners[:]
		}
		var b strings.Builder
		for i, p := range outline {
			if i > 0 {
				b.WriteByte(' ')
			}
			x, y := toLocal(p)
			fmt.Fprintf(&b, "%.1f,%.1f", x, y)
		}

		fill := z.FillColor
		if fill == "" {
			if z.Kind == model.KindPillar {
				fill = "#787878"
			} else {
				fill = "#4caf50"
			}
		}
		textColor := z.TextColor
		if textColor == "" {
			textColor = "#000000"
		}
		lx, ly := toLocal(z.Center())

		page.Zones = append(page.Zones, htmlZone{
			Points:    b.String(),
			Fill:      fill,
			IsPillar:  z.Kind == model.KindPillar,
			Label:     z.Label,
			Exhibitor: z.Exhibitor,
			LabelX:    lx,
			LabelY:    ly,
			TextColor: textColor,
			NetArea:   geometry.DisplayArea(z, plan.Items),
			Width:     z.W,
			Height:    z.H,
		})
	}

	for _, z := range plan.Items {
		if z.Kind == model.KindPillar {
			appendZone(z)
		}
	}
	for _, z := range plan.Items {
		if z.Kind == model.KindBooth {
			appendZone(z)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := planTemplate.Execute(f, page); err != nil {
		return fmt.Errorf("failed to render HTML plan: %w", err)
	}
	return nil
}

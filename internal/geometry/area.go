package geometry

import (
	"math"

	"github.com/expofloor/boothplan/internal/model"
)

// IntersectionArea computes the overlap area between the axis-aligned
// bounds of two zones. Rotated zones are approximated by their bounding
// boxes; the result is zero for disjoint zones.
func IntersectionArea(a, b model.Zone) float64 {
	ra := AxisAlignedBounds(a)
	rb := AxisAlignedBounds(b)
	w := math.Min(ra.Right(), rb.Right()) - math.Max(ra.X, rb.X)
	h := math.Min(ra.Bottom(), rb.Bottom()) - math.Max(ra.Y, rb.Y)
	return math.Max(0, w) * math.Max(0, h)
}

// PolygonArea computes the area enclosed by a closed point sequence via
// the shoelace formula. The result is orientation independent.
func PolygonArea(pts []model.Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// GrossArea returns the zone's own area: the true polygon area for
// polygon-mode zones, otherwise w*h.
func GrossArea(z model.Zone) float64 {
	if z.IsPolygon() {
		return PolygonArea(z.WorldPoints())
	}
	return z.W * z.H
}

// NetUsableArea returns the booth's gross area minus the area lost to
// overlapping pillars. Pillar intrusion uses the rotated-bounding-box
// approximation of IntersectionArea. The result is clamped to
// [0, grossArea]. The manual-area override is a caller concern: this
// function always reports the geometric value.
func NetUsableArea(booth model.Zone, all []model.Zone) float64 {
	gross := GrossArea(booth)
	var lost float64
	for _, z := range all {
		if z.Kind != model.KindPillar || z.ID == booth.ID {
			continue
		}
		lost += IntersectionArea(booth, z)
	}
	net := gross - lost
	if net < 0 {
		return 0
	}
	return net
}

// DisplayArea is the value shown for a booth: the manual override when
// enabled, otherwise the computed net usable area.
func DisplayArea(booth model.Zone, all []model.Zone) float64 {
	if booth.UseManualArea {
		return booth.ManualArea
	}
	return NetUsableArea(booth, all)
}

// Summary aggregates per-plan statistics for the UI footer and exports.
type Summary struct {
	BoothCount  int
	PillarCount int
	GrossTotal  float64
	NetTotal    float64
}

// SellableRatio is the net-to-gross percentage across all booths.
func (s Summary) SellableRatio() float64 {
	if s.GrossTotal == 0 {
		return 0
	}
	return s.NetTotal / s.GrossTotal * 100
}

// Summarize walks the plan and accumulates booth and area totals,
// honoring manual-area overrides.
func Summarize(p model.Plan) Summary {
	var s Summary
	for _, z := range p.Items {
		switch z.Kind {
		case model.KindPillar:
			s.PillarCount++
		case model.KindBooth:
			s.BoothCount++
			s.GrossTotal += GrossArea(z)
			s.NetTotal += DisplayArea(z, p.Items)
		}
	}
	return s
}

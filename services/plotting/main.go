package plotting

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"hnf1b/analysis/models/dtos"
	"hnf1b/analysis/services/statistics"
)

// group palette matching the original figure (P/LP red, VUS blue)
var groupColors = []color.Color{
	color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff},
	color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff},
	color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff},
}

func groupColor(i int) color.Color {
	return groupColors[i%len(groupColors)]
}

func translucent(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0x99}
}

// RenderFigure writes the multi-panel analysis figure: box plots
// with individual points, a jittered distribution comparison,
// overlapping histograms with median markers, and a test-summary
// panel. Exact layout is a reporting artifact, not load-bearing.
func RenderFigure(path string, groups []statistics.Group, result *dtos.ComparisonResult) error {
	panels := [][]*plot.Plot{
		{boxPanel(groups), pointsPanel(groups)},
		{histogramPanel(groups), summaryPanel(groups, result)},
	}

	img := vgimg.New(vg.Points(1000), vg.Points(600))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Points(10), PadY: vg.Points(10),
		PadTop: vg.Points(5), PadBottom: vg.Points(5),
		PadLeft: vg.Points(5), PadRight: vg.Points(5),
	}

	canvases := plot.Align(panels, tiles, dc)
	for row := range panels {
		for col := range panels[row] {
			if panels[row][col] != nil {
				panels[row][col].Draw(canvases[row][col])
			}
		}
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("figure %s: %w", path, err)
	}
	defer fh.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(fh); err != nil {
		return fmt.Errorf("figure %s: %w", path, err)
	}
	return nil
}

func boxPanel(groups []statistics.Group) *plot.Plot {
	p := plot.New()
	p.Title.Text = "Distance to DNA by Pathogenicity Group"
	p.Y.Label.Text = "Distance to DNA (Å)"

	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = fmt.Sprintf("%s (n=%d)", g.Name, len(g.Values))

		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(g.Values))
		if err != nil {
			continue
		}
		box.FillColor = translucent(groupColor(i))
		p.Add(box)
	}
	p.NominalX(names...)

	return p
}

func pointsPanel(groups []statistics.Group) *plot.Plot {
	p := plot.New()
	p.Title.Text = "Distribution Comparison"
	p.Y.Label.Text = "Distance to DNA (Å)"

	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name

		points := make(plotter.XYs, len(g.Values))
		for j, v := range g.Values {
			// deterministic jitter keeps reruns identical
			points[j].X = float64(i) + float64(j%7-3)*0.04
			points[j].Y = v
		}
		scatter, err := plotter.NewScatter(points)
		if err != nil {
			continue
		}
		scatter.GlyphStyle.Color = groupColor(i)
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(scatter)
	}
	p.NominalX(names...)

	return p
}

func histogramPanel(groups []statistics.Group) *plot.Plot {
	p := plot.New()
	p.Title.Text = "Distribution Overlap"
	p.X.Label.Text = "Distance to DNA (Å)"
	p.Y.Label.Text = "Frequency"

	maxWeight := 0.0
	type medianMark struct {
		value float64
		color color.Color
	}
	var medians []medianMark

	for i, g := range groups {
		hist, err := plotter.NewHist(plotter.Values(g.Values), 12)
		if err != nil {
			continue
		}
		hist.FillColor = translucent(groupColor(i))
		hist.LineStyle.Color = groupColor(i)
		p.Add(hist)
		p.Legend.Add(g.Name, hist)

		for _, bin := range hist.Bins {
			if bin.Weight > maxWeight {
				maxWeight = bin.Weight
			}
		}

		medians = append(medians, medianMark{value: medianOf(g.Values), color: groupColor(i)})
	}

	// dashed vertical markers at each group median
	for _, m := range medians {
		line, err := plotter.NewLine(plotter.XYs{
			{X: m.value, Y: 0},
			{X: m.value, Y: maxWeight},
		})
		if err != nil {
			continue
		}
		line.LineStyle.Color = m.color
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(line)
	}

	p.Legend.Top = true

	return p
}

func summaryPanel(groups []statistics.Group, result *dtos.ComparisonResult) *plot.Plot {
	p := plot.New()
	p.Title.Text = "Statistical Test Results"
	p.HideAxes()

	var lines []string
	if result != nil {
		lines = append(lines, fmt.Sprintf("Recommended test: %s", result.Assumptions.RecommendedTest))
		if result.Omnibus != nil {
			lines = append(lines, fmt.Sprintf("%s: H=%.3f, p=%.4f", result.Omnibus.Test, result.Omnibus.Statistic, result.Omnibus.PValue))
		}
		for key, pair := range result.Pairwise {
			lines = append(lines,
				fmt.Sprintf("%s: U=%.0f, p=%.4f %s", key, pair.UStatistic, pair.PValue, significanceStars(pair.PValue)),
				fmt.Sprintf("  r=%.3f, d=%.3f, CLES=%.3f", pair.EffectSizeR, pair.CohensD, pair.Cles),
			)
		}
		if result.Correlation != nil {
			lines = append(lines, fmt.Sprintf("Spearman rho=%.3f, p=%.4f", result.Correlation.Rho, result.Correlation.PValue))
		}
	}
	for _, g := range groups {
		lines = append(lines, fmt.Sprintf("%s: n=%d", g.Name, len(g.Values)))
	}

	labels := plotter.XYLabels{}
	for i, line := range lines {
		labels.XYs = append(labels.XYs, plotter.XY{X: 0.05, Y: 0.95 - 0.08*float64(i)})
		labels.Labels = append(labels.Labels, line)
	}
	if l, err := plotter.NewLabels(labels); err == nil {
		p.Add(l)
	}
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	return p
}

// significanceStars renders the traditional annotation for a
// p-value.
func significanceStars(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	default:
		return "ns"
	}
}

func medianOf(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

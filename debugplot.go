package sweepline

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotObserver renders one PNG frame per settled event: a red dot at the
// current event, a green dot at each event discovered while settling it,
// and the active segments in blue.
type PlotObserver struct {
	Dir string

	frame      int
	discovered []Point
}

// NewPlotObserver returns an Observer that writes numbered PNG frames
// into dir, creating dir if it does not exist.
func NewPlotObserver(dir string) *PlotObserver {
	return &PlotObserver{Dir: dir}
}

func (o *PlotObserver) Step(x float64, status StatusSnapshot, event EventSnapshot) {
	if event.Kind == DiscoveredEvent {
		o.discovered = append(o.discovered, event.Point)
		return
	}
	if err := o.render(x, status, event.Point); err != nil {
		return
	}
	o.frame++
	o.discovered = o.discovered[:0]
}

func (o *PlotObserver) render(x float64, status StatusSnapshot, current Point) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("sweep x=%.6g", x)

	for _, seg := range status.Segments {
		line, err := plotter.NewLine(plotter.XYs{
			{X: seg.A.X, Y: seg.A.Y},
			{X: seg.B.X, Y: seg.B.Y},
		})
		if err != nil {
			return err
		}
		line.Color = color.NRGBA{B: 180, A: 255}
		p.Add(line)
	}

	cur, err := plotter.NewScatter(plotter.XYs{{X: current.X, Y: current.Y}})
	if err != nil {
		return err
	}
	cur.Color = color.NRGBA{R: 200, A: 255}
	p.Add(cur)

	if len(o.discovered) > 0 {
		pts := make(plotter.XYs, len(o.discovered))
		for i, pt := range o.discovered {
			pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		disc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		disc.Color = color.NRGBA{G: 160, A: 255}
		p.Add(disc)
	}

	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(o.Dir, fmt.Sprintf("step-%04d.png", o.frame))
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

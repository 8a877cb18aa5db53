package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"text/tabwriter"

	"github.com/ironsheep/region-trace/internal/config"
	"github.com/ironsheep/region-trace/internal/imaging"
	"github.com/ironsheep/region-trace/internal/segment"
	"github.com/ironsheep/region-trace/internal/store"
)

const (
	defaultZoomScale  = 4.0
	defaultZoomMargin = 2
)

// === Segmentation Handlers ===

// RegionArgs contains the parsed arguments of the region command.
type RegionArgs struct {
	Seeds []segment.Point
}

func parseRegionArgs(args []string) (*RegionArgs, error) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, fmt.Errorf("usage: region <x> <y> [<x> <y> ...]")
	}
	parsed := &RegionArgs{Seeds: make([]segment.Point, 0, len(args)/2)}
	for i := 0; i < len(args); i += 2 {
		x, err := parseInt("x", args[i])
		if err != nil {
			return nil, err
		}
		y, err := parseInt("y", args[i+1])
		if err != nil {
			return nil, err
		}
		parsed.Seeds = append(parsed.Seeds, segment.Pt(x, y))
	}
	return parsed, nil
}

func (in *Interpreter) handleRegion(ctx context.Context, args []string) error {
	parsed, err := parseRegionArgs(args)
	if err != nil {
		return err
	}

	first := len(in.session.Regions())
	grown, err := in.session.GrowRegions(ctx, parsed.Seeds, in.cfg.Workers)
	if err != nil {
		return err
	}

	for i, r := range grown {
		area := segment.CountMarked(r.Mask)
		fmt.Fprintf(in.out, "region %d: seed %v, %d pixels, %d perimeter(s)\n",
			first+i, r.Seed, area, len(r.Perimeters))
		if in.cfg.Debug() {
			log.Printf("region %d grown from %v: area=%d loops=%d", first+i, r.Seed, area, len(r.Perimeters))
		}
	}
	return nil
}

func (in *Interpreter) handleTolerance(args []string) error {
	switch len(args) {
	case 0:
		upper, step := in.session.Tolerances()
		fmt.Fprintf(in.out, "upper bound %v, step difference %v\n", upper, step)
		return nil
	case 2:
	default:
		return fmt.Errorf("usage: tolerance [<upper> <step>]")
	}

	channels := in.cfg.Channels
	upper, err := config.ParseTolerance(args[0], channels)
	if err != nil {
		return fmt.Errorf("upper bound: %w", err)
	}
	step, err := config.ParseTolerance(args[1], channels)
	if err != nil {
		return fmt.Errorf("step difference: %w", err)
	}
	if err := in.session.SetTolerances(upper, step); err != nil {
		return err
	}

	fmt.Fprintf(in.out, "upper bound %v, step difference %v\n", upper, step)
	return nil
}

func (in *Interpreter) handleBlur(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: blur <sigma>")
	}
	sigma, err := parseFloat("sigma", args[0])
	if err != nil {
		return err
	}
	if err := in.session.Blur(sigma); err != nil {
		return err
	}
	fmt.Fprintf(in.out, "blurred working image (sigma %g)\n", sigma)
	return nil
}

func (in *Interpreter) handleClean(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: clean")
	}
	n := in.session.Clean()
	fmt.Fprintf(in.out, "cleared %d region(s)\n", n)
	return nil
}

func (in *Interpreter) handleSample(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: sample <x> <y>")
	}
	x, err := parseInt("x", args[0])
	if err != nil {
		return err
	}
	y, err := parseInt("y", args[1])
	if err != nil {
		return err
	}

	result, err := imaging.SampleColor(in.session.Working(), x, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(in.out, "%v %s rgb(%d,%d,%d)\n", segment.Pt(x, y), result,
		result.RGB.R, result.RGB.G, result.RGB.B)
	return nil
}

// === Perimeter Handlers ===

func (in *Interpreter) handleSmooth(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: smooth <factor>")
	}
	factor, err := parseFloat("factor", args[0])
	if err != nil {
		return err
	}

	k, err := in.cfg.SmoothingKernel(factor)
	if err != nil {
		return err
	}
	loops, err := in.session.SmoothPerimeters(k)
	if err != nil {
		return err
	}

	fmt.Fprintf(in.out, "smoothed %d perimeter(s) with %s kernel of size %d\n", loops, in.cfg.Kernel, k.Size())
	return nil
}

func (in *Interpreter) handleFillGaps(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: fillgaps")
	}
	loops, err := in.session.FillPerimeterGaps()
	if err != nil {
		return err
	}
	fmt.Fprintf(in.out, "filled gaps in %d perimeter(s)\n", loops)
	return nil
}

// === Output Handlers ===

func (in *Interpreter) renderOptions() imaging.RenderOptions {
	return imaging.RenderOptions{
		RegionColor:    in.cfg.RegionColor,
		PerimeterColor: in.cfg.PerimeterColor,
		Labels:         true,
	}
}

func (in *Interpreter) handleDisplay(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: display [file]")
	}
	path := in.cfg.DisplayPath
	if len(args) == 1 {
		path = args[0]
	}

	canvas := imaging.Render(in.session.Working(), in.session.Overlays(), in.renderOptions())
	if err := imaging.Save(canvas, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	fmt.Fprintf(in.out, "wrote %s\n", path)
	return nil
}

// ZoomArgs contains the parsed arguments of the zoom command.
type ZoomArgs struct {
	Index int
	Scale float64
	Path  string
}

func parseZoomArgs(args []string) (*ZoomArgs, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, fmt.Errorf("usage: zoom <index> [scale] [file]")
	}

	index, err := parseInt("index", args[0])
	if err != nil {
		return nil, err
	}
	parsed := &ZoomArgs{
		Index: index,
		Scale: defaultZoomScale,
		Path:  fmt.Sprintf("zoom-%d.png", index),
	}
	if len(args) >= 2 {
		if parsed.Scale, err = parseFloat("scale", args[1]); err != nil {
			return nil, err
		}
	}
	if len(args) == 3 {
		parsed.Path = args[2]
	}
	return parsed, nil
}

func (in *Interpreter) handleZoom(args []string) error {
	parsed, err := parseZoomArgs(args)
	if err != nil {
		return err
	}

	regions := in.session.Regions()
	if parsed.Index < 0 || parsed.Index >= len(regions) {
		return fmt.Errorf("no region %d (have %d)", parsed.Index, len(regions))
	}

	canvas := imaging.Render(in.session.Working(), in.session.Overlays(), in.renderOptions())
	zoomed, err := imaging.Zoom(canvas, regions[parsed.Index].Mask, defaultZoomMargin, parsed.Scale)
	if err != nil {
		return err
	}
	if err := imaging.Save(zoomed, parsed.Path); err != nil {
		return fmt.Errorf("failed to save %s: %w", parsed.Path, err)
	}

	fmt.Fprintf(in.out, "wrote %s\n", parsed.Path)
	return nil
}

func (in *Interpreter) handleInfo(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("usage: info")
	}

	regions := in.session.Regions()
	if len(regions) == 0 {
		fmt.Fprintln(in.out, "no regions")
		return nil
	}

	tw := tabwriter.NewWriter(in.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REGION\tSEED\tAREA\tBOUNDS\tCENTROID\tMEAN COLOR\tPERIMETERS")
	for i, r := range regions {
		stats, err := imaging.DescribeRegion(in.session.Working(), r.Mask)
		if err != nil {
			return fmt.Errorf("region %d: %w", i, err)
		}

		lengths := make([]int, len(r.Perimeters))
		for j, loop := range r.Perimeters {
			lengths[j] = len(loop)
		}

		b := stats.Bounds
		fmt.Fprintf(tw, "%d\t%v\t%d\t(%d,%d)-(%d,%d)\t(%.2f, %.2f)\t%s\t%v\n",
			i, r.Seed, stats.Area, b.X1, b.Y1, b.X2, b.Y2,
			stats.Centroid.X, stats.Centroid.Y, stats.MeanColor, lengths)
	}
	return tw.Flush()
}

func (in *Interpreter) handleStore(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: store <file>")
	}
	path := args[0]

	if err := store.Save(ctx, path, in.session.Records()); err != nil {
		return err
	}

	fmt.Fprintf(in.out, "stored %d region(s) in %s\n", len(in.session.Regions()), path)
	return nil
}

func (in *Interpreter) handleHelp() {
	tw := tabwriter.NewWriter(in.out, 0, 4, 2, ' ', 0)
	for _, c := range Commands() {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Usage, c.Description)
	}
	tw.Flush()
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/meshy/mcg"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/tdewolff/argp"
)

type Boolean struct {
	Op        string `short:"t" default:"union" desc:"Operation: union, intersection, intersectionopen, difference or fulldifference"`
	MinDepthA int    `default:"1" desc:"Winding depth inside A"`
	MinDepthB int    `default:"1" desc:"Winding depth inside B"`
	Precision int    `short:"p" default:"5" desc:"Decimal digits retained"`
	Format    string `short:"f" default:"path" desc:"Output format: geojson, wkt or path"`
	Output    string `short:"o" desc:"Output file"`
	Verbose   bool   `short:"v" desc:"Log sweep diagnostics"`
	A         string `index:"0" desc:"Input file A"`
	B         string `index:"1" desc:"Input file B"`
}

type Offset struct {
	Distance  float64 `short:"d" desc:"Offset distance, negative insets"`
	Tolerance float64 `default:"0" desc:"Minimum size of the result"`
	Precision int     `short:"p" default:"5" desc:"Decimal digits retained"`
	Format    string  `short:"f" default:"path" desc:"Output format: geojson, wkt or path"`
	Output    string  `short:"o" desc:"Output file"`
	Input     string  `index:"0" desc:"Input file"`
}

type Decimate struct {
	Tolerance float64 `short:"t" desc:"Decimation tolerance"`
	Precision int     `short:"p" default:"5" desc:"Decimal digits retained"`
	Format    string  `short:"f" default:"path" desc:"Output format: geojson, wkt or path"`
	Output    string  `short:"o" desc:"Output file"`
	Input     string  `index:"0" desc:"Input file"`
}

type Infill struct {
	Type         string  `short:"t" default:"linear" desc:"Infill type: linear, grid, triangle or hex"`
	Spacing      float64 `short:"s" default:"1" desc:"Line spacing"`
	Angle        float64 `short:"a" default:"0" desc:"Angle in degrees clockwise from vertical"`
	Parity       int     `default:"0" desc:"Layer parity"`
	LineWidth    float64 `default:"0" desc:"Line width for hex infill"`
	ConnectLines bool    `desc:"Connect consecutive lines"`
	Precision    int     `short:"p" default:"5" desc:"Decimal digits retained"`
	Format       string  `short:"f" default:"path" desc:"Output format: geojson, wkt or path"`
	Output       string  `short:"o" desc:"Output file"`
	Verbose      bool    `short:"v" desc:"Log sweep diagnostics"`
	Input        string  `index:"0" desc:"Input file"`
}

type Main struct{}

func main() {
	log.SetFlags(0)
	root := argp.NewCmd(&Main{}, "Fixed-point polygon toolkit")
	root.AddCmd(&Boolean{}, "boolean", "Boolean operations on two polygon sets")
	root.AddCmd(&Offset{}, "offset", "Offset polygons")
	root.AddCmd(&Decimate{}, "decimate", "Decimate polygons")
	root.AddCmd(&Infill{}, "infill", "Fill polygons with a line pattern")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

func verboseLogger(verbose bool) *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(os.Stderr, "", 0)
}

func (cmd *Boolean) Run() error {
	if cmd.A == "" {
		return argp.ShowUsage
	}

	ctx := mcg.NewContext(mcg.AxisZ, 0.0, cmd.Precision)
	params := &mcg.Params{
		MinDepthA: cmd.MinDepthA,
		MinDepthB: cmd.MinDepthB,
		Logger:    verboseLogger(cmd.Verbose),
	}

	a, err := readPolygons(ctx, cmd.A)
	if err != nil {
		return err
	}

	op := strings.ToLower(cmd.Op)
	if op == "intersectionopen" {
		if cmd.B == "" {
			fmt.Println("ERROR: must specify input B")
			return argp.ShowUsage
		}
		b, err := readSegments(ctx, cmd.B)
		if err != nil {
			return err
		}
		return writeSegments(cmd.Output, cmd.Format, mcg.IntersectionOpen(a, b, params))
	}

	var b mcg.Source
	if cmd.B != "" {
		pb, err := readPolygons(ctx, cmd.B)
		if err != nil {
			return err
		}
		b = pb
	} else if op != "union" {
		fmt.Println("ERROR: must specify input B")
		return argp.ShowUsage
	}

	switch op {
	case "union":
		return writePolygons(cmd.Output, cmd.Format, mcg.Union(a, b, params).ToPolygonSet())
	case "intersection":
		return writePolygons(cmd.Output, cmd.Format, mcg.Intersection(a, b, params).ToPolygonSet())
	case "difference":
		return writePolygons(cmd.Output, cmd.Format, mcg.Difference(a, b, params).ToPolygonSet())
	case "fulldifference":
		res := mcg.FullDifference(a, b, params)
		return writePolygons(cmd.Output, cmd.Format,
			res.AminusB.ToPolygonSet(),
			res.BminusA.ToPolygonSet(),
			res.Intersection.ToPolygonSet())
	}
	fmt.Printf("ERROR: unknown operation %q\n", cmd.Op)
	return argp.ShowUsage
}

func (cmd *Offset) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	ctx := mcg.NewContext(mcg.AxisZ, 0.0, cmd.Precision)
	ps, err := readPolygons(ctx, cmd.Input)
	if err != nil {
		return err
	}
	return writePolygons(cmd.Output, cmd.Format, ps.FOffset(cmd.Distance, cmd.Tolerance))
}

func (cmd *Decimate) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	ctx := mcg.NewContext(mcg.AxisZ, 0.0, cmd.Precision)
	ps, err := readPolygons(ctx, cmd.Input)
	if err != nil {
		return err
	}
	return writePolygons(cmd.Output, cmd.Format, ps.FDecimate(cmd.Tolerance))
}

func (cmd *Infill) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	typ, err := mcg.ParseInfillType(strings.ToLower(cmd.Type))
	if err != nil {
		fmt.Println("ERROR:", err)
		return argp.ShowUsage
	}

	ctx := mcg.NewContext(mcg.AxisZ, 0.0, cmd.Precision)
	ps, err := readPolygons(ctx, cmd.Input)
	if err != nil {
		return err
	}

	infill := mcg.Infill(ps, typ, mcg.InfillParams{
		Angle:        cmd.Angle * math.Pi / 180.0,
		Spacing:      ctx.Ftoi(cmd.Spacing),
		Parity:       cmd.Parity,
		ConnectLines: cmd.ConnectLines,
		LineWidth:    ctx.Ftoi(cmd.LineWidth),
		Logger:       verboseLogger(cmd.Verbose),
	})
	if infill == nil {
		infill = mcg.NewSegmentSet(ctx)
	}
	return writeSegments(cmd.Output, cmd.Format, infill)
}

// readGeometry reads GeoJSON or WKT from filename. It returns a nil geometry and the contents if
// the file is in path notation.
func readGeometry(filename string) (orb.Geometry, string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, "", errors.Wrap(err, "read input")
	}
	b = bytes.TrimSpace(b)

	if 0 < len(b) && b[0] == '{' {
		if fc, err := geojson.UnmarshalFeatureCollection(b); err == nil && fc.Type == "FeatureCollection" {
			g := orb.Collection{}
			for _, f := range fc.Features {
				g = append(g, f.Geometry)
			}
			return g, "", nil
		}
		g, err := geojson.UnmarshalGeometry(b)
		if err != nil {
			return nil, "", errors.Wrapf(err, "parse GeoJSON %s", filename)
		}
		return g.Geometry(), "", nil
	} else if 0 < len(b) && (b[0] == 'M' || b[0] == 'm') {
		return nil, string(b), nil
	}

	g, err := wkt.Unmarshal(string(b))
	if err != nil {
		return nil, "", errors.Wrapf(err, "parse WKT %s", filename)
	}
	return g, "", nil
}

func readPolygons(ctx *mcg.Context, filename string) (*mcg.PolygonSet, error) {
	g, path, err := readGeometry(filename)
	if err != nil {
		return nil, err
	} else if g == nil {
		ps, err := mcg.ParsePolygons(ctx, path)
		return ps, errors.Wrapf(err, "parse %s", filename)
	}
	ps, err := mcg.PolygonSetFromOrb(ctx, g)
	return ps, errors.Wrapf(err, "convert %s", filename)
}

func readSegments(ctx *mcg.Context, filename string) (*mcg.SegmentSet, error) {
	g, path, err := readGeometry(filename)
	if err != nil {
		return nil, err
	} else if g == nil {
		ps, err := mcg.ParsePolygons(ctx, path)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", filename)
		}
		return ps.Segments(), nil
	}
	ss, err := mcg.SegmentSetFromOrb(ctx, g)
	return ss, errors.Wrapf(err, "convert %s", filename)
}

func writeGeometries(filename, format string, gs []orb.Geometry, paths []string) error {
	var w io.Writer = os.Stdout
	if filename != "" {
		f, err := os.Create(filename)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		w = f
	}

	switch strings.ToLower(format) {
	case "geojson":
		fc := geojson.NewFeatureCollection()
		for _, g := range gs {
			fc.Append(geojson.NewFeature(g))
		}
		b, err := fc.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "marshal GeoJSON")
		}
		_, err = fmt.Fprintln(w, string(b))
		return errors.Wrap(err, "write output")
	case "wkt":
		for _, g := range gs {
			if _, err := fmt.Fprintln(w, wkt.MarshalString(g)); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
		return nil
	case "path", "":
		for _, path := range paths {
			if _, err := fmt.Fprintln(w, path); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
		return nil
	}
	return errors.Errorf("unknown format %q", format)
}

func writePolygons(filename, format string, pss ...*mcg.PolygonSet) error {
	gs := make([]orb.Geometry, 0, len(pss))
	paths := make([]string, 0, len(pss))
	for _, ps := range pss {
		gs = append(gs, mcg.ToOrbPolygons(ps))
		paths = append(paths, ps.String())
	}
	return writeGeometries(filename, format, gs, paths)
}

func writeSegments(filename, format string, ss *mcg.SegmentSet) error {
	return writeGeometries(filename, format, []orb.Geometry{mcg.ToOrbLines(ss)}, []string{ss.String()})
}

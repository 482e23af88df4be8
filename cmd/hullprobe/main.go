// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hullprobe loads a collision hull and reports the contents
// of points in it, along with the points in a view frame and the side
// of the root plane that a clip box around each point is on.
//
// Usage:
//
//	hullprobe [flags] [x,y,z ...]
//
// Points with a negative first coordinate are given with
// --point (-p), or after a -- argument.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"text/tabwriter"

	"cogentcore.org/simcore/base/errors"
	"cogentcore.org/simcore/base/logx"
	"cogentcore.org/simcore/base/randx"
	"cogentcore.org/simcore/base/reflectx"
	"cogentcore.org/simcore/bsp"
	"cogentcore.org/simcore/cli"
	"cogentcore.org/simcore/math32"
	"cogentcore.org/simcore/xform"
	"github.com/spf13/pflag"
)

func main() {
	logx.SetDefaultLogger()
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			errors.Log(err)
		}
		os.Exit(1)
	}
}

// run executes hullprobe with the given arguments, writing the
// report to w.
func run(ctx context.Context, args []string, w io.Writer) error {
	cfg := &Config{}
	if err := cli.SetFromDefaults(cfg); err != nil {
		return err
	}

	fs := pflag.NewFlagSet("hullprobe", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Hullprobe reports the contents of points in a collision hull.\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\thullprobe [flags] [x,y,z ...]\n\thullprobe [flags] -- [x,y,z ...]\n")
		fmt.Fprintf(os.Stderr, "Points starting with '-' need --point or must follow --.\nFlags:\n")
		fs.PrintDefaults()
	}
	config := fs.StringP("config", "c", "", "TOML config `file`, found in the current directory or the user config directory")
	hull := fs.String("hull", cfg.Hull, "hull description `file` (.toml, .yaml or .yml); a box hull if empty")
	mins := fs.Float32Slice("mins", cfg.BoxMins[:], "minimum `x,y,z` of the box hull")
	maxs := fs.Float32Slice("maxs", cfg.BoxMaxs[:], "maximum `x,y,z` of the box hull")
	angles := fs.Float32Slice("angles", cfg.Angles[:], "`pitch,yaw,roll` of the view frame in degrees")
	randomAngles := fs.Bool("random-angles", cfg.RandomAngles, "use a random view frame, fixed by --seed")
	points := fs.StringArrayP("point", "p", nil, "`x,y,z` point to classify; may be repeated")
	simd := fs.Bool("simd", cfg.SIMD, "use the vectorized transform if the hardware supports it")
	samples := fs.IntP("sample", "n", cfg.Samples, "number of random points to classify into a contents histogram")
	seed := fs.Uint64("seed", cfg.Seed, "seed of the random points; 0 for a random seed")
	workers := fs.IntP("workers", "j", cfg.Workers, "number of goroutines classifying points")
	vv := fs.Bool("vv", false, "log debug messages")
	v := fs.BoolP("verbose", "v", false, "log info messages")
	q := fs.BoolP("quiet", "q", false, "only log errors")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)

	if *config != "" {
		dir, _ := os.UserConfigDir()
		opts := &cli.Options{IncludePaths: []string{".", filepath.Join(dir, "hullprobe")}}
		if err := cli.Open(opts, cfg, *config); err != nil {
			return err
		}
	}
	if fs.Changed("hull") {
		cfg.Hull = *hull
	}
	for _, f := range []struct {
		name string
		val  []float32
		dst  *[3]float32
	}{{"mins", *mins, &cfg.BoxMins}, {"maxs", *maxs, &cfg.BoxMaxs}, {"angles", *angles, &cfg.Angles}} {
		if !fs.Changed(f.name) {
			continue
		}
		if len(f.val) != 3 {
			return fmt.Errorf("-%s needs 3 values, got %d", f.name, len(f.val))
		}
		copy(f.dst[:], f.val)
	}
	if fs.Changed("random-angles") {
		cfg.RandomAngles = *randomAngles
	}
	if fs.Changed("simd") {
		cfg.SIMD = *simd
	}
	if fs.Changed("sample") {
		cfg.Samples = *samples
	}
	if fs.Changed("seed") {
		cfg.Seed = *seed
	}
	if fs.Changed("workers") {
		cfg.Workers = *workers
	}
	for _, arg := range append(*points, fs.Args()...) {
		var p [3]float32
		if err := reflectx.SetFromString(reflect.ValueOf(&p).Elem(), arg); err != nil {
			return fmt.Errorf("point %q: %w", arg, err)
		}
		cfg.Points = append(cfg.Points, p)
	}
	return probe(ctx, cfg, w)
}

func vec3(a [3]float32) math32.Vector3 {
	return math32.Vec3(a[0], a[1], a[2])
}

// probe loads the hull of the config and writes the report for its points.
func probe(ctx context.Context, cfg *Config, w io.Writer) error {
	simd := xform.Never
	if cfg.SIMD {
		simd = xform.HasSIMD
	}
	xform.Init(simd, slog.Default())

	var h *bsp.Hull
	if cfg.Hull == "" {
		h = bsp.BoxHull(vec3(cfg.BoxMins), vec3(cfg.BoxMaxs))
	} else {
		var err error
		h, err = bsp.OpenHull(cfg.Hull)
		if err != nil {
			return err
		}
	}
	slog.Info("loaded hull", "file", cfg.Hull, "planes", h.NumPlanes(), "nodes", h.NumNodes(), "depth", h.Depth(), "checksum", fmt.Sprintf("%016x", h.Checksum()))

	points := make([]math32.Vector3, len(cfg.Points))
	for i, p := range cfg.Points {
		points[i] = vec3(p)
	}
	contents, err := h.ClassifyAll(ctx, points, cfg.Workers)
	if err != nil {
		return err
	}

	var rnd randx.Rand = randx.NewGlobalRand()
	if cfg.Seed != 0 {
		rnd = randx.NewSysRand(cfg.Seed)
	}
	angles := vec3(cfg.Angles)
	if cfg.RandomAngles {
		angles = randx.Angles(rnd)
		slog.Info("random view frame", "angles", angles)
	}
	frame := math32.NewFrame(angles)
	var root *math32.Plane
	if !h.Root().IsLeaf() {
		p := h.Plane(h.Node(h.Root().Index()).Plane)
		root = &p
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "POINT\tCONTENTS\tLOCAL\tROOT SIDE")
	for i, p := range points {
		side := "-"
		if root != nil {
			box := math32.Box3{Min: p.Add(h.ClipMins()), Max: p.Add(h.ClipMaxs())}
			side = root.BoxSide(box).String()
		}
		fmt.Fprintf(tw, "%v\t%v\t%v\t%s\n", p, contents[i], xform.ToLocal(p, &frame), side)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if cfg.Samples <= 0 {
		return nil
	}
	return sample(ctx, cfg, h, rnd, w)
}

// sample classifies random points drawn from the sample box of the
// config and writes the histogram of their contents.
func sample(ctx context.Context, cfg *Config, h *bsp.Hull, rnd randx.Rand, w io.Writer) error {
	box := math32.Box3{Min: vec3(cfg.SampleMins), Max: vec3(cfg.SampleMaxs)}
	contents, err := h.ClassifyAll(ctx, randx.PointsInBox(box, cfg.Samples, rnd), cfg.Workers)
	if err != nil {
		return err
	}
	counts := map[bsp.Contents]int{}
	for _, c := range contents {
		counts[c]++
	}
	keys := slices.Sorted(maps.Keys(counts))
	slices.Reverse(keys)

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTENTS\tCOUNT\tFRACTION")
	for _, c := range keys {
		fmt.Fprintf(tw, "%v\t%d\t%.3f\n", c, counts[c], float64(counts[c])/float64(cfg.Samples))
	}
	return tw.Flush()
}

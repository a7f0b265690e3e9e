// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/soamatvec/hwy"
	"github.com/ajroetker/soamatvec/hwy/contrib/matvec"
	"github.com/ajroetker/soamatvec/hwy/contrib/workerpool"
	"github.com/ajroetker/soamatvec/internal/logging"
)

var modes = []string{"simd", "fma", "scalar", "parallel", "partitioned", "batch", "blas"}

type runConfig struct {
	rows       int
	cols       int
	lanes      int
	workers    int
	mode       string
	iterations int
	batch      int
	seed       uint64
	verify     bool
	tolerance  float32
	logLevel   string
	logFormat  string
}

func newRunCmd() *cobra.Command {
	cfg := runConfig{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time one kernel on a random matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(cmd.ErrOrStderr(), cfg.logFormat, cfg.logLevel)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), log, cfg)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.rows, "rows", 1024, "matrix rows")
	f.IntVar(&cfg.cols, "cols", 1024, "matrix columns (input vector size)")
	f.IntVar(&cfg.lanes, "lanes", 0, "pack lane count (0 = detected register width)")
	f.IntVar(&cfg.workers, "workers", 0, "worker count for parallel modes (0 = GOMAXPROCS)")
	f.StringVar(&cfg.mode, "mode", "simd", fmt.Sprintf("kernel: one of %v", modes))
	f.IntVar(&cfg.iterations, "iterations", 100, "timed iterations")
	f.IntVar(&cfg.batch, "batch", 16, "inputs per iteration in batch mode")
	f.Uint64Var(&cfg.seed, "seed", 1, "random seed for matrix and vector contents")
	f.BoolVar(&cfg.verify, "verify", false, "cross-check the result against the scalar kernel")
	f.Float32Var(&cfg.tolerance, "tolerance", 1e-5, "relative tolerance for --verify")
	f.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	f.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	return cmd
}

func (c runConfig) validate() error {
	switch {
	case c.rows <= 0 || c.cols <= 0:
		return fmt.Errorf("rows and cols must be positive, got %dx%d", c.rows, c.cols)
	case c.lanes < 0 || c.lanes > hwy.MaxVecLanes:
		return fmt.Errorf("lanes must be in [0,%d], got %d", hwy.MaxVecLanes, c.lanes)
	case c.iterations <= 0:
		return fmt.Errorf("iterations must be positive, got %d", c.iterations)
	case c.batch <= 0:
		return fmt.Errorf("batch must be positive, got %d", c.batch)
	case !slices.Contains(modes, c.mode):
		return fmt.Errorf("unknown mode %q, want one of %v", c.mode, modes)
	}
	return nil
}

func run(ctx context.Context, out io.Writer, log *logging.Logger, cfg runConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var opts []matvec.Option
	if cfg.lanes > 0 {
		opts = append(opts, matvec.WithLanes(cfg.lanes))
	}

	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))
	aos := matvec.NewMatrix(cfg.rows, cfg.cols, 0)
	for i := range aos.Data() {
		aos.Data()[i] = rng.Float32()*2 - 1
	}
	values := make([]float32, cfg.cols)
	for i := range values {
		values[i] = rng.Float32()*2 - 1
	}

	soa := matvec.BuildLayout(aos, opts...)
	v := matvec.VectorFrom(values, opts...)
	log = log.WithShape(cfg.rows, cfg.cols, soa.Lanes())

	pool := workerpool.New(cfg.workers)
	defer pool.Close()

	kernel, err := newKernel(cfg, aos, soa, v, pool)
	if err != nil {
		return err
	}

	var result *matvec.Vector
	start := time.Now()
	for range cfg.iterations {
		if err := ctx.Err(); err != nil {
			return err
		}
		if result, err = kernel(ctx); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	log.LogTransform(ctx, cfg.mode, cfg.iterations, elapsed)

	fmt.Fprintf(out, "mode=%s shape=%dx%d lanes=%d dispatch=%s per_op=%v\n",
		cfg.mode, cfg.rows, cfg.cols, soa.Lanes(), hwy.CurrentName(), elapsed/time.Duration(cfg.iterations))

	if cfg.verify {
		err := matvec.Compare(matvec.ScalarTransform(soa, v), result, cfg.tolerance)
		log.LogVerify(ctx, "scalar", cfg.tolerance, err)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "verify: ok")
	}
	return nil
}

type kernelFunc func(ctx context.Context) (*matvec.Vector, error)

func newKernel(cfg runConfig, aos *matvec.Matrix, soa *matvec.SOAMatrix, v *matvec.Vector, pool *workerpool.Pool) (kernelFunc, error) {
	switch cfg.mode {
	case "simd":
		return func(context.Context) (*matvec.Vector, error) {
			return matvec.Transform(soa, v), nil
		}, nil
	case "fma":
		return func(context.Context) (*matvec.Vector, error) {
			return matvec.Transform(soa, v, matvec.WithFMA()), nil
		}, nil
	case "scalar":
		return func(context.Context) (*matvec.Vector, error) {
			return matvec.ScalarTransform(soa, v), nil
		}, nil
	case "parallel":
		return func(context.Context) (*matvec.Vector, error) {
			return matvec.TransformParallel(pool, soa, v), nil
		}, nil
	case "partitioned":
		return func(context.Context) (*matvec.Vector, error) {
			return matvec.TransformPartitioned(pool, soa, v), nil
		}, nil
	case "batch":
		inputs := make([]*matvec.Vector, cfg.batch)
		for i := range inputs {
			inputs[i] = v
		}
		return func(ctx context.Context) (*matvec.Vector, error) {
			results, err := matvec.TransformBatch(ctx, soa, inputs, matvec.WithWorkers(cfg.workers))
			if err != nil {
				return nil, err
			}
			return results[0], nil
		}, nil
	case "blas":
		values := v.Values()
		return func(context.Context) (*matvec.Vector, error) {
			return matvec.VectorFrom(matvec.GemvTransform(aos, values), matvec.WithLanes(soa.Lanes())), nil
		}, nil
	}
	return nil, fmt.Errorf("unknown mode %q", cfg.mode)
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/ntouran/mocc/cmdo"
	"github.com/ntouran/mocc/config"
	"github.com/ntouran/mocc/correction"
	"github.com/ntouran/mocc/hdfout"
	"github.com/ntouran/mocc/mc"
	"github.com/ntouran/mocc/merr"
	"github.com/ntouran/mocc/mesh"
	"github.com/ntouran/mocc/mlog"
	"github.com/ntouran/mocc/moc"
	"github.com/ntouran/mocc/quad"
	"github.com/ntouran/mocc/sn"
	"github.com/ntouran/mocc/solver"
	"github.com/ntouran/mocc/xsmesh"
	"github.com/ntouran/mocc/xsource"
)

var log = mlog.New("main")

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			log.Errorf("%v\n", err)
			os.Exit(1)
		}
	}()

	fnamepath, _ := io.ArgToFilename(0, "", ".xml", true)
	outpath := io.ArgToString(1, "out.json")
	verbose := io.ArgToBool(2, true)

	if verbose {
		io.PfWhite("\nmocc -- coupled 2D/3D neutron transport solver\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"config path", "fnamepath", fnamepath,
			"output path", "outpath", outpath,
			"show messages", "verbose", verbose,
		))
	}

	if err := run(fnamepath, outpath, verbose); err != nil {
		log.Errorf("%v\n", err)
		os.Exit(merr.ExitCode(err))
	}
}

// buildSweeper constructs the sweeper and source pair named by the
// <sweeper> node's type attribute, per SPEC_FULL §6: "sn" (plain Sn),
// "moc" (standalone MoC, no Sn sub-sweeper and no CDD correction),
// "2d3d" (the Sn/MoC composite, correction-coupled), or "montecarlo"
// (the out-of-scope stub). Returning plain solver.Sweeper/solver.Source
// interface values here, rather than a concrete generic type, is what
// lets run stay oblivious to which kernel backs the solver past this
// point.
func buildSweeper(cm *mesh.CoreMesh, q *quad.Quadrature, h *xsmesh.Homogenized, opts config.SweeperOptions, ng int, bcKind sn.BCKind) (solver.Sweeper, solver.Source, error) {
	switch opts.Type {
	case "sn":
		worker := sn.NewDiamondDifference(cm)
		sw, err := sn.NewSweeper(cm, q, h.Regions, ng, opts.NInner, bcKind, worker)
		if err != nil {
			return nil, nil, err
		}
		sw.SetGSBoundary(opts.GSBoundary)
		src := sw.CreateSource()
		sw.AssignSource(src)
		return sw, src, nil

	case "moc":
		sw, err := moc.NewSweeper(cm, q, h.Regions, ng, moc.BCKind(bcKind))
		if err != nil {
			return nil, nil, err
		}
		src := sw.CreateSource()
		sw.AssignSource(src)
		return sw, src, nil

	case "2d3d":
		corr := correction.NewData(cm.NumPins(), ng, q.Len())
		worker := sn.NewCDD(cm, corr)
		comp, err := cmdo.NewComposite(cm, q, h.Regions, ng, opts.NInner, bcKind, worker, corr)
		if err != nil {
			return nil, nil, err
		}
		comp.SetExposeSN(opts.ExposeSN)
		comp.SetDoSNProject(opts.DoSNProject)
		comp.SetDoTL(opts.DoTL)
		comp.SetNInactiveMoc(opts.NInactiveMoc)
		comp.SetMoCModulo(opts.MocModulo)
		src := comp.CreateSource()
		comp.AssignSource(xsource.From2D3D(src))
		return comp, src, nil

	case "montecarlo":
		sw := mc.NewSweeper(cm, ng)
		src := sw.CreateSource()
		sw.AssignSource(src)
		return sw, src, nil
	}
	return nil, nil, merr.Config("main", "unrecognized sweeper type %q", opts.Type)
}

func run(fnamepath, outpath string, verbose bool) error {
	root, err := config.ReadConfig(fnamepath)
	if err != nil {
		return err
	}

	matNode := root.Child("material_lib")
	if matNode == nil {
		return merr.Config("main", "configuration document has no material_lib node")
	}
	lib, err := config.LoadMaterialLibrary(matNode)
	if err != nil {
		return err
	}
	cm, err := config.LoadCoreMesh(root, lib)
	if err != nil {
		return err
	}
	h := xsmesh.NewHomogenized(cm)

	sweeperNode := root.Child("sweeper")
	if sweeperNode == nil {
		return merr.Config("main", "configuration document has no sweeper node")
	}
	opts := config.ParseSweeperOptions(sweeperNode)

	solverNode := root.Child("solver")
	if solverNode == nil {
		return merr.Config("main", "configuration document has no solver node")
	}
	solverOpts := config.ParseSolverOptions(solverNode)

	q, err := quad.NewProductQuadrature(opts.NPolar, opts.NAzim)
	if err != nil {
		return err
	}
	bcKind := sn.Vacuum
	if opts.BC == "reflective" {
		bcKind = sn.Reflective
	}
	ng := lib.NumGroups()

	sweeper, source, err := buildSweeper(cm, q, h, opts, ng, bcKind)
	if err != nil {
		return err
	}

	fss, err := solver.NewFixedSourceSolver(sweeper, source)
	if err != nil {
		return err
	}
	es, err := solver.NewEigenSolver(sweeper, fss, solverOpts.EpsK, solverOpts.EpsF, solverOpts.MaxIter)
	if err != nil {
		return err
	}

	w := hdfout.NewWriter(outpath)
	flush := func() error {
		for g := 0; g < ng; g++ {
			hdfout.WriteFlux(w, cm, g, sweeper.GetPinFlux(g))
		}
		hdfout.WriteXSMesh(w, h)
		hdfout.WriteHistory(w, "/solver/k", []float64{es.GetK()})
		return w.Close()
	}
	es.OnInterrupt(func() {
		log.Warnf("interrupted, flushing partial results to %s\n", outpath)
		if err := flush(); err != nil {
			log.Errorf("%v\n", err)
		}
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigCh:
			es.Interrupt()
		case <-done:
		}
	}()

	if err := es.Solve(); err != nil {
		return err
	}
	if verbose {
		log.Infof("converged: k = %v\n", es.GetK())
	}
	return flush()
}

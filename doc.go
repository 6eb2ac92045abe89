// Package laplace computes electrostatic potential on a rectangular board by
// relaxing Laplace's equation around fixed electrodes, then lets you probe the
// result at arbitrary points.
//
// What is laplace?
//
//	A small, dependency-light toolkit split into focused subpackages:
//		• potential: the grid, fixed points, Jacobi relaxation and bilinear lookup
//		• electrode: point / row / column electrodes placed onto a field
//		• probe:     measurement tables and dense sample lattices (CSV export)
//
// Under the hood:
//
//	potential/        Field, Option, SetLogger; the numerical core
//	electrode/        Electrode, Kind (YAML/text codecs), Place
//	probe/            Table, Entry, Sample, Grid, InverseLerp
//	internal/config/  YAML scenario files, validation and Build
//	cmd/potential/    command-line solver
//
// Quick start:
//
//	f, _ := potential.New(20, 16)
//	_ = f.SetFixedPoint(1, 8, 10)
//	_ = f.SetFixedPoint(19, 8, 0)
//	f.CalculatePotential()
//	v := f.GetPotential(10.5, 8)
//
// See the package docs of potential for the boundary model and complexity.
package laplace

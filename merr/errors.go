// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package merr defines the error kinds propagated by the transport solver:
// configuration errors, geometry errors, convergence failures, and I/O
// failures. Each kind names the component that raised it so a single
// diagnostic line can identify both the failure and its origin.
package merr

import "fmt"

// ErrNotImplemented is returned by sweepers that are recognized by the
// config but intentionally not implemented (e.g. the Monte Carlo path).
var ErrNotImplemented = fmt.Errorf("not implemented")

// ConfigError reports malformed or inconsistent input: invalid IDs,
// over-specified heights, size mismatches, missing attributes.
type ConfigError struct {
	Component string
	Msg       string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Component, e.Msg)
}

// Config builds a ConfigError, formatting Msg like fmt.Sprintf.
func Config(component, format string, args ...interface{}) error {
	return &ConfigError{Component: component, Msg: fmt.Sprintf(format, args...)}
}

// GeometryError reports incompatible assemblies in a core: differing nz or
// hz, mismatched lattice dimensions, and similar structural problems.
type GeometryError struct {
	Component string
	Msg       string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Component, e.Msg)
}

// Geometry builds a GeometryError, formatting Msg like fmt.Sprintf.
func Geometry(component, format string, args ...interface{}) error {
	return &GeometryError{Component: component, Msg: fmt.Sprintf(format, args...)}
}

// ConvergenceError reports that an outer iteration failed to converge
// within the configured maximum number of iterations.
type ConvergenceError struct {
	Component string
	Msg       string
	Iters     int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("[%s] %s (after %d iterations)", e.Component, e.Msg, e.Iters)
}

// Convergence builds a ConvergenceError.
func Convergence(component string, iters int, format string, args ...interface{}) error {
	return &ConvergenceError{Component: component, Msg: fmt.Sprintf(format, args...), Iters: iters}
}

// IOError reports file-not-found or unwritable-output conditions.
type IOError struct {
	Component string
	Msg       string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Component, e.Msg)
}

// IO builds an IOError.
func IO(component, format string, args ...interface{}) error {
	return &IOError{Component: component, Msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned from the solver to a process exit code,
// per the "0 on success; 1 on any failure" rule.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

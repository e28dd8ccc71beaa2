// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mlog is a thin, component-tagged wrapper over gosl/io's
// color-coded console printers. It exists so that every diagnostic line
// the solver prints names the component that produced it, per the "single
// diagnostic line identifying the failing component" requirement.
package mlog

import "github.com/cpmech/gosl/io"

// Logger prints lines prefixed with a fixed component name.
type Logger struct {
	Component string
}

// New returns a Logger tagged with the given component name.
func New(component string) *Logger {
	return &Logger{Component: component}
}

// Infof prints an informational line in the default color.
func (l *Logger) Infof(format string, args ...interface{}) {
	io.Pf("[%s] "+format, append([]interface{}{l.Component}, args...)...)
}

// Warnf prints a warning line in yellow.
func (l *Logger) Warnf(format string, args ...interface{}) {
	io.PfYel("[%s] "+format, append([]interface{}{l.Component}, args...)...)
}

// Errorf prints an error line in red.
func (l *Logger) Errorf(format string, args ...interface{}) {
	io.PfRed("[%s] "+format, append([]interface{}{l.Component}, args...)...)
}

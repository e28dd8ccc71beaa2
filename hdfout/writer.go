// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hdfout is the solver's output sink: a hierarchical key/value
// store keyed by slash-separated path, mirroring the shape spec.md §6
// describes for a real HDF5 file (/flux/<group>, /xsmesh/xstr/<g>, ...)
// without actually linking an HDF5 binding, since one is explicitly out
// of scope and none is present anywhere in the retrieved corpus (see
// DESIGN.md). Grounded on out/out.go's global "alias -> Points" results
// map idiom, re-expressed as an instance rather than package-level state
// since a sweeper run should be able to write more than one output file
// in a test process.
package hdfout

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/ntouran/mocc/merr"
)

// entry is one leaf dataset: a flat array plus the dimensions it should be
// reshaped to on read, dimensions ordered (z, y, x) per spec.md §6.
type entry struct {
	Data []float64 `json:"data"`
	Dims []int     `json:"dims"`
}

// Writer accumulates datasets under slash-separated paths and serializes
// them to a single JSON document on Close.
type Writer struct {
	path    string
	groups  map[string]bool
	entries map[string]entry
}

// NewWriter returns a Writer that will serialize to path on Close.
func NewWriter(path string) *Writer {
	return &Writer{
		path:    path,
		groups:  map[string]bool{"/": true},
		entries: make(map[string]entry),
	}
}

// CreateGroup registers an intermediate path as present even if it never
// receives a direct Write call (e.g. "/xsmesh" when only "/xsmesh/xstr/0"
// is written), so a reader can enumerate empty groups the same way it
// would in a real HDF5 file.
func (w *Writer) CreateGroup(path string) {
	w.groups[normalize(path)] = true
}

// Write stores data under path, reshaped per dims on read. dims is
// recorded in the (z, y, x) order spec.md §6 requires.
func (w *Writer) Write(path string, data []float64, dims []int) {
	p := normalize(path)
	w.entries[p] = entry{Data: append([]float64(nil), data...), Dims: append([]int(nil), dims...)}
	for parent := parentOf(p); parent != ""; parent = parentOf(parent) {
		w.groups[parent] = true
	}
}

// Close serializes every accumulated group and dataset to the Writer's
// path as a nested JSON document whose "/a/b/c" structure mirrors an HDF5
// file's group hierarchy, and returns a merr.IOError if the file cannot be
// written.
func (w *Writer) Close() error {
	root := make(map[string]interface{})
	for path, e := range w.entries {
		setPath(root, path, map[string]interface{}{"data": e.Data, "dims": e.Dims})
	}
	for path := range w.groups {
		if path == "/" {
			continue
		}
		ensurePath(root, path)
	}

	buf, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return merr.IO("hdfout.Writer", "cannot marshal output document: %v", err)
	}
	if err := os.WriteFile(w.path, buf, 0o644); err != nil {
		return merr.IO("hdfout.Writer", "cannot write output file %q: %v", w.path, err)
	}
	return nil
}

// Paths returns every dataset path written so far, sorted, for tests and
// diagnostics.
func (w *Writer) Paths() []string {
	out := make([]string, 0, len(w.entries))
	for p := range w.entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func normalize(path string) string {
	p := strings.Trim(path, "/")
	return "/" + p
}

func parentOf(path string) string {
	i := strings.LastIndex(strings.TrimSuffix(path, "/"), "/")
	if i <= 0 {
		return ""
	}
	return path[:i]
}

func segments(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func setPath(root map[string]interface{}, path string, leaf interface{}) {
	segs := segments(path)
	cur := root
	for i, s := range segs {
		if i == len(segs)-1 {
			cur[s] = leaf
			return
		}
		next, ok := cur[s].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			cur[s] = next
		}
		cur = next
	}
}

func ensurePath(root map[string]interface{}, path string) {
	segs := segments(path)
	cur := root
	for _, s := range segs {
		next, ok := cur[s].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			cur[s] = next
		}
		cur = next
	}
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdfout

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestWriterClosePath(tst *testing.T) {
	chk.PrintTitle("Writer.Close serializes nested group/dataset paths to JSON")

	dir := tst.TempDir()
	path := filepath.Join(dir, "out.json")

	w := NewWriter(path)
	w.Write("/flux/0", []float64{1.0, 2.0, 3.0, 4.0}, []int{1, 2, 2})
	w.Write("/xsmesh/xstr/0", []float64{1.0}, []int{1})
	w.CreateGroup("/xsmesh/xssc")

	if err := w.Close(); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	flux, ok := doc["flux"].(map[string]interface{})
	if !ok {
		tst.Fatalf("expected a flux group in the output document")
	}
	group0, ok := flux["0"].(map[string]interface{})
	if !ok {
		tst.Fatalf("expected /flux/0 dataset")
	}
	data, ok := group0["data"].([]interface{})
	if !ok || len(data) != 4 {
		tst.Fatalf("expected 4 data values under /flux/0, got %v", group0["data"])
	}

	xsmesh, ok := doc["xsmesh"].(map[string]interface{})
	if !ok {
		tst.Fatalf("expected an xsmesh group")
	}
	if _, ok := xsmesh["xssc"]; !ok {
		tst.Fatalf("expected an empty xssc group to be present")
	}
}

func TestWriterPaths(tst *testing.T) {
	chk.PrintTitle("Writer.Paths reports every written dataset path, sorted")

	w := NewWriter(filepath.Join(tst.TempDir(), "out.json"))
	w.Write("/flux/1", []float64{1.0}, []int{1})
	w.Write("/flux/0", []float64{1.0}, []int{1})

	paths := w.Paths()
	if len(paths) != 2 || paths[0] != "/flux/0" || paths[1] != "/flux/1" {
		tst.Fatalf("unexpected paths: %v", paths)
	}
}

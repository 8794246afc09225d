// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grd

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Save writes the grid to a file using the given encoder type ("gob" or "json")
func (o *Grid) Save(fnamepath, enctype string) (err error) {
	f, err := os.Create(fnamepath)
	if err != nil {
		return chk.Err("cannot create grid file %q: %v", fnamepath, err)
	}
	defer f.Close()
	enc := utl.NewEncoder(f, enctype)
	err = enc.Encode(&o.Head)
	if err != nil {
		return chk.Err("cannot encode grid header into %q: %v", fnamepath, err)
	}
	err = enc.Encode(&o.Vals)
	if err != nil {
		return chk.Err("cannot encode grid values into %q: %v", fnamepath, err)
	}
	return
}

// Read reads a grid from a file written by Save
func Read(fnamepath, enctype string) (o *Grid, err error) {
	f, err := os.Open(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot open grid file %q: %v", fnamepath, err)
	}
	defer f.Close()
	o = new(Grid)
	dec := utl.NewDecoder(f, enctype)
	err = dec.Decode(&o.Head)
	if err != nil {
		return nil, chk.Err("cannot decode grid header from %q: %v", fnamepath, err)
	}
	err = dec.Decode(&o.Vals)
	if err != nil {
		return nil, chk.Err("cannot decode grid values from %q: %v", fnamepath, err)
	}
	if len(o.Vals) != o.Head.Ncol*o.Head.Nrow {
		return nil, chk.Err("grid file %q is inconsistent: %d values for %d x %d grid", fnamepath, len(o.Vals), o.Head.Ncol, o.Head.Nrow)
	}
	return
}

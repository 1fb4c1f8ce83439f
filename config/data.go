// SPDX-License-Identifier: MIT
// Package: rivernet/config
//
// data.go — YAML network and attribute files.
//
// Network file:
//
//	next: [-1, 0, 1, 1]        # successor per node, -1 for outlets
//	cell_size: 30              # optional, default 1
//	x: [...]                   # optional node positions
//	y: [...]
//	grid: {x0: 0, y0: 900, cell_size: 30, rows: 30, cols: 30, crs: EPSG:2056}
//
// Attribute file, either pre-bound values or a raster sampled at the nodes:
//
//	values: [1.5, 2.0, .nan]
//
//	raster:
//	  {x0: 0, y0: 900, cell_size: 30, rows: 30, cols: 30, crs: EPSG:2056}
//	  nodata: -9999
//	  data: [...]              # row-major, north row first

package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rivernet/attribute"
	"github.com/katalvlaran/rivernet/network"
	"github.com/katalvlaran/rivernet/raster"
)

// GridRef is the YAML form of raster.Reference.
type GridRef struct {
	X0       float64 `yaml:"x0"`
	Y0       float64 `yaml:"y0"`
	CellSize float64 `yaml:"cell_size"`
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	CRS      string  `yaml:"crs,omitempty"`
}

// Reference converts g to a raster.Reference.
func (g GridRef) Reference() raster.Reference {
	return raster.Reference{X0: g.X0, Y0: g.Y0, CellSize: g.CellSize, Rows: g.Rows, Cols: g.Cols, CRS: g.CRS}
}

// NetworkFile is the YAML form of a network.
type NetworkFile struct {
	Next     []int     `yaml:"next"`
	CellSize float64   `yaml:"cell_size,omitempty"`
	X        []float64 `yaml:"x,omitempty"`
	Y        []float64 `yaml:"y,omitempty"`
	Grid     *GridRef  `yaml:"grid,omitempty"`
}

// RasterFile is the YAML form of a raster.Grid.
type RasterFile struct {
	GridRef `yaml:",inline"`
	NoData  *float64  `yaml:"nodata,omitempty"`
	Data    []float64 `yaml:"data"`
}

// ValuesFile holds exactly one attribute source.
type ValuesFile struct {
	Values []float64   `yaml:"values,omitempty"`
	Raster *RasterFile `yaml:"raster,omitempty"`
}

// Network builds the network described by f.
func (f *NetworkFile) Network() (*network.Network, error) {
	var opts []network.Option
	if f.CellSize != 0 {
		opts = append(opts, network.WithCellSize(f.CellSize))
	}
	if f.X != nil || f.Y != nil {
		opts = append(opts, network.WithPositions(f.X, f.Y))
	}
	if f.Grid != nil {
		opts = append(opts, network.WithGrid(f.Grid.Reference()))
	}
	net, err := network.New(f.Next, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: network: %w", ErrConfig, err)
	}
	return net, nil
}

// Source returns the attribute source described by f.
func (f *ValuesFile) Source() (attribute.Source, error) {
	switch {
	case f.Raster != nil && f.Values != nil:
		return nil, fmt.Errorf("%w: values and raster are mutually exclusive", ErrConfig)
	case f.Raster != nil:
		g, err := raster.New(f.Raster.Reference(), f.Raster.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: raster: %w", ErrConfig, err)
		}
		if f.Raster.NoData != nil {
			g.NoData = *f.Raster.NoData
		}
		return attribute.Raster{Grid: g}, nil
	case f.Values != nil:
		return attribute.Values(f.Values), nil
	}
	return nil, fmt.Errorf("%w: no values or raster given", ErrConfig)
}

// ParseNetwork decodes a network file.
func ParseNetwork(data []byte) (*network.Network, error) {
	var f NetworkFile
	if err := decodeStrict(data, &f); err != nil {
		return nil, err
	}
	return f.Network()
}

// LoadNetwork reads a network file.
func LoadNetwork(path string) (*network.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}
	net, err := ParseNetwork(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return net, nil
}

// ParseSource decodes an attribute file.
func ParseSource(data []byte) (attribute.Source, error) {
	var f ValuesFile
	if err := decodeStrict(data, &f); err != nil {
		return nil, err
	}
	return f.Source()
}

// LoadSource reads an attribute file.
func LoadSource(path string) (attribute.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}
	src, err := ParseSource(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// WriteValues encodes values as an attribute file, so that the output of one
// run can be the input of the next. NaN is written as .nan.
func WriteValues(w io.Writer, values []float64) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ValuesFile{Values: values}); err != nil {
		return fmt.Errorf("config: writing values: %w", err)
	}
	return enc.Close()
}

// WriteLabels encodes a segment labelling as `labels: [...]`.
func WriteLabels(w io.Writer, ids []int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Labels []int `yaml:"labels"`
	}{ids}); err != nil {
		return fmt.Errorf("config: writing labels: %w", err)
	}
	return enc.Close()
}

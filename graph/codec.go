// SPDX-License-Identifier: MIT
// Package: lvclique/graph
//
// codec.go - YAML instance files. A sampled graph written with Encode reads
// back bit-for-bit with Decode, so a fixture can be pinned to disk and shared
// between the oracle and an external solver.

package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	methodDecode = "graph.Decode"
	methodEncode = "graph.Encode"
	yamlIndent   = 2
)

// instanceFile is the on-disk shape of a graph instance.
type instanceFile struct {
	Nodes   int       `yaml:"nodes" json:"nodes"`
	Weights []flowRow `yaml:"weights" json:"weights"`
}

// flowRow renders as a one-line YAML sequence: [0, 4.5, 1].
type flowRow []float64

// MarshalYAML implements yaml.Marshaler.
func (r flowRow) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range r {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(v, 'g', -1, 64),
		})
	}

	return seq, nil
}

func (g *Graph) toFile() instanceFile {
	rows := g.Rows()
	f := instanceFile{Nodes: len(rows), Weights: make([]flowRow, len(rows))}
	for i, r := range rows {
		f.Weights[i] = r
	}

	return f
}

func fromFile(f instanceFile) (*Graph, error) {
	if f.Nodes < 0 || f.Nodes != len(f.Weights) {
		return nil, fmt.Errorf("%s: nodes=%d but %d weight rows: %w",
			methodDecode, f.Nodes, len(f.Weights), ErrMalformedInstance)
	}
	rows := make([][]float64, len(f.Weights))
	for i, r := range f.Weights {
		rows[i] = r
	}

	return FromRows(rows)
}

// MarshalYAML implements yaml.Marshaler.
func (g *Graph) MarshalYAML() (interface{}, error) { return g.toFile(), nil }

// UnmarshalYAML implements yaml.Unmarshaler; the decoded graph is validated.
func (g *Graph) UnmarshalYAML(value *yaml.Node) error {
	var f instanceFile
	if err := value.Decode(&f); err != nil {
		return fmt.Errorf("%s: %w: %w", methodDecode, ErrMalformedInstance, err)
	}
	out, err := fromFile(f)
	if err != nil {
		return err
	}
	*g = *out

	return nil
}

// MarshalJSON implements json.Marshaler with the same shape as the YAML file.
func (g *Graph) MarshalJSON() ([]byte, error) {
	f := g.toFile()
	rows := make([][]float64, len(f.Weights))
	for i, r := range f.Weights {
		rows[i] = r
	}

	return json.Marshal(struct {
		Nodes   int         `json:"nodes"`
		Weights [][]float64 `json:"weights"`
	}{f.Nodes, rows})
}

// Encode writes g as a YAML instance document.
func Encode(w io.Writer, g *Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("%s: %w", methodEncode, err)
	}

	return enc.Close()
}

// Decode reads one YAML instance document and validates it.
func Decode(r io.Reader) (*Graph, error) {
	var g Graph
	if err := yaml.NewDecoder(r).Decode(&g); err != nil {
		if errors.Is(err, ErrMalformedInstance) || errors.Is(err, ErrInvalidGraph) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w: %w", methodDecode, ErrMalformedInstance, err)
	}

	return &g, nil
}

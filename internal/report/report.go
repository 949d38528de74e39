// Package report writes a machine-readable summary of a run.
package report

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Summary describes one fasta2debruijn run.
type Summary struct {
	Version        string   `toml:"version" comment:"fasta2debruijn run summary"`
	Mode           string   `toml:"mode" comment:"merged | per-record"`
	Output         string   `toml:"output"`
	KmerLength     int      `toml:"kmer-length" comment:"Graph parameters"`
	StrandSpecific bool     `toml:"strand-specific"`
	Component      int      `toml:"component,omitempty"`
	Threads        int      `toml:"threads"`
	Inputs         []string `toml:"inputs" comment:"Input"`
	Files          int      `toml:"files"`
	Records        int      `toml:"records"`
	Bundles        int      `toml:"bundles"`
	Graphs         int      `toml:"graphs" comment:"Output"`
	Skipped        int      `toml:"skipped" comment:"records skipped for a malformed accession"`
	Nodes          int      `toml:"nodes"`
	Edges          int      `toml:"edges"`
	ElapsedSecs    float64  `toml:"elapsed-seconds"`
}

// Write stores s as TOML at path.
func Write(path string, s Summary) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	return nil
}

// Read loads a summary written by Write.
func Read(path string) (Summary, error) {
	var s Summary
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	err = toml.Unmarshal(data, &s)
	return s, err
}

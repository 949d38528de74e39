// Package config loads run settings from a TOML file and from FA2DBG_*
// environment variables (optionally seeded from a dotenv file).
//
// Every field is a pointer so that "unset" can be told apart from a zero
// value when layers are merged: flag > env > file > default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"fa2dbg/internal/common"
)

// Settings is one configuration layer.
type Settings struct {
	KmerLength     *int     `toml:"kmer-length"`
	Component      *int     `toml:"component"`
	StrandSpecific *bool    `toml:"strand-specific"`
	GraphPerRecord *bool    `toml:"graph-per-record"`
	Output         *string  `toml:"output"`
	Threads        *int     `toml:"threads"`
	Monitor        *int     `toml:"monitor"`
	Fasta          []string `toml:"fasta"`
}

// Environment variable names.
const (
	EnvKmerLength     = "FA2DBG_KMER_LENGTH"
	EnvComponent      = "FA2DBG_COMPONENT"
	EnvStrandSpecific = "FA2DBG_STRAND_SPECIFIC"
	EnvGraphPerRecord = "FA2DBG_GRAPH_PER_RECORD"
	EnvOutput         = "FA2DBG_OUTPUT"
	EnvThreads        = "FA2DBG_THREADS"
	EnvMonitor        = "FA2DBG_MONITOR"
	EnvFasta          = "FA2DBG_FASTA"
)

// Load reads a TOML settings file. An empty path yields empty settings.
func Load(path string) (Settings, error) {
	var s Settings
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// LoadDotenv seeds the process environment from a dotenv file without
// overriding variables that are already set. With an empty path, ./.env is
// used when it exists.
func LoadDotenv(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("dotenv: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("dotenv %s: %w", path, err)
	}
	return nil
}

// FromEnv builds settings from FA2DBG_* variables using lookup (os.LookupEnv
// in production).
func FromEnv(lookup func(string) (string, bool)) (Settings, error) {
	var s Settings
	var err error
	if s.KmerLength, err = envInt(lookup, EnvKmerLength); err != nil {
		return s, err
	}
	if s.Component, err = envInt(lookup, EnvComponent); err != nil {
		return s, err
	}
	if s.Threads, err = envInt(lookup, EnvThreads); err != nil {
		return s, err
	}
	if s.Monitor, err = envInt(lookup, EnvMonitor); err != nil {
		return s, err
	}
	if s.StrandSpecific, err = envBool(lookup, EnvStrandSpecific); err != nil {
		return s, err
	}
	if s.GraphPerRecord, err = envBool(lookup, EnvGraphPerRecord); err != nil {
		return s, err
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		s.Output = &v
	}
	if v, ok := lookup(EnvFasta); ok && v != "" {
		s.Fasta = common.SplitList([]string{v})
	}
	return s, nil
}

// Overlay returns s with every field set in over replacing its own.
func (s Settings) Overlay(over Settings) Settings {
	if over.KmerLength != nil {
		s.KmerLength = over.KmerLength
	}
	if over.Component != nil {
		s.Component = over.Component
	}
	if over.StrandSpecific != nil {
		s.StrandSpecific = over.StrandSpecific
	}
	if over.GraphPerRecord != nil {
		s.GraphPerRecord = over.GraphPerRecord
	}
	if over.Output != nil {
		s.Output = over.Output
	}
	if over.Threads != nil {
		s.Threads = over.Threads
	}
	if over.Monitor != nil {
		s.Monitor = over.Monitor
	}
	if len(over.Fasta) > 0 {
		s.Fasta = over.Fasta
	}
	return s
}

func envInt(lookup func(string) (string, bool), name string) (*int, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%s=%q: not an integer", name, v)
	}
	return &n, nil
}

func envBool(lookup func(string) (string, bool), name string) (*bool, error) {
	v, ok := lookup(name)
	if !ok || v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%s=%q: not a boolean", name, v)
	}
	return &b, nil
}

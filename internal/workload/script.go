// Package workload replays scripted and randomized operation sequences
// against the ordered containers, checking tree invariants as it goes.
package workload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownOp        = errors.New("unknown operation")
	ErrUnknownContainer = errors.New("unknown container")
)

// Container kinds.
const (
	KindMap      = "map"
	KindSet      = "set"
	KindMultiSet = "multiset"
)

// Operation names.
const (
	OpInsert     = "insert"
	OpSet        = "set"
	OpErase      = "erase"
	OpFind       = "find"
	OpAt         = "at"
	OpCount      = "count"
	OpLowerBound = "lower_bound"
	OpUpperBound = "upper_bound"
	OpEqualRange = "equal_range"
	OpLen        = "len"
	OpList       = "list"
	OpClear      = "clear"
)

// supported lists the containers each operation applies to.
var supported = map[string][]string{
	OpInsert:     {KindMap, KindSet, KindMultiSet},
	OpSet:        {KindMap},
	OpErase:      {KindMap, KindSet, KindMultiSet},
	OpFind:       {KindMap, KindSet, KindMultiSet},
	OpAt:         {KindMap},
	OpCount:      {KindMap, KindSet, KindMultiSet},
	OpLowerBound: {KindMultiSet},
	OpUpperBound: {KindMultiSet},
	OpEqualRange: {KindMultiSet},
	OpLen:        {KindMap, KindSet, KindMultiSet},
	OpList:       {KindMap, KindSet, KindMultiSet},
	OpClear:      {KindMap, KindSet, KindMultiSet},
}

type (
	// Script is a container kind and the operations to apply to it, in order.
	Script struct {
		Container string `yaml:"container"`
		Ops       []Op   `yaml:"ops"`
	}

	// Op is one step of a script. Keys are applied one at a time.
	// Value is used by map insertions.
	Op struct {
		Op    string `yaml:"op"`
		Keys  []int  `yaml:"keys,omitempty"`
		Value string `yaml:"value,omitempty"`
	}
)

// LoadScript reads and validates the script in fileName.
func LoadScript(fileName string) (*Script, error) {
	data, err := os.ReadFile(filepath.Clean(fileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML script and validates it.
func ParseScript(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports the first unknown container or operation in s,
// or an operation that the container does not support.
func (s *Script) Validate() error {
	switch s.Container {
	case KindMap, KindSet, KindMultiSet:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownContainer, s.Container)
	}
	for i, op := range s.Ops {
		kinds, ok := supported[op.Op]
		if !ok {
			return fmt.Errorf("op %d: %w: %q", i, ErrUnknownOp, op.Op)
		}
		if !slices.Contains(kinds, s.Container) {
			return fmt.Errorf("op %d: %w: %q is not supported by %s", i, ErrUnknownOp, op.Op, s.Container)
		}
	}
	return nil
}

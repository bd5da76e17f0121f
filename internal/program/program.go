// Package program describes and runs a sequence of demo steps: vector sums,
// fixed-buffer sums and speakers.
//
// # Program Format
//
// Programs are YAML or CUE documents. In YAML:
//
//	name: default
//	description: "What this program shows"
//	steps:
//	  - sum:    { label: vector, values: [1, 2, 3, 4, 5] }
//	  - buffer: { label: array,  values: [1, 2, 3, 4, 5] }
//	  - speak:  { kind: dog, name: Buddy }
//
// In CUE the same document sits under a top-level "program" field.
//
// Each step sets exactly one of sum, buffer or speak and produces exactly
// one output line.
package program

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Program is an ordered list of steps.
type Program struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Steps       []Step `yaml:"steps" json:"steps"`
}

// Step is one action. Exactly one field must be set.
type Step struct {
	// Sum adds up a resizable sequence.
	Sum *SumStep `yaml:"sum,omitempty" json:"sum,omitempty"`

	// Buffer adds up a fixed buffer of exactly aggregate.BufferLen values.
	Buffer *SumStep `yaml:"buffer,omitempty" json:"buffer,omitempty"`

	// Speak creates a speaker and records its line.
	Speak *SpeakStep `yaml:"speak,omitempty" json:"speak,omitempty"`
}

// SumStep holds the values for a sum or buffer step.
type SumStep struct {
	Label  string `yaml:"label" json:"label"`
	Values []int  `yaml:"values" json:"values"`
}

// SpeakStep names the speaker kind and instance name.
type SpeakStep struct {
	Kind string `yaml:"kind" json:"kind"`
	Name string `yaml:"name" json:"name"`
}

// Action names for steps.
const (
	ActionSum    = "sum"
	ActionBuffer = "buffer"
	ActionSpeak  = "speak"
)

// Action returns the step's action name, or "" if none or several are set.
func (s Step) Action() string {
	var actions []string
	if s.Sum != nil {
		actions = append(actions, ActionSum)
	}
	if s.Buffer != nil {
		actions = append(actions, ActionBuffer)
	}
	if s.Speak != nil {
		actions = append(actions, ActionSpeak)
	}
	if len(actions) != 1 {
		return ""
	}
	return actions[0]
}

// Default returns the built-in program whose output is the four canonical
// lines.
func Default() *Program {
	p, err := ParseYAML(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default program: %v", err))
	}
	return p
}

// ParseYAML decodes a program, rejecting unknown fields.
func ParseYAML(data []byte) (*Program, error) {
	var p Program
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &p, nil
}

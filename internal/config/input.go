// Package config loads report requests from disk and the process
// configuration from the environment.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/propforma/propforma/internal/domain"
)

// InputParser handles parsing of report request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a report request from a YAML or JSON file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req domain.CalculationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &req, nil
}

// ValidateRequest enforces the boundary checks the derivation layer itself
// never performs: a known tool and a non-empty body. Field-level
// malformation is deliberately not rejected here; it degrades to zero values
// downstream.
func (ip *InputParser) ValidateRequest(req *domain.CalculationRequest) error {
	if req.Tool == "" {
		return fmt.Errorf("tool is required")
	}
	if _, err := domain.ParseTool(req.Tool); err != nil {
		return err
	}
	if len(req.Calculation) == 0 && len(req.Property) == 0 {
		return fmt.Errorf("calculation and property data are both empty")
	}
	return nil
}

// Package config loads and validates birth input files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tianming/city-selector/internal/domain"
)

// InputParser handles parsing of birth input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a birth input from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.BirthInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.BirthInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&input); err != nil {
		return nil, fmt.Errorf("birth input validation failed: %w", err)
	}

	return &input, nil
}

// Validate checks a birth input for well-formedness. The hour branch must be
// one of the twelve branch symbols; the engine's internal degradation paths
// cover only data that slips past validation.
func (ip *InputParser) Validate(input *domain.BirthInput) error {
	if input.Year < 1900 || input.Year > 2100 {
		return fmt.Errorf("year must be between 1900 and 2100, got %d", input.Year)
	}
	if input.Month < 1 || input.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", input.Month)
	}
	if input.Day < 1 || input.Day > 31 {
		return fmt.Errorf("day must be between 1 and 31, got %d", input.Day)
	}
	if domain.BranchIndex(input.HourBranch) == -1 {
		return fmt.Errorf("hour branch %q is not one of the twelve earthly branches", input.HourBranch)
	}
	if input.Gender != domain.GenderMale && input.Gender != domain.GenderFemale {
		return fmt.Errorf("gender must be %q or %q, got %q", domain.GenderMale, domain.GenderFemale, input.Gender)
	}
	if input.Longitude != nil && (*input.Longitude < -180 || *input.Longitude > 180) {
		return fmt.Errorf("longitude must be between -180 and 180, got %v", *input.Longitude)
	}
	return nil
}

// CreateExampleInput creates an example birth input.
func (ip *InputParser) CreateExampleInput() *domain.BirthInput {
	longitude := 104.06 // 成都
	return &domain.BirthInput{
		Name:       "示例",
		Year:       1990,
		Month:      1,
		Day:        15,
		HourBranch: "午",
		Gender:     domain.GenderMale,
		Longitude:  &longitude,
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tianming/city-selector/internal/domain"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "birth.yaml")
	content := `name: 测试
year: 1990
month: 1
day: 15
hour_branch: 午
gender: male
longitude: 104.06
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	parser := NewInputParser()
	input, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "测试", input.Name)
	assert.Equal(t, 1990, input.Year)
	assert.Equal(t, "午", input.HourBranch)
	assert.Equal(t, domain.GenderMale, input.Gender)
	require.NotNil(t, input.Longitude)
	assert.InDelta(t, 104.06, *input.Longitude, 0.001)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("year: [not a number"), 0644))

	parser := NewInputParser()
	_, err := parser.LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidate(t *testing.T) {
	longitude := 104.06
	valid := domain.BirthInput{
		Year: 1990, Month: 1, Day: 15,
		HourBranch: "午", Gender: domain.GenderMale, Longitude: &longitude,
	}

	parser := NewInputParser()
	assert.NoError(t, parser.Validate(&valid))

	tests := []struct {
		name   string
		mutate func(*domain.BirthInput)
		errHas string
	}{
		{"year too early", func(i *domain.BirthInput) { i.Year = 1850 }, "year"},
		{"year too late", func(i *domain.BirthInput) { i.Year = 2150 }, "year"},
		{"month out of range", func(i *domain.BirthInput) { i.Month = 13 }, "month"},
		{"day out of range", func(i *domain.BirthInput) { i.Day = 0 }, "day"},
		{"bad hour branch", func(i *domain.BirthInput) { i.HourBranch = "noon" }, "hour branch"},
		{"bad gender", func(i *domain.BirthInput) { i.Gender = "other" }, "gender"},
		{"longitude out of range", func(i *domain.BirthInput) { lon := 200.0; i.Longitude = &lon }, "longitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			err := parser.Validate(&input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errHas)
		})
	}
}

func TestValidateNilLongitudeIsFine(t *testing.T) {
	parser := NewInputParser()
	input := domain.BirthInput{
		Year: 1990, Month: 1, Day: 15, HourBranch: "午", Gender: domain.GenderFemale,
	}
	assert.NoError(t, parser.Validate(&input))
}

func TestCreateExampleInputValidates(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleInput()
	assert.NoError(t, parser.Validate(example), "the shipped example must pass its own validation")
}

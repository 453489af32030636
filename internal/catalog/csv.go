package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/advisehq/advisor/internal/profile"
	"github.com/advisehq/advisor/internal/survey"
)

// csvProgramme mirrors one row of the programmes table. Tag columns are
// comma-separated lists inside a single CSV field.
type csvProgramme struct {
	ID           string `mapstructure:"id"`
	Name         string `mapstructure:"name"`
	Institution  string `mapstructure:"institution"`
	Primary      string `mapstructure:"primary"`
	Secondary    string `mapstructure:"secondary"`
	Tertiary     string `mapstructure:"tertiary"`
	ModeTags     string `mapstructure:"mode_tags"`
	ValueTags    string `mapstructure:"value_tags"`
	InterestTags string `mapstructure:"interest_tags"`
	StyleTags    string `mapstructure:"style_tags"`
	Link         string `mapstructure:"link"`
}

// csvQuestion mirrors one row of the Likert questions table.
type csvQuestion struct {
	ID        string `mapstructure:"id"`
	Category  string `mapstructure:"category"`
	Prompt    string `mapstructure:"prompt"`
	Dimension string `mapstructure:"dimension"`
}

// LoadProgrammes reads the programme reference table from a CSV file
// with a header row. An empty table is a valid degenerate input.
func LoadProgrammes(path string) (*Programmes, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, fmt.Errorf("programmes table: %w", err)
	}

	programmes := &Programmes{}
	for i, row := range rows {
		var record csvProgramme
		if err := mapstructure.Decode(row, &record); err != nil {
			return nil, fmt.Errorf("programmes table row %d: %w", i+1, err)
		}
		if record.ID == "" || record.Name == "" {
			return nil, fmt.Errorf("programmes table row %d: id and name are required", i+1)
		}

		programmes.Items = append(programmes.Items, &Programme{
			ID:           record.ID,
			Name:         record.Name,
			Institution:  record.Institution,
			Primary:      profile.Dimension(strings.TrimSpace(record.Primary)),
			Secondary:    profile.Dimension(strings.TrimSpace(record.Secondary)),
			Tertiary:     profile.Dimension(strings.TrimSpace(record.Tertiary)),
			ModeTags:     record.ModeTags,
			ValueTags:    splitTags(record.ValueTags),
			InterestTags: splitTags(record.InterestTags),
			StyleTags:    splitTags(record.StyleTags),
			Link:         record.Link,
		})
	}

	return programmes, nil
}

// LoadQuestions reads a Likert question table from a CSV file. Every
// loaded question is required; the dimension column must hold a code of
// the given scheme.
func LoadQuestions(path string, scheme *profile.Scheme) ([]survey.Question, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, fmt.Errorf("questions table: %w", err)
	}

	questions := make([]survey.Question, 0, len(rows))
	for i, row := range rows {
		var record csvQuestion
		if err := mapstructure.Decode(row, &record); err != nil {
			return nil, fmt.Errorf("questions table row %d: %w", i+1, err)
		}

		dimension, ok := scheme.Parse(strings.TrimSpace(record.Dimension))
		if !ok {
			return nil, fmt.Errorf("questions table row %d: dimension %q: %w", i+1, record.Dimension, profile.ErrUnknownDimension)
		}

		questions = append(questions, survey.Question{
			ID:        record.ID,
			Category:  record.Category,
			Prompt:    record.Prompt,
			Kind:      survey.KindLikert,
			Dimension: dimension,
			Required:  true,
		})
	}

	return questions, nil
}

// LoadDescriptions reads the dimension-description table (code,
// description) from a CSV file.
func LoadDescriptions(path string) (DimensionDescriptions, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, fmt.Errorf("descriptions table: %w", err)
	}

	descriptions := make(DimensionDescriptions, len(rows))
	for i, row := range rows {
		code := strings.TrimSpace(row["code"])
		if code == "" {
			return nil, fmt.Errorf("descriptions table row %d: code is required", i+1)
		}
		descriptions[profile.Dimension(code)] = row["description"]
	}

	return descriptions, nil
}

// readCSV returns every data row as a header-keyed map with lowercased
// header names.
func readCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, name := range header {
		header[i] = strings.ToLower(strings.TrimSpace(name))
	}

	var rows []map[string]string
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+1, err)
		}

		row := make(map[string]string, len(header))
		for i, value := range fields {
			if i < len(header) {
				row[header[i]] = value
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Package report renders search responses for terminals and files.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hamed0406/footprint/internal/domain"
)

// Format selects an output encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat accepts the names above; an empty string means markdown.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatMarkdown:
		return FormatMarkdown, nil
	case FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown format %q (want markdown, json or yaml)", s)
}

// Write renders resp to out in the given format.
func Write(out io.Writer, f Format, resp *domain.SearchResponse) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case FormatYAML:
		return writeYAML(out, resp)
	default:
		return NewMarkdownWriter(out).Write(resp)
	}
}

// writeYAML goes through JSON so keys match the API field names.
func writeYAML(out io.Writer, resp *domain.SearchResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return err
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return err
	}
	return enc.Close()
}

// Decode reads a SearchResponse produced by the API and restores the typed
// Results value for its search type.
func Decode(r io.Reader) (*domain.SearchResponse, error) {
	var env struct {
		Query     string            `json:"query"`
		Type      domain.SearchType `json:"type"`
		Results   json.RawMessage   `json:"results"`
		Timestamp string            `json:"timestamp"`
	}
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var results any
	switch env.Type {
	case domain.SearchUsername:
		results = &domain.UsernameResult{}
	case domain.SearchEmail:
		results = &domain.EmailResult{}
	case domain.SearchName:
		results = &domain.NameResult{}
	default:
		return nil, fmt.Errorf("decode response: unknown search type %q", env.Type)
	}
	if err := json.Unmarshal(env.Results, results); err != nil {
		return nil, fmt.Errorf("decode %s results: %w", env.Type, err)
	}

	return &domain.SearchResponse{
		Query:     env.Query,
		Type:      env.Type,
		Results:   results,
		Timestamp: env.Timestamp,
	}, nil
}

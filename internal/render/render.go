// Package render produces command output from a battle-points breakdown.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/battlepoints/internal/battle"
	"gopkg.in/yaml.v3"
)

// Format selects how a breakdown is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f Format) Valid() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// ParseFormat maps a --format value to a Format. "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		f = FormatYAML
	}
	if !f.Valid() {
		return "", errors.New("unknown format (want text, json or yaml)")
	}
	return f, nil
}

// TextPrefix precedes the score in text output.
const TextPrefix = "Calculated Pokemon TCG Battle Points: "

// Text renders the single result line.
func Text(b battle.Breakdown) string {
	return fmt.Sprintf("%s%d\n", TextPrefix, b.Points)
}

// JSON renders the breakdown as indented JSON.
func JSON(b battle.Breakdown) (string, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render.JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// YAML renders the breakdown as a YAML document.
func YAML(b battle.Breakdown) (string, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(b); err != nil {
		return "", fmt.Errorf("render.YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("render.YAML: %w", err)
	}
	return sb.String(), nil
}

// Render dispatches on f.
func Render(b battle.Breakdown, f Format) (string, error) {
	switch f {
	case FormatText:
		return Text(b), nil
	case FormatJSON:
		return JSON(b)
	case FormatYAML:
		return YAML(b)
	default:
		return "", fmt.Errorf("render.Render: unknown format %q", f)
	}
}

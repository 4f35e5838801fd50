package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/battlepoints/internal/battle"
	"gopkg.in/yaml.v3"
)

func sampleBreakdown(t *testing.T) battle.Breakdown {
	t.Helper()
	b, err := battle.Calculate(battle.NewInput(2, 10, 1))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestText(t *testing.T) {
	got := Text(sampleBreakdown(t))
	want := "Calculated Pokemon TCG Battle Points: -1\n"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b := sampleBreakdown(t)
	out, err := JSON(b)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"points": -1`) {
		t.Errorf("JSON output missing points field:\n%s", out)
	}
	var got battle.Breakdown
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got != b {
		t.Errorf("decoded = %+v, want %+v", got, b)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	b := sampleBreakdown(t)
	out, err := YAML(b)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"points: -1", "part1: -4", "part2: 2", "  divi: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
	var got battle.Breakdown
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if got != b {
		t.Errorf("decoded = %+v, want %+v", got, b)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFormat(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderDispatch(t *testing.T) {
	b := sampleBreakdown(t)
	for _, f := range []Format{FormatText, FormatJSON, FormatYAML} {
		out, err := Render(b, f)
		if err != nil {
			t.Errorf("Render(%s): %v", f, err)
		}
		if out == "" {
			t.Errorf("Render(%s) returned empty output", f)
		}
	}
	if _, err := Render(b, Format("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
}

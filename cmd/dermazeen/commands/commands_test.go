// ABOUTME: Tests for CLI command construction and input parsing
// ABOUTME: Verifies version output, answer parsing and subcommand wiring
package commands

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestRootCmdHasSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"assess", "sessions", "report", "mcp", "version"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %s", name)
		}
	}
}

func TestVersionCmdOutput(t *testing.T) {
	originalInfo := versionInfo
	defer func() { versionInfo = originalInfo }()

	SetVersion("1.2.3", "abc123", "2026-08-01")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"Dermazeen 1.2.3", "Commit: abc123", "Built:  2026-08-01"} {
		if !strings.Contains(output.String(), expected) {
			t.Errorf("output missing %q, got:\n%s", expected, output.String())
		}
	}
}

func TestParseAnswer(t *testing.T) {
	cases := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{"3\n", []int{3}, false},
		{"1,2,4\n", []int{1, 2, 4}, false},
		{"1, 2, 4\n", []int{1, 2, 4}, false},
		{"2 5\n", []int{2, 5}, false},
		{"\n", nil, true},
		{"two\n", nil, true},
		{"1,x\n", nil, true},
	}
	for _, tc := range cases {
		got, err := parseAnswer(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseAnswer(%q) = %v, want error", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAnswer(%q) error = %v", tc.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseAnswer(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestImageContentType(t *testing.T) {
	cases := map[string]string{
		"face.jpg":  "image/jpeg",
		"face.JPEG": "image/jpeg",
		"face.png":  "image/png",
		"face.webp": "image/webp",
		"face":      "image/jpeg",
	}
	for path, want := range cases {
		if got := imageContentType(path); got != want {
			t.Errorf("imageContentType(%s) = %s, want %s", path, got, want)
		}
	}
}

func TestAssessSunFlagDocumentsAcceptedLevels(t *testing.T) {
	flag := NewAssessCmd().Flags().Lookup("sun")
	if flag == nil {
		t.Fatal("assess has no --sun flag")
	}
	for _, level := range []string{"minimal", "light", "moderate", "high", "very_high"} {
		if !strings.Contains(flag.Usage, level) {
			t.Errorf("--sun usage %q does not mention %q", flag.Usage, level)
		}
	}
}

// ABOUTME: Tests for the rule lookup and search CLI command
// ABOUTME: Runs through the root command against a temp rule corpus

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const lcvr7YAML = `rule: "LCvR 7"
title: "Motions"
chunks:
  - id: "page_limits"
    section: "LCvR 7(n)"
    title: "Page Limits"
    content: "A motion may not exceed 45 pages and a reply may not exceed 25 pages."
    requirements:
      max_pages_motion: 45
      max_pages_reply: 25
    keywords:
      - "page limit"
      - "length"
`

func setupRuleCorpus(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lcvr-7.yaml"), []byte(lcvr7YAML), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DCCOURT_RULES_DIR", dir)
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return output.String(), err
}

func TestRuleCmd_ExactLookup(t *testing.T) {
	setupRuleCorpus(t)

	output, err := runCommand(t, "rule", "LCvR 7")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"LCvR 7 - Motions", "[LCvR 7(n)] Page Limits", "45 pages"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRuleCmd_MissListsKnownRules(t *testing.T) {
	setupRuleCorpus(t)

	output, err := runCommand(t, "rule", "LCrR 57")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output, `No rule matching "LCrR 57"`) {
		t.Errorf("output missing miss message:\n%s", output)
	}
	if !strings.Contains(output, "LCvR 7") {
		t.Errorf("output missing known rule listing:\n%s", output)
	}
}

func TestRuleCmd_Search(t *testing.T) {
	setupRuleCorpus(t)

	output, err := runCommand(t, "rule", "--search", "page limit")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output, "[LCvR 7(n)] Page Limits") {
		t.Errorf("output missing search hit:\n%s", output)
	}
}

func TestRuleCmd_SearchJSON(t *testing.T) {
	setupRuleCorpus(t)

	output, err := runCommand(t, "rule", "--search", "page limit", "--format", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var results []struct {
		Section string `json:"section"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal([]byte(output), &results); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if len(results) != 1 || results[0].Section != "LCvR 7(n)" {
		t.Errorf("results = %+v, want one LCvR 7(n) hit", results)
	}
}

func TestRuleCmd_RequiresArgument(t *testing.T) {
	setupRuleCorpus(t)

	if _, err := runCommand(t, "rule"); err == nil {
		t.Error("expected error for missing identifier argument")
	}
}

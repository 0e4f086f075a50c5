package main

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/ayselgur/cradle/internal/config"
	"github.com/ayselgur/cradle/internal/repo"
)

// runApp runs the CLI app with the given args, capturing stdout.
func runApp(t *testing.T, r repo.Repository, args ...string) (string, error) {
	t.Helper()

	app := newCLIApp(r, config.DefaultConfig())

	oldStdout := os.Stdout
	pr, pw, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = pw

	runErr := app.Run(append([]string{"cradle"}, args...))

	pw.Close()
	os.Stdout = oldStdout

	out, err := io.ReadAll(pr)
	if err != nil {
		t.Fatalf("read stdout: %v", err)
	}
	return string(out), runErr
}

// parseJSON unmarshals CLI output into a generic map.
func parseJSON(t *testing.T, out string) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	return v
}

// TestCLIMoodAddListDelete runs the mood commands end to end.
func TestCLIMoodAddListDelete(t *testing.T) {
	r := repo.NewMemory()

	out, err := runApp(t, r, "mood", "add", "--level", "4", "--note", "iyi uyudu")
	if err != nil {
		t.Fatalf("mood add: %v", err)
	}
	added := parseJSON(t, out)
	if added["moodLabel"] != "Mutlu" {
		t.Errorf("moodLabel = %v, want Mutlu", added["moodLabel"])
	}
	id, _ := added["id"].(string)
	if id == "" {
		t.Fatal("expected non-empty id")
	}

	out, err = runApp(t, r, "mood", "list")
	if err != nil {
		t.Fatalf("mood list: %v", err)
	}
	listed := parseJSON(t, out)
	if int(listed["count"].(float64)) != 1 {
		t.Errorf("count = %v, want 1", listed["count"])
	}

	out, err = runApp(t, r, "mood", "delete", id)
	if err != nil {
		t.Fatalf("mood delete: %v", err)
	}
	if parseJSON(t, out)["deleted"] != true {
		t.Error("expected deleted=true")
	}

	out, err = runApp(t, r, "mood", "list")
	if err != nil {
		t.Fatalf("mood list: %v", err)
	}
	if int(parseJSON(t, out)["count"].(float64)) != 0 {
		t.Error("expected empty list after delete")
	}
}

// TestCLIMoodAddInvalidLevel verifies out-of-range levels fail with a coded error.
func TestCLIMoodAddInvalidLevel(t *testing.T) {
	r := repo.NewMemory()

	_, err := runApp(t, r, "mood", "add", "--level", "9")
	if err == nil {
		t.Fatal("expected error for level 9")
	}
	if !strings.Contains(err.Error(), "INVALID_ARGUMENT") {
		t.Errorf("error = %v, want INVALID_ARGUMENT code", err)
	}
}

// TestCLIFeedingAdd tests feeding add across types and ranges.
func TestCLIFeedingAdd(t *testing.T) {
	r := repo.NewMemory()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "breastfeeding minutes",
			args: []string{"feeding", "add", "--type", "Meme", "--amount", "25"},
		},
		{
			name: "bottle mL",
			args: []string{"feeding", "add", "--type", "Biberon", "--amount", "150"},
		},
		{
			name:    "bottle out of range",
			args:    []string{"feeding", "add", "--type", "Biberon", "--amount", "301"},
			wantErr: true,
		},
		{
			name:    "unknown type",
			args:    []string{"feeding", "add", "--type", "Çorba", "--amount", "10"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, r, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			added := parseJSON(t, out)
			if added["id"] == "" {
				t.Error("expected non-empty id")
			}
		})
	}

	out, err := runApp(t, r, "feeding", "list")
	if err != nil {
		t.Fatalf("feeding list: %v", err)
	}
	if int(parseJSON(t, out)["count"].(float64)) != 2 {
		t.Error("expected 2 feedings after the valid adds")
	}
}

// TestCLINoteCommands tests note add/edit/list/delete.
func TestCLINoteCommands(t *testing.T) {
	r := repo.NewMemory()

	out, err := runApp(t, r, "note", "add", "İlk", "banyo", "günü")
	if err != nil {
		t.Fatalf("note add: %v", err)
	}
	added := parseJSON(t, out)
	if added["text"] != "İlk banyo günü" {
		t.Errorf("text = %v, want joined args", added["text"])
	}
	id := added["id"].(string)

	out, err = runApp(t, r, "note", "edit", id, "İlk", "banyo", "harikaydı")
	if err != nil {
		t.Fatalf("note edit: %v", err)
	}
	edited := parseJSON(t, out)
	if edited["text"] != "İlk banyo harikaydı" {
		t.Errorf("text = %v, want edited text", edited["text"])
	}
	if edited["id"] != id {
		t.Errorf("id changed on edit: %v", edited["id"])
	}
	if edited["createdAt"] != added["createdAt"] {
		t.Errorf("createdAt changed on edit")
	}

	_, err = runApp(t, r, "note", "edit", "missing-id", "x")
	if err == nil {
		t.Fatal("expected error for unknown note id")
	}
	if !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Errorf("error = %v, want NOT_FOUND code", err)
	}

	out, err = runApp(t, r, "note", "delete", id)
	if err != nil {
		t.Fatalf("note delete: %v", err)
	}
	if parseJSON(t, out)["deleted"] != true {
		t.Error("expected deleted=true")
	}
}

// TestCLIPanasSubmitFromStdin pipes an answers array into panas submit.
func TestCLIPanasSubmitFromStdin(t *testing.T) {
	r := repo.NewMemory()

	var b strings.Builder
	b.WriteString("[")
	for i := 1; i <= 20; i++ {
		if i > 1 {
			b.WriteString(",")
		}
		b.WriteString(`{"questionId":"q`)
		b.WriteString(strconv.Itoa(i))
		b.WriteString(`","score":3}`)
	}
	b.WriteString("]")

	oldStdin := os.Stdin
	stdinR, stdinW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdin = stdinR
	t.Cleanup(func() { os.Stdin = oldStdin })

	go func() {
		_, _ = stdinW.WriteString(b.String())
		stdinW.Close()
	}()

	out, err := runApp(t, r, "panas", "submit")
	if err != nil {
		t.Fatalf("panas submit: %v", err)
	}
	rec := parseJSON(t, out)
	if int(rec["positiveScore"].(float64)) != 30 {
		t.Errorf("positiveScore = %v, want 30", rec["positiveScore"])
	}
	if int(rec["negativeScore"].(float64)) != 30 {
		t.Errorf("negativeScore = %v, want 30", rec["negativeScore"])
	}
}

// TestCLISummaryAndSeed runs seed and checks summary counts.
func TestCLISummaryAndSeed(t *testing.T) {
	r := repo.NewMemory()

	if _, err := runApp(t, r, "seed"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := runApp(t, r, "summary")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	sum := parseJSON(t, out)

	if int(sum["moodCount"].(float64)) != 3 {
		t.Errorf("moodCount = %v, want 3", sum["moodCount"])
	}
	if int(sum["feedingCount"].(float64)) != 3 {
		t.Errorf("feedingCount = %v, want 3", sum["feedingCount"])
	}
	if int(sum["panasCount"].(float64)) != 1 {
		t.Errorf("panasCount = %v, want 1", sum["panasCount"])
	}
	if int(sum["noteCount"].(float64)) != 2 {
		t.Errorf("noteCount = %v, want 2", sum["noteCount"])
	}
}

// TestIsCLIMode tests the CLI/MCP dispatch decision.
func TestIsCLIMode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no args", []string{"cradle"}, false},
		{"known command", []string{"cradle", "mood"}, true},
		{"help flag", []string{"cradle", "--help"}, true},
		{"version flag", []string{"cradle", "-v"}, true},
		{"unknown command", []string{"cradle", "bogus"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			os.Args = tt.args
			defer func() { os.Args = oldArgs }()

			if got := isCLIMode(); got != tt.want {
				t.Errorf("isCLIMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

package report

import (
	"strings"
	"testing"

	"userpipe/internal/models"
)

func TestTable(t *testing.T) {
	got := Table(
		[]string{"id", "name"},
		[][]string{
			{"1", "JOHN DOE"},
			{"20", "JO"},
		},
	)

	want := strings.Join([]string{
		"| id | name     |",
		"| -- | -------- |",
		"| 1  | JOHN DOE |",
		"| 20 | JO       |",
		"",
	}, "\n")

	if got != want {
		t.Errorf("Table output:\n%s\nwant:\n%s", got, want)
	}
}

func TestTable_WideCharacters(t *testing.T) {
	got := Table(
		[]string{"name"},
		[][]string{
			{"安藤"},
			{"al"},
		},
	)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}

	// CJK cells occupy two columns per rune; every row must align.
	if lines[2] != "| 安藤 |" {
		t.Errorf("wide row = %q", lines[2])
	}

	if lines[3] != "| al   |" {
		t.Errorf("narrow row = %q", lines[3])
	}
}

func TestPreview_Limit(t *testing.T) {
	users := []models.CleanUser{
		{ID: "1", Name: "A", Email: "a@example.com"},
		{ID: "2", Name: "B", Email: "b@example.com"},
		{ID: "3", Name: "C", Email: "c@example.com"},
	}

	got := Preview(users, 2)

	if strings.Contains(got, "c@example.com") {
		t.Errorf("preview not limited:\n%s", got)
	}

	if !strings.Contains(got, "a@example.com") || !strings.Contains(got, "b@example.com") {
		t.Errorf("preview missing rows:\n%s", got)
	}
}

func TestPreview_LimitBeyondLength(t *testing.T) {
	users := []models.CleanUser{
		{ID: "1", Name: "A", Email: "a@example.com"},
	}

	got := Preview(users, 10)
	if !strings.Contains(got, "a@example.com") {
		t.Errorf("preview missing row:\n%s", got)
	}
}

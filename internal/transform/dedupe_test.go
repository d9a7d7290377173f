package transform

import (
	"strings"
	"testing"

	"userpipe/internal/models"
)

func TestProcessor_DedupeByID(t *testing.T) {
	log, buf := newTestLogger()
	p := NewProcessor(log)

	users := []models.RawUser{
		{"id": 1.0, "name": "first one"},
		{"id": 2.0, "name": "two"},
		{"id": 1.0, "name": "second one"},
		{"id": 3.0, "name": "three"},
	}

	got := p.DedupeByID(users)

	if len(got) != 3 {
		t.Fatalf("DedupeByID returned %d users, want 3", len(got))
	}

	// First occurrence wins and relative order is preserved.
	if got[0].Text("name") != "first one" {
		t.Errorf("got[0].name = %q, want %q", got[0].Text("name"), "first one")
	}

	wantIDs := []float64{1, 2, 3}
	for i, want := range wantIDs {
		if got[i].ID() != want {
			t.Errorf("got[%d].id = %v, want %v", i, got[i].ID(), want)
		}
	}

	if !strings.Contains(buf.String(), "duplicate id found and removed") {
		t.Errorf("expected duplicate diagnostic, got log: %s", buf.String())
	}
}

func TestProcessor_DedupeByID_NullIDsDropped(t *testing.T) {
	log, buf := newTestLogger()
	p := NewProcessor(log)

	users := []models.RawUser{
		{"name": "no id"},
		{"id": 1.0, "name": "one"},
		{"id": nil, "name": "null id"},
	}

	got := p.DedupeByID(users)

	if len(got) != 1 {
		t.Fatalf("DedupeByID returned %d users, want 1", len(got))
	}

	if got[0].ID() != 1.0 {
		t.Errorf("surviving id = %v, want 1", got[0].ID())
	}

	// Null-id records disappear without a duplicate diagnostic.
	if strings.Contains(buf.String(), "duplicate id") {
		t.Errorf("unexpected duplicate diagnostic for null ids: %s", buf.String())
	}
}

func TestProcessor_DedupeByID_MixedIDTypes(t *testing.T) {
	log, _ := newTestLogger()
	p := NewProcessor(log)

	users := []models.RawUser{
		{"id": "1", "name": "string one"},
		{"id": 1.0, "name": "number one"},
	}

	// "1" and 1 are distinct ids; both survive.
	got := p.DedupeByID(users)
	if len(got) != 2 {
		t.Fatalf("DedupeByID returned %d users, want 2", len(got))
	}
}

func TestProcessor_DedupeByID_UnusableIDPassesThrough(t *testing.T) {
	log, _ := newTestLogger()
	p := NewProcessor(log)

	users := []models.RawUser{
		{"id": []any{1.0}, "name": "array id"},
		{"id": []any{1.0}, "name": "array id again"},
	}

	// Array ids cannot be deduplicated; both reach the reshape stage.
	got := p.DedupeByID(users)
	if len(got) != 2 {
		t.Fatalf("DedupeByID returned %d users, want 2", len(got))
	}
}

package roadmap

import "testing"

func testItems() []Item {
	return []Item{
		{ID: "a", Title: "Transaction sync", Status: StatusInProgress, Moscow: "must-have"},
		{ID: "b", Title: "User Authentication", Status: StatusNotStarted, Moscow: "must-have"},
		{ID: "c", Title: "Transaction history view", Status: StatusNotStarted, Moscow: "should-have"},
	}
}

func TestFindByTitle(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"substring, order preserved", "Transaction", []string{"a", "c"}},
		{"case-insensitive", "TRANSACTION SYNC", []string{"a"}},
		{"lowercase query", "authentication", []string{"b"}},
		{"no matches", "payments", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := FindByTitle(testItems(), tt.query)
			if len(matches) != len(tt.wantIDs) {
				t.Fatalf("got %d matches, want %d", len(matches), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if matches[i].ID != want {
					t.Errorf("match[%d].ID = %s, want %s", i, matches[i].ID, want)
				}
			}
		})
	}
}

func TestFindByTitle_Projection(t *testing.T) {
	matches := FindByTitle(testItems(), "sync")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.ID != "a" || m.Title != "Transaction sync" || m.Status != StatusInProgress || m.Moscow != "must-have" {
		t.Errorf("projection = %+v", m)
	}
}

func TestFindByTitle_DefaultsStatus(t *testing.T) {
	items := []Item{{ID: "x", Title: "Legacy item"}}
	matches := FindByTitle(items, "legacy")
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Status != StatusNotStarted {
		t.Errorf("status = %s, want not-started", matches[0].Status)
	}
}

package application

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

func TestResetService_Reset(t *testing.T) {
	repo := newMemRepo(twoItemDoc())
	audit := &memAudit{}
	svc := NewResetService(repo, audit)

	if err := svc.Reset("New Project", "A fresh start"); err != nil {
		t.Fatalf("Reset error: %v", err)
	}

	saved, _ := repo.Load()
	if saved.ProjectName != "New Project" || saved.ProjectSummary != "A fresh start" {
		t.Errorf("metadata = %q / %q", saved.ProjectName, saved.ProjectSummary)
	}
	if len(saved.Items) != 0 {
		t.Errorf("items = %d, want 0", len(saved.Items))
	}
	if saved.LastUpdated.IsZero() {
		t.Error("lastUpdated not stamped")
	}
	if string(saved.TimeHorizons) == "" {
		t.Error("timeHorizons not preserved")
	}
	requireAction(t, audit, "roadmap.reset")
}

func TestResetService_RejectsBlankArguments(t *testing.T) {
	tests := []struct {
		name    string
		project string
		summary string
	}{
		{"blank name", "   ", "summary"},
		{"blank summary", "name", ""},
		{"whitespace summary", "name", "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemRepo(twoItemDoc())
			svc := NewResetService(repo, &memAudit{})

			err := svc.Reset(tt.project, tt.summary)
			if !errors.Is(err, roadmap.ErrEmptyField) {
				t.Fatalf("error = %v, want ErrEmptyField", err)
			}
			if repo.saves != 0 {
				t.Error("document saved despite rejected arguments")
			}
		})
	}
}

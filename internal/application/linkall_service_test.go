package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
)

func TestMatchItem(t *testing.T) {
	items := []roadmap.Item{
		{ID: idAlpha, Title: "Transaction sync"},
		{ID: idBeta, Title: "User Authentication", LinkedArtifacts: &roadmap.LinkedArtifacts{SpecSlug: "auth-spec"}},
		{ID: "c", Title: "Offline mode"},
	}

	tests := []struct {
		name      string
		slug      string
		roadmapID string
		wantID    string
		wantStage string
	}{
		{"embedded id wins over everything", "transaction-sync", idBeta, idBeta, stageRoadmapID},
		{"recorded specSlug", "auth-spec", "", idBeta, stageSpecSlug},
		{"exact title slug", "offline-mode", "", "c", stageTitleSlug},
		{"fuzzy containment", "offline-mode-v2", "", "c", stageFuzzy},
		{"fuzzy the other direction", "offline", "", "c", stageFuzzy},
		{"unknown id falls through to slug", "transaction-sync", "ffffffff-ffff-4fff-8fff-ffffffffffff", idAlpha, stageTitleSlug},
		{"no match", "billing-engine", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, stage := matchItem(items, tt.slug, tt.roadmapID)
			if tt.wantID == "" {
				if item != nil {
					t.Fatalf("matched %s, want no match", item.ID)
				}
				return
			}
			if item == nil {
				t.Fatal("no match")
			}
			if item.ID != tt.wantID || stage != tt.wantStage {
				t.Errorf("matched %s via %s, want %s via %s", item.ID, stage, tt.wantID, tt.wantStage)
			}
		})
	}
}

func TestMatchItem_EmptyTitleSlugNeverFuzzyMatches(t *testing.T) {
	items := []roadmap.Item{{ID: "x", Title: "???"}}
	if item, _ := matchItem(items, "anything", ""); item != nil {
		t.Errorf("matched %s against empty title slug", item.ID)
	}
}

func TestLinkService_LinkAll(t *testing.T) {
	root := t.TempDir()
	// Matched by title slug.
	writeSpecFile(t, root, "transaction-sync", FileIdeation, "# ideation")
	// Matched by embedded roadmap id despite the unrelated name.
	writeSpecFile(t, root, "renamed-later", FileSpecification,
		"---\nroadmapId: "+idBeta+"\n---\n# spec\n")
	// No owning item.
	writeSpecFile(t, root, "billing-engine", FileIdeation, "# orphan")
	// No recognized files at all; ignored entirely.
	if err := os.MkdirAll(filepath.Join(root, "specs", "empty-dir"), 0o755); err != nil {
		t.Fatal(err)
	}

	doc := twoItemDoc()
	doc.Items[1].ID = idBeta
	repo := newMemRepo(doc)
	audit := &memAudit{}
	svc := NewLinkService(repo, audit, root, "specs")

	report, err := svc.LinkAll(false)
	if err != nil {
		t.Fatalf("LinkAll error: %v", err)
	}

	if report.Linked != 2 || report.Skipped != 0 || report.Unmatched != 1 {
		t.Errorf("report = %d linked / %d skipped / %d unmatched, want 2/0/1",
			report.Linked, report.Skipped, report.Unmatched)
	}
	if len(report.Entries) != 3 {
		t.Fatalf("entries = %d, want 3 (empty dir must be ignored)", len(report.Entries))
	}
	if !report.Saved {
		t.Error("report.Saved = false after links were made")
	}

	saved, _ := repo.Load()
	if la := saved.Item("item-a").LinkedArtifacts; la == nil || la.SpecSlug != "transaction-sync" {
		t.Errorf("item-a artifacts = %+v", la)
	}
	if la := saved.Item(idBeta).LinkedArtifacts; la == nil || la.SpecSlug != "renamed-later" {
		t.Errorf("%s artifacts = %+v", idBeta, la)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want exactly 1", repo.saves)
	}
	requireAction(t, audit, "item.link-all")
}

func TestLinkService_LinkAllDryRun(t *testing.T) {
	root := t.TempDir()
	writeSpecFile(t, root, "transaction-sync", FileIdeation, "# ideation")

	repo := newMemRepo(twoItemDoc())
	svc := NewLinkService(repo, &memAudit{}, root, "specs")

	report, err := svc.LinkAll(true)
	if err != nil {
		t.Fatalf("LinkAll error: %v", err)
	}
	if report.Linked != 1 {
		t.Errorf("linked = %d, want 1", report.Linked)
	}
	if report.Saved || repo.saves != 0 {
		t.Error("dry run wrote the document")
	}

	saved, _ := repo.Load()
	if saved.Item("item-a").LinkedArtifacts != nil {
		t.Error("dry run mutated linkedArtifacts")
	}
}

func TestLinkService_LinkAllSkipsAlreadyLinked(t *testing.T) {
	root := t.TempDir()
	writeSpecFile(t, root, "transaction-sync", FileIdeation, "# ideation")

	doc := twoItemDoc()
	doc.Items[0].LinkedArtifacts = &roadmap.LinkedArtifacts{
		SpecSlug:     "transaction-sync",
		IdeationPath: "specs/transaction-sync/01-ideation.md",
	}
	repo := newMemRepo(doc)
	svc := NewLinkService(repo, &memAudit{}, root, "specs")

	report, err := svc.LinkAll(false)
	if err != nil {
		t.Fatalf("LinkAll error: %v", err)
	}
	if report.Skipped != 1 || report.Linked != 0 {
		t.Errorf("report = %d linked / %d skipped, want 0/1", report.Linked, report.Skipped)
	}
	if repo.saves != 0 {
		t.Error("nothing changed but the document was saved")
	}
}

func TestLinkService_LinkAllMissingSpecsDir(t *testing.T) {
	svc := NewLinkService(newMemRepo(twoItemDoc()), &memAudit{}, t.TempDir(), "specs")
	if _, err := svc.LinkAll(false); err == nil {
		t.Fatal("expected error for missing specs directory")
	}
}

// Package wiring assembles the repository and services for one invocation.
package wiring

import (
	"context"
	"path/filepath"

	"github.com/felixgeelhaar/roadmapctl/internal/application"
	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/config"
	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/storage"
	"github.com/felixgeelhaar/roadmapctl/internal/infrastructure/workspace"
)

// Workspace bundles the resolved project root, configuration, repository,
// and one service per operation. Every command builds a fresh workspace;
// nothing is cached across invocations.
type Workspace struct {
	Root   string
	Config *config.Config
	Repo   *storage.FilesystemRepository

	Audit    *application.AuditService
	Status   *application.StatusService
	Workflow *application.WorkflowService
	Link     *application.LinkService
	Reset    *application.ResetService
	Query    *application.QueryService
	Validate *application.ValidateService
}

// NewWorkspace resolves the project root and wires up the services.
func NewWorkspace(ctx context.Context) (*Workspace, error) {
	root := workspace.Resolve(ctx)

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	repo := storage.NewFilesystemRepository(root, cfg.RoadmapFile)
	events := storage.NewFileEventLog(filepath.Join(root, filepath.FromSlash(cfg.EventLog)))
	audit := application.NewAuditService(events)

	return &Workspace{
		Root:     root,
		Config:   cfg,
		Repo:     repo,
		Audit:    audit,
		Status:   application.NewStatusService(repo, audit),
		Workflow: application.NewWorkflowService(repo, audit),
		Link:     application.NewLinkService(repo, audit, root, cfg.SpecsDir),
		Reset:    application.NewResetService(repo, audit),
		Query:    application.NewQueryService(repo),
		Validate: application.NewValidateService(repo),
	}, nil
}

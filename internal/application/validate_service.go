package application

import (
	"fmt"

	"github.com/felixgeelhaar/roadmapctl/internal/domain"
	"github.com/felixgeelhaar/roadmapctl/internal/domain/roadmap"
	"github.com/xeipuuv/gojsonschema"
)

const documentSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["projectName", "items"],
  "properties": {
    "projectName": { "type": "string" },
    "projectSummary": { "type": "string" },
    "lastUpdated": { "type": "string" },
    "timeHorizons": {},
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "status"],
        "properties": {
          "id": { "type": "string", "minLength": 1 },
          "title": { "type": "string" },
          "status": { "enum": ["not-started", "in-progress", "completed", "on-hold"] },
          "moscow": { "type": "string" },
          "updatedAt": { "type": "string" },
          "workflowState": { "type": "object" },
          "linkedArtifacts": {
            "type": "object",
            "properties": {
              "specSlug": { "type": "string" },
              "ideationPath": { "type": "string" },
              "specPath": { "type": "string" },
              "tasksPath": { "type": "string" },
              "implementationPath": { "type": "string" }
            }
          }
        }
      }
    }
  }
}`

var documentSchemaLoader = gojsonschema.NewStringLoader(documentSchemaJSON)

// ValidateService checks the on-disk document against the roadmap schema.
type ValidateService struct {
	repo domain.DocumentRepository
}

func NewValidateService(repo domain.DocumentRepository) *ValidateService {
	return &ValidateService{repo: repo}
}

// Validate returns one description per schema violation. An empty slice
// means the document is well-formed.
func (s *ValidateService) Validate() ([]string, error) {
	raw, err := s.repo.LoadRaw()
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(documentSchemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", roadmap.ErrDocumentParse, err)
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return problems, nil
}

package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"visa-eligibility-engine/internal/models"
)

// Document is the JSON shape of an externally stored catalog.
type Document struct {
	Version string               `json:"version"`
	Entries []models.VisaProfile `json:"entries"`
}

// documentSchema guards catalogs coming from files, S3 or the database.
const documentSchema = `{
  "type": "object",
  "required": ["version", "entries"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "entries": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["code", "title", "difficulty", "type", "base_score", "base_location", "convertible", "requirements", "fit"],
        "properties": {
          "code": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "difficulty": {"enum": ["Easy", "Moderate", "Hard"]},
          "type": {"enum": ["main", "alternative", "premium", "additional"]},
          "base_score": {"type": "number"},
          "pay_to_stay": {"type": "boolean"},
          "base_location": {"enum": ["inside", "outside", "any"]},
          "convertible": {"type": "boolean"},
          "tourist": {"type": "boolean"},
          "excluded": {"type": "boolean"},
          "requirements": {
            "type": "object",
            "properties": {
              "min_age": {"type": "integer", "minimum": 0},
              "max_age": {"type": "integer", "minimum": 0},
              "min_savings": {"type": "number", "minimum": 0},
              "min_income": {"type": "number", "minimum": 0},
              "requires_local_spouse": {"type": "boolean"},
              "requires_local_child": {"type": "boolean"}
            }
          },
          "fit": {
            "type": "object",
            "required": ["primary_purposes", "duration_tiers", "budget_tier"],
            "properties": {
              "primary_purposes": {"type": "array", "items": {"type": "string"}},
              "secondary_purposes": {"type": "array", "items": {"type": "string"}},
              "duration_tiers": {"type": "array", "items": {"enum": ["short", "medium", "long", "extended"]}},
              "budget_tier": {"enum": ["low", "medium", "high", "premium"]},
              "creative_angles": {"type": "array", "items": {"type": "string"}},
              "reason": {"type": "string"},
              "tradeoff": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

// Parse validates a catalog document and builds a Catalog from it.
func Parse(data []byte) (*Catalog, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(errs, "; "))
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	return New(doc.Entries)
}

// Marshal encodes a catalog as a versioned document.
func Marshal(c *Catalog, version string) ([]byte, error) {
	return json.MarshalIndent(Document{Version: version, Entries: c.Entries()}, "", "  ")
}

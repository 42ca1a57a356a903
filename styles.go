package docx

import (
	"github.com/wordengine/docflow/domain"
	"github.com/wordengine/docflow/internal/stylecascade"
)

// NewParagraphStyle creates a custom paragraph style that can be registered with a document style manager.
func NewParagraphStyle(styleID, name string) domain.ParagraphStyle {
	return stylecascade.NewParagraphStyle(styleID, name)
}

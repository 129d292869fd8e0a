// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// CategorySuggestionRequest describes a ledger entry that needs a category.
type CategorySuggestionRequest struct {
	Description string
	Amount      string
	Type        string
	Categories  []CategoryForAI
}

// CategoryForAI represents category data sent to the model.
type CategoryForAI struct {
	ID                string
	Name              string
	Type              string
	DREClassification string
}

// CategorySuggestion is the model's answer.
// CategoryID is empty when the model proposes a new category.
type CategorySuggestion struct {
	CategoryID        string
	NewCategoryName   string
	DREClassification string
	Confidence        float64
	Reasoning         string
}

// CategorySuggester defines the interface for AI category suggestions.
type CategorySuggester interface {
	// Suggest proposes a category for the described entry.
	Suggest(ctx context.Context, request CategorySuggestionRequest) (*CategorySuggestion, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}

package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
	domainerror "github.com/bcrezende/erp-rezendetech-sub000/internal/domain/error"
)

// SuggestCategoryInput describes the entry that needs a category.
type SuggestCategoryInput struct {
	Session     entity.Session
	Description string
	Amount      decimal.Decimal
	Type        entity.EntryType
}

// SuggestCategoryUseCase asks the AI service which category fits an entry.
type SuggestCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
	suggester    adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(categoryRepo adapter.CategoryRepository, suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		categoryRepo: categoryRepo,
		suggester:    suggester,
	}
}

// Execute returns the suggestion.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*adapter.CategorySuggestion, error) {
	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSuggestionUnavailable,
			"category suggestion is not configured",
			domainerror.ErrSuggestionUnavailable,
		)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" || !input.Type.IsValid() {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"description and a valid type are required",
			nil,
		)
	}

	categoryType := entity.CategoryType(input.Type)
	categories, err := uc.categoryRepo.FindByCompany(ctx, input.Session.CompanyID, &categoryType)
	if err != nil {
		return nil, domainerror.NewCategoryError(domainerror.ErrCodeCategoryInternalError, "failed to load categories", err)
	}

	request := adapter.CategorySuggestionRequest{
		Description: description,
		Amount:      input.Amount.StringFixed(2),
		Type:        string(input.Type),
		Categories:  make([]adapter.CategoryForAI, 0, len(categories)),
	}
	for _, c := range categories {
		request.Categories = append(request.Categories, adapter.CategoryForAI{
			ID:                c.ID.String(),
			Name:              c.Name,
			Type:              string(c.Type),
			DREClassification: string(c.Classification()),
		})
	}

	suggestion, err := uc.suggester.Suggest(ctx, request)
	if err != nil {
		slog.Warn("Category suggestion failed", "company_id", input.Session.CompanyID, "error", err)
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeSuggestionFailed,
			"could not get a suggestion, try again later",
			err,
		)
	}
	return suggestion, nil
}

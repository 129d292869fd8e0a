package adapters

import (
	"strings"
	"testing"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
)

func suggestionRequest() adapter.CategorySuggestionRequest {
	return adapter.CategorySuggestionRequest{
		Description: "Conta de luz",
		Amount:      "R$350,00",
		Type:        "expense",
		Categories: []adapter.CategoryForAI{
			{ID: "c-rent", Name: "Aluguel", Type: "expense", DREClassification: "custo_fixo"},
			{ID: "c-sales", Name: "Vendas", Type: "revenue"},
		},
	}
}

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name               string
		text               string
		wantErr            bool
		wantCategoryID     string
		wantNewName        string
		wantClassification string
		wantConfidence     float64
	}{
		{
			name:               "existing category keeps its classification",
			text:               `{"category_id":"c-rent","dre_classification":"custo_variavel","confidence":0.9}`,
			wantCategoryID:     "c-rent",
			wantClassification: "custo_fixo",
			wantConfidence:     0.9,
		},
		{
			name:               "new category inside a markdown fence",
			text:               "```json\n{\"new_category_name\":\" Energia \",\"dre_classification\":\"custo_fixo\",\"confidence\":1.7}\n```",
			wantNewName:        "Energia",
			wantClassification: "custo_fixo",
			wantConfidence:     1,
		},
		{
			name:           "category of another type is ignored",
			text:           `{"category_id":"c-sales","new_category_name":"Utilidades","dre_classification":"bogus"}`,
			wantNewName:    "Utilidades",
			wantConfidence: 0,
		},
		{
			name:    "nothing usable",
			text:    `{"category_id":"unknown"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			text:    "sorry",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestion(tt.text, suggestionRequest())
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.CategoryID != tt.wantCategoryID {
				t.Errorf("category id = %q, want %q", got.CategoryID, tt.wantCategoryID)
			}
			if got.NewCategoryName != tt.wantNewName {
				t.Errorf("new name = %q, want %q", got.NewCategoryName, tt.wantNewName)
			}
			if got.DREClassification != tt.wantClassification {
				t.Errorf("classification = %q, want %q", got.DREClassification, tt.wantClassification)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestBuildSuggestionPrompt(t *testing.T) {
	prompt := buildSuggestionPrompt(suggestionRequest())

	for _, want := range []string{"ID: c-rent, Nome: Aluguel", `"Conta de luz"`, "custo_variavel"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	svc := NewPasswordService()

	tests := []struct {
		password string
		wantErr  bool
	}{
		{"short1", true},
		{"onlyletters", true},
		{"12345678", true},
		{"senha123", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := svc.ValidatePasswordStrength(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePasswordStrength(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

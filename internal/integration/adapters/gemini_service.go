package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/bcrezende/erp-rezendetech-sub000/internal/application/adapter"
	"github.com/bcrezende/erp-rezendetech-sub000/internal/domain/entity"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiService implements adapter.CategorySuggester using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks Gemini for the category of a ledger entry.
func (s *GeminiService) Suggest(ctx context.Context, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildSuggestionPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	suggestion, err := parseSuggestion(text, request)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return suggestion, nil
}

func buildSuggestionPrompt(request adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`Voce e um contador que classifica lancamentos de pequenas empresas brasileiras para a DRE.

Escolha a categoria mais adequada para o lancamento abaixo. Prefira uma categoria existente do mesmo tipo.
Quando nenhuma servir, proponha um nome curto em Portugues para uma nova categoria.

Para despesas informe tambem a classificacao DRE:
- despesa_operacional: gastos do dia a dia (marketing, material de escritorio, taxas)
- custo_fixo: nao varia com as vendas (aluguel, salarios, contador)
- custo_variavel: varia com as vendas (materia-prima, comissoes, frete)
Receitas nao tem classificacao.

CATEGORIAS EXISTENTES:
`)

	if len(request.Categories) == 0 {
		sb.WriteString("(Nenhuma categoria existente)\n")
	}
	for _, c := range request.Categories {
		fmt.Fprintf(&sb, "- ID: %s, Nome: %s, Tipo: %s, Classificacao: %s\n", c.ID, c.Name, c.Type, c.DREClassification)
	}

	fmt.Fprintf(&sb, "\nLANCAMENTO:\n- Descricao: %q, Valor: %s, Tipo: %s\n", request.Description, request.Amount, request.Type)

	sb.WriteString(`
Responda apenas com um objeto JSON:
{
  "category_id": "uuid da categoria existente ou vazio",
  "new_category_name": "nome da nova categoria ou vazio",
  "dre_classification": "despesa_operacional | custo_fixo | custo_variavel | vazio",
  "confidence": 0.0-1.0,
  "reasoning": "breve explicacao em Portugues"
}
`)

	return sb.String()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

type geminiSuggestion struct {
	CategoryID        string  `json:"category_id"`
	NewCategoryName   string  `json:"new_category_name"`
	DREClassification string  `json:"dre_classification"`
	Confidence        float64 `json:"confidence"`
	Reasoning         string  `json:"reasoning"`
}

// parseSuggestion decodes the model answer and drops anything that does not
// fit the request: unknown category IDs, classifications on revenue and
// invalid classification values.
func parseSuggestion(text string, request adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	suggestion := &adapter.CategorySuggestion{
		Confidence: clampConfidence(raw.Confidence),
		Reasoning:  raw.Reasoning,
	}

	for _, c := range request.Categories {
		if c.ID == raw.CategoryID && c.Type == request.Type {
			suggestion.CategoryID = c.ID
			suggestion.DREClassification = c.DREClassification
			return suggestion, nil
		}
	}

	suggestion.NewCategoryName = strings.TrimSpace(raw.NewCategoryName)
	if suggestion.NewCategoryName == "" {
		return nil, fmt.Errorf("model returned neither a known category nor a new name")
	}
	classification := entity.DREClassification(raw.DREClassification)
	if request.Type == string(entity.CategoryTypeExpense) && classification.IsValid() {
		suggestion.DREClassification = string(classification)
	}
	return suggestion, nil
}

func clampConfidence(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	default:
		return c
	}
}

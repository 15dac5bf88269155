package llm

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// GeminiProvider targets the generateContent endpoint of the Gemini API.
// The credential travels as a query-string key, which is how that API
// authenticates simple server-side callers.
type GeminiProvider struct {
	endpoint string
	apiKey   string
}

func NewGeminiProvider(endpoint, apiKey string) *GeminiProvider {
	return &GeminiProvider{endpoint: endpoint, apiKey: apiKey}
}

func (p *GeminiProvider) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}
type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}
type geminiSchemaField struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}
type geminiSchema struct {
	Type       string                       `json:"type"`
	Properties map[string]geminiSchemaField `json:"properties"`
}
type geminiGenerationConfig struct {
	ResponseMIMEType string       `json:"responseMimeType"`
	ResponseSchema   geminiSchema `json:"responseSchema"`
}
type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction geminiContent          `json:"systemInstruction"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

func (p *GeminiProvider) Request(inst Instruction) (string, map[string]string, any) {
	body := geminiRequest{
		Contents:          []geminiContent{{Parts: []geminiPart{{Text: inst.User}}}},
		SystemInstruction: geminiContent{Parts: []geminiPart{{Text: inst.System}}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: geminiSchema{
				Type: "OBJECT",
				Properties: map[string]geminiSchemaField{
					"reply":      {Type: "STRING", Description: "The friendly and detailed response to the user."},
					"product_id": {Type: inst.ProductIDType, Description: "The ID of the most relevant product from the list."},
				},
			},
		},
	}
	return fmt.Sprintf("%s?key=%s", p.endpoint, p.apiKey), nil, body
}

// ExtractText reads candidates[0].content.parts[0].text, the field the
// Gemini API documents as the model output.
func (p *GeminiProvider) ExtractText(raw []byte) (string, error) {
	text := gjson.GetBytes(raw, "candidates.0.content.parts.0.text")
	if !text.Exists() || text.String() == "" {
		return "", ErrNoTextContent
	}
	return text.String(), nil
}

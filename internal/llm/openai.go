package llm

import "github.com/tidwall/gjson"

// OpenAIProvider targets any chat-completions compatible endpoint (OpenAI,
// Groq, local gateways). The declared schema rides in the system text here;
// json_object mode only guarantees the reply is a JSON object.
type OpenAIProvider struct {
	endpoint string
	apiKey   string
	model    string
}

func NewOpenAIProvider(endpoint, apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{endpoint: endpoint, apiKey: apiKey, model: model}
}

func (p *OpenAIProvider) Name() string { return "openai" }

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type openAIRequest struct {
	Model          string            `json:"model"`
	Messages       []openAIMessage   `json:"messages"`
	Temperature    float32           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

func (p *OpenAIProvider) Request(inst Instruction) (string, map[string]string, any) {
	body := openAIRequest{
		Model: p.model,
		Messages: []openAIMessage{
			{Role: "system", Content: inst.System},
			{Role: "user", Content: inst.User},
		},
		Temperature:    0,
		ResponseFormat: map[string]string{"type": "json_object"},
	}
	headers := map[string]string{"Authorization": "Bearer " + p.apiKey}
	return p.endpoint, headers, body
}

// ExtractText reads choices[0].message.content.
func (p *OpenAIProvider) ExtractText(raw []byte) (string, error) {
	text := gjson.GetBytes(raw, "choices.0.message.content")
	if !text.Exists() || text.String() == "" {
		return "", ErrNoTextContent
	}
	return text.String(), nil
}

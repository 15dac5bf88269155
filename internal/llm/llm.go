package llm

import "errors"

var (
	// ErrUpstreamUnavailable means every attempt against the upstream API
	// failed. The message carries the last underlying cause for the logs.
	ErrUpstreamUnavailable = errors.New("llm: upstream unavailable")

	// ErrNoTextContent means the upstream answered 2xx but the envelope has
	// no generated text where the provider documents it.
	ErrNoTextContent = errors.New("llm: no text content in upstream response")
)

// Instruction is a fully rendered generation request: the system text with
// the task rules baked in, the user turn, and the declared output shape.
// It is built once per chat message and never mutated.
type Instruction struct {
	System string
	User   string

	// ProductIDType is the schema type of the product_id output field,
	// "NUMBER" or "STRING", matching the catalog id kind.
	ProductIDType string
}

// Provider adapts one upstream API: how a request is shaped and where the
// generated text lives in the response envelope. The rest of the pipeline
// never sees provider-specific JSON.
type Provider interface {
	Name() string

	// Request returns the target URL, extra headers and the JSON body for
	// one completion attempt.
	Request(inst Instruction) (url string, headers map[string]string, body any)

	// ExtractText pulls the generated text out of a raw 2xx response body.
	// Returns ErrNoTextContent when the envelope has none.
	ExtractText(raw []byte) (string, error)
}

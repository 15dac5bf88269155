package chat

import (
	"context"
	"log"
	"math/rand"
	"strings"

	"github.com/poopky/chat-backend/internal/catalog"
	"github.com/poopky/chat-backend/internal/llm"
)

// Completer is the upstream side of the pipeline: one completion round trip
// (retries included) plus the provider's envelope normalization.
// *llm.Client satisfies it; tests substitute a fake.
type Completer interface {
	Complete(ctx context.Context, inst llm.Instruction) ([]byte, error)
	ExtractText(raw []byte) (string, error)
}

// Service runs a widget message through the recommendation pipeline: build
// the instruction, request a completion, validate the output, resolve the
// recommended product. Requests are independent; the only shared state is
// the read-only catalog.
type Service struct {
	catalog *catalog.Catalog
	llm     Completer
	pick    func(int) int
}

func NewService(cat *catalog.Catalog, completer Completer) *Service {
	return &Service{catalog: cat, llm: completer, pick: rand.Intn}
}

// Recommend turns one user message into a reply and a recommended product.
// Failures come back as ErrEmptyMessage, llm.ErrUpstreamUnavailable, or one
// of the malformed-output errors; the handler maps them to safe responses.
func (s *Service) Recommend(ctx context.Context, message string) (Result, error) {
	if strings.TrimSpace(message) == "" {
		return Result{}, ErrEmptyMessage
	}

	inst := buildInstruction(s.catalog, message)

	raw, err := s.llm.Complete(ctx, inst)
	if err != nil {
		return Result{}, err
	}

	text, err := s.llm.ExtractText(raw)
	if err != nil {
		// Keep the full payload in the server log for diagnosis.
		log.Printf("chat: upstream payload had no text content: %s", raw)
		return Result{}, err
	}

	rec, err := parseCompletion(text, s.catalog.Kind())
	if err != nil {
		log.Printf("chat: model output rejected: %v", err)
		return Result{}, err
	}

	return resolve(rec, s.catalog, s.pick), nil
}

package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestGeminiRequestShape(t *testing.T) {
	p := NewGeminiProvider("https://example.invalid/v1beta/models/x:generateContent", "k")
	url, headers, body := p.Request(Instruction{System: "sys", User: "usr", ProductIDType: "NUMBER"})

	if !strings.HasSuffix(url, "?key=k") {
		t.Fatalf("expected query-string key auth, got %q", url)
	}
	if len(headers) != 0 {
		t.Fatalf("gemini needs no auth header, got %v", headers)
	}

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(b)
	for _, want := range []string{
		`"systemInstruction":{"parts":[{"text":"sys"}]}`,
		`"text":"usr"`,
		`"responseMimeType":"application/json"`,
		`"type":"NUMBER"`,
		`"type":"STRING"`,
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("request body missing %q: %s", want, s)
		}
	}
}

func TestGeminiExtractText(t *testing.T) {
	p := NewGeminiProvider("u", "k")

	text, err := p.ExtractText([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if text != "hello" {
		t.Fatalf("unexpected text %q", text)
	}

	for _, raw := range []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{"content":{"parts":[]}}]}`,
		`{"candidates":[{"content":{"parts":[{"text":""}]}}]}`,
	} {
		if _, err := p.ExtractText([]byte(raw)); !errors.Is(err, ErrNoTextContent) {
			t.Fatalf("expected ErrNoTextContent for %s, got %v", raw, err)
		}
	}
}

func TestOpenAIRequestShape(t *testing.T) {
	p := NewOpenAIProvider("https://example.invalid/v1/chat/completions", "k", "gpt-4o-mini")
	url, headers, body := p.Request(Instruction{System: "sys", User: "usr", ProductIDType: "NUMBER"})

	if url != "https://example.invalid/v1/chat/completions" {
		t.Fatalf("unexpected url %q", url)
	}
	if headers["Authorization"] != "Bearer k" {
		t.Fatalf("expected bearer auth, got %v", headers)
	}

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	s := string(b)
	for _, want := range []string{
		`"model":"gpt-4o-mini"`,
		`"role":"system"`,
		`"role":"user"`,
		`"response_format":{"type":"json_object"}`,
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("request body missing %q: %s", want, s)
		}
	}
}

func TestOpenAIExtractText(t *testing.T) {
	p := NewOpenAIProvider("u", "k", "m")

	text, err := p.ExtractText([]byte(`{"choices":[{"message":{"content":"hi"}}]}`))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if text != "hi" {
		t.Fatalf("unexpected text %q", text)
	}

	if _, err := p.ExtractText([]byte(`{"choices":[]}`)); !errors.Is(err, ErrNoTextContent) {
		t.Fatalf("expected ErrNoTextContent, got %v", err)
	}
}

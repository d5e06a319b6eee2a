package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {

	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func NewRawJSONRequest(method string, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

// CompleterMock answers every prompt with Response or Err and records the
// prompts it saw.
type CompleterMock struct {
	Response string
	// Responses, when set, are answered in order and the last one repeats.
	Responses []string
	Err       error
	// Delay holds each answer back unless the caller's context ends first.
	Delay time.Duration

	mu      sync.Mutex
	prompts []string
}

func (m *CompleterMock) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	call := len(m.prompts)
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) > 0 {
		return m.Responses[min(call, len(m.Responses))-1], nil
	}
	return m.Response, nil
}

func (m *CompleterMock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

func (m *CompleterMock) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// BlockingCompleter waits for the request context to end.
type BlockingCompleter struct{}

func (BlockingCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

// OutfitsJSON is a model answer wrapped in prose, the way chat models tend to
// reply.
const OutfitsJSON = "Sure! Here are some ideas:\n```json\n" + `{
  "outfits": [
    {
      "id": 1,
      "name": "Boardroom Ready",
      "items": [
        {"name": "Silk Blouse", "category": "blouse", "color": "ivory", "price": 80},
        {"name": "Tailored Blazer", "category": "blazer", "color": "charcoal", "price": "120.50"},
        {"name": "Pointed Pumps", "category": "heels", "color": "black"}
      ],
      "total_price": 1,
      "description": "Sharp and modern",
      "occasion_fit": "Confident for presentations"
    },
    {
      "id": 2,
      "name": "Friday Smart",
      "items": [
        {"name": "Knit Polo", "category": "top", "color": "navy", "price": 45.25},
        {"name": "Chinos", "category": "pants", "color": "khaki", "price": 60}
      ],
      "description": "Relaxed but polished"
    }
  ]
}` + "\n```\nHope this helps."

const CapsuleJSON = `Here is your capsule: {
  "theme": "Minimalist",
  "wardrobe_items": [
    {"id": 1, "name": "Crisp White Tee", "category": "t-shirt", "color": "white", "versatility_score": 10, "essential_reason": "Base layer"},
    {"id": 2, "name": "Wide Leg Trousers", "category": "trousers", "color": "black", "price": 95},
    {"id": 3, "name": "Camel Coat", "category": "coat", "color": "camel", "price": 240.5},
    {"id": 4, "name": "Loafers", "category": "footwear", "color": "black", "price": 130}
  ],
  "outfits": [
    {"id": 1, "name": "Gallery Day", "items": [1, 2, 4], "description": "Quiet and sharp", "occasions": ["museum", "lunch"]},
    {"id": 2, "name": "Cold Commute", "items": [1, 2, 3, 4], "description": "Layered for winter"}
  ],
  "styling_tips": ["Keep the palette tight", "Tailoring matters"]
}`

// CapsuleJSONUnknownItem references an item the capsule does not contain.
const CapsuleJSONUnknownItem = `{
  "theme": "Minimalist",
  "wardrobe_items": [
    {"id": 1, "name": "Crisp White Tee", "category": "top", "color": "white"}
  ],
  "outfits": [
    {"id": 1, "name": "Broken", "items": [1, 7], "description": "References a missing item"}
  ]
}`

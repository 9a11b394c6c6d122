package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for the MockProvider. Zero-valued
// Model and StopReason default to "mock" and "end" so a test scripting a
// happy-path extraction only has to supply the profile payload.
type MockResponse struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
	Err        error
}

// MockProvider replays scripted responses in order and records every
// request it sees. Extraction tests script it with candidate-profile
// payloads and then assert on the recorded prompts and schema.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider preloaded with responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate pops the next scripted response. An exhausted script returns
// ErrProviderUnavailable, which reads as an outage to retry middleware;
// tests that expect N calls script exactly N responses.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	next := m.responses[0]
	m.responses = m.responses[1:]

	if next.Err != nil {
		return nil, next.Err
	}

	model := next.Model
	if model == "" {
		model = "mock"
	}
	stop := next.StopReason
	if stop == "" {
		stop = "end"
	}

	return &Response{
		Content:    next.Content,
		Usage:      next.Usage,
		Model:      model,
		StopReason: stop,
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends another scripted response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns how many Generate calls were recorded.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

package openai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/lectern/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// fakeModel is a scripted llms.Model for exercising the retry policy.
type fakeModel struct {
	response  *llms.ContentResponse
	err       error
	callCount int
}

var _ llms.Model = (*fakeModel)(nil)

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.callCount++
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func testConfig() *ai.Config {
	cfg := ai.DefaultConfig()
	cfg.MaxRetries = 3
	cfg.RequestTimeout = time.Second
	return cfg
}

func TestExpandQuery_ParsesKeywords(t *testing.T) {
	model := &fakeModel{
		response: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{
				{Content: "machine learning, neural networks , deep learning,, statistics"},
			},
		},
	}
	expander := newKeywordExpanderWithClient(model, testConfig())

	keywords, err := expander.ExpandQuery(context.Background(), "machine learning")
	require.NoError(t, err)
	assert.Equal(t, []string{"machine learning", "neural networks", "deep learning", "statistics"}, keywords)
	assert.Equal(t, 1, model.callCount)
}

func TestExpandQuery_MalformedContentRetriesBounded(t *testing.T) {
	// A completion with no parseable keywords is retried, and the
	// expander gives up after MaxRetries+1 requests.
	model := &fakeModel{
		response: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{{Content: "   , ,  "}},
		},
	}
	cfg := testConfig()
	expander := newKeywordExpanderWithClient(model, cfg)

	keywords, err := expander.ExpandQuery(context.Background(), "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrMalformedResponse)
	assert.NotNil(t, keywords)
	assert.Empty(t, keywords)
	assert.Equal(t, cfg.MaxRetries+1, model.callCount)
}

func TestExpandQuery_EmptyChoicesRetriesBounded(t *testing.T) {
	model := &fakeModel{response: &llms.ContentResponse{Choices: nil}}
	cfg := testConfig()
	expander := newKeywordExpanderWithClient(model, cfg)

	keywords, err := expander.ExpandQuery(context.Background(), "anything")
	assert.ErrorIs(t, err, ai.ErrMalformedResponse)
	assert.Empty(t, keywords)
	assert.Equal(t, cfg.MaxRetries+1, model.callCount)
}

func TestExpandQuery_TransportErrorNotRetried(t *testing.T) {
	model := &fakeModel{err: errors.New("connection refused")}
	expander := newKeywordExpanderWithClient(model, testConfig())

	keywords, err := expander.ExpandQuery(context.Background(), "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrExternalService)
	assert.NotNil(t, keywords)
	assert.Empty(t, keywords)
	assert.Equal(t, 1, model.callCount)
}

func TestExpandQuery_ZeroRetryBudget(t *testing.T) {
	model := &fakeModel{response: &llms.ContentResponse{Choices: nil}}
	cfg := testConfig()
	cfg.MaxRetries = 0
	expander := newKeywordExpanderWithClient(model, cfg)

	_, err := expander.ExpandQuery(context.Background(), "anything")
	assert.ErrorIs(t, err, ai.ErrMalformedResponse)
	assert.Equal(t, 1, model.callCount)
}

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		want       []string
	}{
		{
			name:       "plain list",
			completion: "alpha,beta,gamma",
			want:       []string{"alpha", "beta", "gamma"},
		},
		{
			name:       "whitespace and empties",
			completion: " alpha , ,beta,",
			want:       []string{"alpha", "beta"},
		},
		{
			name:       "single keyword no comma",
			completion: "alpha",
			want:       []string{"alpha"},
		},
		{
			name:       "only separators",
			completion: ", ,,",
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitKeywords(tt.completion))
		})
	}
}

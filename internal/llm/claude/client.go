// Package claude implements triage.Classifier against the Anthropic
// Messages API. One bounded request per classification, no retries: the
// caller's latency budget is the enclosing HTTP request, and the rule-based
// fallback makes a second attempt pointless.
package claude

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/linnemanlabs/lifeline/internal/triage"
)

const (
	// DefaultTimeout bounds a single classification request. It must stay
	// well under the enclosing HTTP request's budget so a hung backend
	// degrades to the fallback instead of a slow error page.
	DefaultTimeout = 3 * time.Second

	responseTokens = 16
)

const systemPrompt = `You are an emergency triage classifier.
Given a patient's symptom description, respond with exactly one of these three words and nothing else:
Critical
Urgent
Non-Urgent`

// Client classifies symptom text via the Claude API.
type Client struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
}

// Option customizes a Client.
type Option func(*Client, *[]option.RequestOption)

// WithTimeout overrides the per-request classification timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client, _ *[]option.RequestOption) {
		c.timeout = d
	}
}

// WithBaseURL points the client at an alternate API endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(_ *Client, reqOpts *[]option.RequestOption) {
		*reqOpts = append(*reqOpts, option.WithBaseURL(url))
	}
}

// New creates a Claude classifier client with the given API key and model.
func New(apiKey, model string, opts ...Option) *Client {
	c := &Client{
		model:   model,
		timeout: DefaultTimeout,
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		// at-most-one network attempt per classification
		option.WithMaxRetries(0),
	}
	for _, opt := range opts {
		opt(c, &reqOpts)
	}

	c.client = anthropic.NewClient(reqOpts...)
	return c
}

// Classify sends one bounded request to the Claude API and parses the
// response into a triage level. Every failure mode - transport error,
// timeout, API error, or a response that is not exactly one of the three
// levels - is surfaced as triage.ErrClassifierUnavailable so the engine
// can treat them uniformly. A response arriving after the timeout is
// abandoned by context cancellation, never applied.
func (c *Client) Classify(ctx context.Context, symptoms string) (triage.Level, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: responseTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(symptoms)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", triage.ErrClassifierUnavailable, err)
	}

	text := ""
	for _, block := range msg.Content {
		if block.Type == "text" {
			text = block.Text
			break
		}
	}

	level, ok := triage.ParseLevel(text)
	if !ok {
		return "", fmt.Errorf("%w: unrecognized level %q", triage.ErrClassifierUnavailable, text)
	}
	return level, nil
}

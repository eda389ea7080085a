// Package rephrase rewrites text in one of the catalog styles using an LLM.
package rephrase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/rephrase-master/internal/llm"
	"github.com/jonathan/rephrase-master/internal/prompts"
	"github.com/jonathan/rephrase-master/internal/styles"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const promptFile = "rephrase.json"

const (
	// DefaultCacheTTL is how long a rephrased result is reused for identical input.
	DefaultCacheTTL = 30 * time.Minute
	// DefaultConcurrency caps parallel LLM calls in RephraseMany.
	DefaultConcurrency = 4
	// MaxInputChars bounds the text accepted for one call.
	MaxInputChars = 2000
)

// Result is one style's rephrasing of the input.
type Result struct {
	Style styles.Style `json:"style"`
	Text  string       `json:"result"`
}

// Options configures a Service. Zero values select defaults.
type Options struct {
	CacheTTL    time.Duration
	Concurrency int
	Tier        llm.ModelTier
	Logger      logrus.FieldLogger
}

// Service rephrases text through an llm.Client with an in-memory result cache.
type Service struct {
	client      llm.Client
	cache       *cache.Cache
	concurrency int
	tier        llm.ModelTier
	logger      logrus.FieldLogger
}

// NewService creates a Service around client.
func NewService(client llm.Client, opts Options) *Service {
	if opts.CacheTTL == 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Tier == "" {
		opts.Tier = llm.TierStandard
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	return &Service{
		client:      client,
		cache:       cache.New(opts.CacheTTL, 2*opts.CacheTTL),
		concurrency: opts.Concurrency,
		tier:        opts.Tier,
		logger:      opts.Logger,
	}
}

// Rephrase rewrites text in style. Unknown styles are rejected.
func (s *Service) Rephrase(ctx context.Context, text string, style styles.Style) (string, error) {
	text, err := normalizeInput(text)
	if err != nil {
		return "", err
	}
	if !styles.Known(style) {
		return "", &InvalidStyleError{Style: string(style)}
	}

	key := cacheKey(style, text)
	if cached, ok := s.cache.Get(key); ok {
		s.logger.WithField("style", style).Debug("rephrase cache hit")
		return cached.(string), nil
	}

	prompt, err := BuildPrompt(text, style)
	if err != nil {
		return "", err
	}
	prompt.Tier = s.tier

	start := time.Now()
	response, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return "", &APICallError{Message: fmt.Sprintf("failed to rephrase in style %s", style), Cause: err}
	}

	result := llm.CleanText(response)
	if result == "" {
		return "", &APICallError{Message: "empty response from model"}
	}

	s.cache.SetDefault(key, result)
	s.logger.WithFields(logrus.Fields{
		"style":       style,
		"input_chars": len([]rune(text)),
		"duration":    time.Since(start).String(),
	}).Info("text rephrased")

	return result, nil
}

// RephraseMany rewrites text in every style concurrently. Results keep the
// order of list; the first failure cancels the remaining calls.
func (s *Service) RephraseMany(ctx context.Context, text string, list []styles.Style) ([]Result, error) {
	if len(list) == 0 {
		return nil, &InputError{Message: "at least one style is required"}
	}
	for _, style := range list {
		if !styles.Known(style) {
			return nil, &InvalidStyleError{Style: string(style)}
		}
	}

	results := make([]Result, len(list))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, style := range list {
		g.Go(func() error {
			out, err := s.Rephrase(gCtx, text, style)
			if err != nil {
				return err
			}
			results[i] = Result{Style: style, Text: out}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BuildPrompt assembles the system and user prompt for style.
func BuildPrompt(text string, style styles.Style) (llm.Prompt, error) {
	system, err := prompts.Get(promptFile, "system")
	if err != nil {
		return llm.Prompt{}, err
	}
	template, err := prompts.Get(promptFile, "user")
	if err != nil {
		return llm.Prompt{}, err
	}
	stylePrompt, err := prompts.Get(promptFile, "style."+string(style))
	if err != nil {
		return llm.Prompt{}, &InvalidStyleError{Style: string(style)}
	}

	return llm.Prompt{
		System: system,
		User: prompts.Format(template, map[string]string{
			"StylePrompt": stylePrompt,
			"Text":        text,
		}),
		Tier: llm.TierStandard,
	}, nil
}

func normalizeInput(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &InputError{Message: "text is required"}
	}
	if n := len([]rune(text)); n > MaxInputChars {
		return "", &InputError{Message: fmt.Sprintf("text is %d characters, limit is %d", n, MaxInputChars)}
	}
	return text, nil
}

func cacheKey(style styles.Style, text string) string {
	return string(style) + "\x00" + text
}

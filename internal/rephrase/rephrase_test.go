package rephrase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jonathan/rephrase-master/internal/llm"
	"github.com/jonathan/rephrase-master/internal/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient answers with a canned response per style prompt.
type fakeClient struct {
	mu       sync.Mutex
	calls    int32
	prompts  []llm.Prompt
	response func(p llm.Prompt) (string, error)
}

func (f *fakeClient) Generate(_ context.Context, p llm.Prompt) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	f.prompts = append(f.prompts, p)
	f.mu.Unlock()
	return f.response(p)
}

func (f *fakeClient) Close() error { return nil }

func echoClient() *fakeClient {
	return &fakeClient{response: func(p llm.Prompt) (string, error) {
		return "「" + p.User[strings.LastIndex(p.User, ": ")+2:] + "です」", nil
	}}
}

func TestRephrase_Success(t *testing.T) {
	client := echoClient()
	svc := NewService(client, Options{})

	got, err := svc.Rephrase(context.Background(), "  ありがとう  ", styles.Keigo)
	require.NoError(t, err)
	assert.Equal(t, "ありがとうです", got)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0].System, "言い換える専門家")
	assert.Contains(t, client.prompts[0].User, "敬語表現")
	assert.Contains(t, client.prompts[0].User, "文章: ありがとう")
	assert.Equal(t, llm.TierStandard, client.prompts[0].Tier)
}

func TestRephrase_UsesConfiguredTier(t *testing.T) {
	client := echoClient()
	svc := NewService(client, Options{Tier: llm.TierAdvanced})

	_, err := svc.Rephrase(context.Background(), "text", styles.Poet)
	require.NoError(t, err)
	assert.Equal(t, llm.TierAdvanced, client.prompts[0].Tier)
}

func TestRephrase_CachesResult(t *testing.T) {
	client := echoClient()
	svc := NewService(client, Options{})

	first, err := svc.Rephrase(context.Background(), "text", styles.Gyaru)
	require.NoError(t, err)
	second, err := svc.Rephrase(context.Background(), "text", styles.Gyaru)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&client.calls))

	_, err = svc.Rephrase(context.Background(), "text", styles.Kansai)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&client.calls))
}

func TestRephrase_InvalidInput(t *testing.T) {
	svc := NewService(echoClient(), Options{})

	_, err := svc.Rephrase(context.Background(), "   ", styles.Keigo)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)

	_, err = svc.Rephrase(context.Background(), strings.Repeat("あ", MaxInputChars+1), styles.Keigo)
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, err.Error(), "limit")
}

func TestRephrase_UnknownStyle(t *testing.T) {
	client := echoClient()
	svc := NewService(client, Options{})

	_, err := svc.Rephrase(context.Background(), "text", "cowboy")
	var styleErr *InvalidStyleError
	require.ErrorAs(t, err, &styleErr)
	assert.Equal(t, "cowboy", styleErr.Style)
	assert.Zero(t, atomic.LoadInt32(&client.calls))
}

func TestRephrase_ClientError(t *testing.T) {
	cause := errors.New("quota exceeded")
	svc := NewService(&fakeClient{response: func(llm.Prompt) (string, error) { return "", cause }}, Options{})

	_, err := svc.Rephrase(context.Background(), "text", styles.Meigen)
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, cause)
}

func TestRephrase_EmptyResponse(t *testing.T) {
	svc := NewService(&fakeClient{response: func(llm.Prompt) (string, error) { return "  \n ", nil }}, Options{})

	_, err := svc.Rephrase(context.Background(), "text", styles.Meigen)
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, err.Error(), "empty response")
}

func TestRephraseMany_PreservesOrder(t *testing.T) {
	client := &fakeClient{response: func(p llm.Prompt) (string, error) {
		switch {
		case strings.Contains(p.User, "関西弁"):
			return "おおきに", nil
		case strings.Contains(p.User, "ギャル"):
			return "あざまる", nil
		default:
			return "ありがとうございます", nil
		}
	}}
	svc := NewService(client, Options{Concurrency: 2})

	list := []styles.Style{styles.Kansai, styles.Gyaru, styles.Keigo}
	results, err := svc.RephraseMany(context.Background(), "ありがとう", list)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, Result{Style: styles.Kansai, Text: "おおきに"}, results[0])
	assert.Equal(t, Result{Style: styles.Gyaru, Text: "あざまる"}, results[1])
	assert.Equal(t, Result{Style: styles.Keigo, Text: "ありがとうございます"}, results[2])
}

func TestRephraseMany_ValidatesStylesUpFront(t *testing.T) {
	client := echoClient()
	svc := NewService(client, Options{})

	_, err := svc.RephraseMany(context.Background(), "text", []styles.Style{styles.Keigo, "cowboy"})
	var styleErr *InvalidStyleError
	require.ErrorAs(t, err, &styleErr)
	assert.Zero(t, atomic.LoadInt32(&client.calls))

	_, err = svc.RephraseMany(context.Background(), "text", nil)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
}

func TestRephraseMany_PropagatesFailure(t *testing.T) {
	client := &fakeClient{response: func(p llm.Prompt) (string, error) {
		if strings.Contains(p.User, "詩的") {
			return "", errors.New("boom")
		}
		return "ok", nil
	}}
	svc := NewService(client, Options{})

	_, err := svc.RephraseMany(context.Background(), "text", []styles.Style{styles.Keigo, styles.Poet})
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
}

func TestBuildPrompt_AllCatalogStyles(t *testing.T) {
	for _, entry := range styles.All() {
		t.Run(string(entry.ID), func(t *testing.T) {
			p, err := BuildPrompt("テスト", entry.ID)
			require.NoError(t, err)
			assert.NotEmpty(t, p.System)
			assert.True(t, strings.HasSuffix(p.User, "文章: テスト"))
		})
	}
}

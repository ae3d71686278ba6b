// Package agent implements the celebrity chat agent.
//
// An Agent owns one persona and answers fan messages in that persona's
// voice. Each turn fetches recent history from the conversation store,
// renders the persona and context into a two-message prompt, calls the
// completion provider, and persists the exchange. Model failures degrade to
// fixed in-character replies; a failed turn is never written to the store.
package agent

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/staragent/staragent-go/pkg/llm"
	"github.com/staragent/staragent-go/pkg/logger"
	"github.com/staragent/staragent-go/pkg/memory"
	"github.com/staragent/staragent-go/pkg/persona"
	"github.com/staragent/staragent-go/pkg/persona/cache"
	"github.com/staragent/staragent-go/pkg/scraper"
)

const (
	historyFetchLimit = 5
	summaryWindow     = 10

	generateTimeout     = 30 * time.Second
	generateTemperature = 0.8
	generateMaxTokens   = 500
)

// Agent impersonates one celebrity across all users.
type Agent struct {
	celebrity string
	persona   *persona.Persona
	store     memory.Store
	llm       llm.Provider
	log       *logger.Logger
}

// New creates an agent for the named celebrity.
//
// The persona is loaded from the cache when present; on a miss it is built
// from the data provider's record and written back, so construction runs
// once per celebrity.
func New(ctx context.Context, celebrity string, data scraper.Provider, personaCache cache.Cache, store memory.Store, provider llm.Provider, log *logger.Logger) (*Agent, error) {
	p, err := personaCache.Get(ctx, celebrity)
	if err != nil {
		return nil, err
	}
	if p == nil {
		raw, err := data.Fetch(ctx, celebrity)
		if err != nil {
			return nil, err
		}
		p = persona.NewBuilder().BuildPersona(raw)
		if err := personaCache.Put(ctx, celebrity, p); err != nil {
			return nil, err
		}
		log.Info("built persona", "celebrity", celebrity)
	} else {
		log.Info("loaded cached persona", "celebrity", celebrity)
	}

	return &Agent{
		celebrity: celebrity,
		persona:   p,
		store:     store,
		llm:       provider,
		log:       log,
	}, nil
}

// Celebrity returns the impersonated celebrity's name.
func (a *Agent) Celebrity() string {
	return a.celebrity
}

// Persona returns the active persona profile.
func (a *Agent) Persona() *persona.Persona {
	return a.persona
}

// GenerateResponse answers one fan message in the persona's voice.
//
// The returned string is always a usable reply: delivery failures map to
// fixed in-character fallbacks and a nil error. The exchange is persisted
// only when the model produced it.
func (a *Agent) GenerateResponse(ctx context.Context, userMessage, userID string) (string, error) {
	history, err := a.store.GetHistory(ctx, userID, historyFetchLimit)
	if err != nil {
		return "", err
	}

	messages := []llm.Message{
		{Role: "system", Content: buildSystemPrompt(a.persona)},
		{Role: "user", Content: buildUserPrompt(userMessage, history)},
	}

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	reply, err := a.llm.GenerateWithMessages(genCtx, messages,
		llm.WithTemperature(generateTemperature),
		llm.WithMaxTokens(generateMaxTokens),
	)
	if err != nil {
		return a.fallbackFor(err), nil
	}
	reply = strings.TrimSpace(reply)

	summary, err := a.store.Summarize(ctx, userID, summaryWindow)
	if err != nil {
		a.log.Warn("failed to summarize history", "user_id", userID, "error", err)
		summary = ""
	}
	if err := a.store.Save(ctx, userID, userMessage, reply, summary); err != nil {
		a.log.Error("failed to save conversation", "user_id", userID, "error", err)
	}
	return reply, nil
}

func (a *Agent) fallbackFor(err error) string {
	switch {
	case errors.Is(err, llm.ErrTimeout):
		a.log.Warn("completion timed out", "celebrity", a.celebrity)
		return timeoutFallback
	case errors.Is(err, llm.ErrRequest), errors.Is(err, llm.ErrMalformedResponse):
		a.log.Warn("completion request failed", "celebrity", a.celebrity, "error", err)
		return requestFallback
	default:
		a.log.Error("unexpected completion error", "celebrity", a.celebrity, "error", err)
		return randomBackupResponse()
	}
}

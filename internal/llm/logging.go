package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schoolofai/drillcore/internal/store"
)

// loggingProvider records every request as an LLM event, success or not.
type loggingProvider struct {
	inner  Provider
	events store.EventRepo
}

// WithLogging wraps a provider so every Generate call is appended to the
// event log.
func WithLogging(p Provider, events store.EventRepo) Provider {
	return &loggingProvider{inner: p, events: events}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.inner.Name(),
		Model:       l.inner.ModelID(),
		Purpose:     string(PurposeFrom(ctx)),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed event write must not fail the generation itself.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: could not log LLM event: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) Name() string    { return l.inner.Name() }
func (l *loggingProvider) ModelID() string { return l.inner.ModelID() }

// renderRequest flattens a request into the readable form stored in the
// event log for later inspection with `drillcore llm view`.
func renderRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	if req.User != "" {
		b.WriteString("[user]\n")
		b.WriteString(req.User)
		b.WriteString("\n\n")
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}

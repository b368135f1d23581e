// Package agent runs a langchaingo one-shot agent that can call the
// resource tool while answering a question.
package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/tools"

	"github.com/roivaz/mcp-resource-tool/internal/logging"
)

type Config struct {
	OllamaURL     string
	Model         string
	MaxIterations int
	CallTimeout   time.Duration
}

type Agent struct {
	executor *agents.Executor
	log      logging.Logger
	to       time.Duration
}

// New creates an Agent backed by an Ollama model.
func New(cfg Config, tool tools.Tool, log logging.Logger) (*Agent, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("agent model name is required")
	}

	opts := []ollama.Option{
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(&http.Client{Timeout: 5 * time.Minute}),
	}
	if trimmed := strings.TrimSpace(cfg.OllamaURL); trimmed != "" {
		opts = append(opts, ollama.WithServerURL(trimmed))
	}
	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return NewWithModel(llm, cfg, log, tool), nil
}

// NewWithModel creates an Agent over an arbitrary model.
func NewWithModel(model llms.Model, cfg Config, log logging.Logger, toolset ...tools.Tool) *Agent {
	var opts []agents.Option
	if cfg.MaxIterations > 0 {
		opts = append(opts, agents.WithMaxIterations(cfg.MaxIterations))
	}
	oneShot := agents.NewOneShotAgent(model, toolset, opts...)
	return &Agent{
		executor: agents.NewExecutor(oneShot, opts...),
		log:      log.WithName("agent"),
		to:       cfg.CallTimeout,
	}
}

// Ask runs the agent until it produces a final answer.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("question is required")
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	a.log.Debug("running agent", "question", question)
	answer, err := chains.Run(ctx, a.executor, question)
	if err != nil {
		annotated := a.annotateError(err)
		a.log.Error(annotated, "agent run failed", "elapsed", time.Since(start).String())
		return "", annotated
	}
	a.log.Debug("agent finished", "elapsed", time.Since(start).String())
	return strings.TrimSpace(answer), nil
}

func (a *Agent) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.to <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.to)
}

func (a *Agent) annotateError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("agent timed out after %s: %w", a.to, err)
	}
	return err
}

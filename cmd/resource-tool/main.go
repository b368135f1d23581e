package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/mcp-resource-tool/internal/agent"
	"github.com/roivaz/mcp-resource-tool/internal/config"
	"github.com/roivaz/mcp-resource-tool/internal/logging"
	mcpserver "github.com/roivaz/mcp-resource-tool/internal/mcp"
	"github.com/roivaz/mcp-resource-tool/internal/resources"
	"github.com/roivaz/mcp-resource-tool/internal/upstream"
)

var rootCmd = &cobra.Command{
	Use:          "resource-tool",
	Short:        "Expose an MCP server's resources as a single get_mcp_resource tool",
	SilenceUsage: true,
}

func main() {
	flags := rootCmd.PersistentFlags()
	flags.String("upstream-command", "", "Command that starts a stdio MCP server")
	flags.StringSlice("upstream-args", nil, "Arguments for --upstream-command")
	flags.StringSlice("upstream-env", nil, "Extra KEY=VALUE environment for --upstream-command")
	flags.String("upstream-url", "", "Streamable HTTP endpoint of the MCP server")
	flags.String("upstream-token", "", "Bearer token for --upstream-url")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")

	serveCmd := newServeCmd()
	askCmd := newAskCmd()
	rootCmd.AddCommand(newDescribeCmd(), newReadCmd(), serveCmd, askCmd)
	config.Init(rootCmd)
	config.BindFlags(serveCmd.Flags())
	config.BindFlags(askCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("resource-tool: %v", err)
	}
}

func newLogger() logging.Logger {
	return logging.FromLevel(config.LogLevel())
}

func upstreamConfig() (upstream.Config, error) {
	timeout, err := config.ParseDuration(config.UpstreamInitTimeout(), 30*time.Second)
	if err != nil {
		return upstream.Config{}, fmt.Errorf("invalid upstream_init_timeout: %w", err)
	}
	return upstream.Config{
		Command:     config.UpstreamCommand(),
		Args:        config.UpstreamArgs(),
		Env:         config.UpstreamEnv(),
		URL:         config.UpstreamURL(),
		Token:       config.UpstreamToken(),
		InitTimeout: timeout,
	}, nil
}

// withTool connects to the upstream, builds the tool and runs fn with it.
func withTool(ctx context.Context, logger logging.Logger, fn func(*resources.Tool) error) error {
	cfg, err := upstreamConfig()
	if err != nil {
		return err
	}
	session, err := upstream.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSession(session, logger)

	tool, err := resources.New(logger).BuildTool(ctx, session)
	if err != nil {
		return err
	}
	return fn(tool)
}

func closeSession(session *client.Client, logger logging.Logger) {
	if err := session.Close(); err != nil {
		logger.Error(err, "closing upstream session")
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func newDescribeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the tool description built from the upstream catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			return withTool(ctx, newLogger(), func(tool *resources.Tool) error {
				return writeDescription(cmd.OutOrStdout(), tool, output)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func writeDescription(w io.Writer, tool *resources.Tool, format string) error {
	switch strings.ToLower(format) {
	case "text":
		_, err := fmt.Fprintln(w, tool.Description())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tool.Definition())
	case "yaml":
		out, err := yaml.Marshal(tool.Definition())
		if err != nil {
			return fmt.Errorf("encode tool definition: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func newReadCmd() *cobra.Command {
	var uri string
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Invoke the tool for one resource URI and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			return withTool(ctx, newLogger(), func(tool *resources.Tool) error {
				result, err := tool.Invoke(ctx, resources.Request{ResourceURI: uri})
				if err != nil {
					return err
				}
				return writeResult(cmd.OutOrStdout(), result)
			})
		},
	}
	cmd.Flags().StringVar(&uri, "uri", "", "Resource URI to read")
	_ = cmd.MarkFlagRequired("uri")
	return cmd
}

// writeResult prints result as indented JSON. content is a string for a single
// text part and an array otherwise; artifacts is left out when there are none.
func writeResult(w io.Writer, result resources.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func newServeCmd() *cobra.Command {
	var transport string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tool on an MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			logger := newLogger()

			upCfg, err := upstreamConfig()
			if err != nil {
				return err
			}
			cfg, err := mcpserver.DefaultConfig(ctx, upCfg, logger)
			if err != nil {
				return err
			}
			srv := mcpserver.New(cfg)
			defer srv.Close()

			switch transport {
			case "stdio":
				return srv.ServeStdio()
			case "http":
				go func() {
					<-ctx.Done()
					shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
					defer done()
					if err := srv.Shutdown(shutdownCtx); err != nil {
						logger.Error(err, "shutdown failed")
					}
				}()
				if err := srv.ListenAndServe(config.ListenAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			default:
				return fmt.Errorf("unknown transport %q", transport)
			}
		},
	}
	cmd.Flags().StringVar(&transport, "transport", "http", "Transport: http or stdio")
	cmd.Flags().String("listen-addr", ":8080", "Listen address for the http transport")
	return cmd
}

func newAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask QUESTION",
		Short: "Answer a question with an Ollama agent that can read resources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()
			logger := newLogger()

			timeout, err := config.ParseDuration(config.LLMCallTimeout(), 2*time.Minute)
			if err != nil {
				return fmt.Errorf("invalid llm_call_timeout: %w", err)
			}
			return withTool(ctx, logger, func(tool *resources.Tool) error {
				a, err := agent.New(agent.Config{
					OllamaURL:     config.OllamaURL(),
					Model:         config.AgentModel(),
					MaxIterations: config.AgentMaxIterations(),
					CallTimeout:   timeout,
				}, tool, logger)
				if err != nil {
					return err
				}
				answer, err := a.Ask(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
				return err
			})
		},
	}
	cmd.Flags().String("ollama-url", "http://localhost:11434", "Ollama server URL")
	cmd.Flags().String("agent-model", "llama3.1", "Ollama model used by the agent")
	cmd.Flags().Int("agent-max-iterations", 5, "Maximum agent reasoning steps")
	return cmd
}

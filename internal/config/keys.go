package config

const (
	KeyUpstreamCommand     = "upstream_command"
	KeyUpstreamArgs        = "upstream_args"
	KeyUpstreamEnv         = "upstream_env"
	KeyUpstreamURL         = "upstream_url"
	KeyUpstreamToken       = "upstream_token"
	KeyUpstreamInitTimeout = "upstream_init_timeout"
	KeyLogLevel            = "log_level"
	KeyListenAddr          = "listen_addr"
	KeyOllamaURL           = "ollama_url"
	KeyAgentModel          = "agent_model"
	KeyAgentMaxIterations  = "agent_max_iterations"
	KeyLLMCallTimeout      = "llm_call_timeout"
)

package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load("config.env")
	if root != nil {
		BindFlags(root.PersistentFlags())
	}
	setDefaults()
}

// BindFlags binds every flag in fs to the key of the same name.
// Flags are dash-separated, keys and env vars are underscore-separated.
func BindFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyUpstreamInitTimeout, "30s")
	viper.SetDefault(KeyListenAddr, ":8080")
	viper.SetDefault(KeyOllamaURL, "http://localhost:11434")
	viper.SetDefault(KeyAgentModel, "llama3.1")
	viper.SetDefault(KeyAgentMaxIterations, 5)
	viper.SetDefault(KeyLLMCallTimeout, "2m")
}

func UpstreamCommand() string     { return viper.GetString(KeyUpstreamCommand) }
func UpstreamArgs() []string      { return viper.GetStringSlice(KeyUpstreamArgs) }
func UpstreamEnv() []string       { return viper.GetStringSlice(KeyUpstreamEnv) }
func UpstreamURL() string         { return viper.GetString(KeyUpstreamURL) }
func UpstreamToken() string       { return viper.GetString(KeyUpstreamToken) }
func UpstreamInitTimeout() string { return viper.GetString(KeyUpstreamInitTimeout) }
func LogLevel() string            { return viper.GetString(KeyLogLevel) }
func ListenAddr() string          { return viper.GetString(KeyListenAddr) }
func OllamaURL() string           { return viper.GetString(KeyOllamaURL) }
func AgentModel() string          { return viper.GetString(KeyAgentModel) }
func AgentMaxIterations() int     { return viper.GetInt(KeyAgentMaxIterations) }
func LLMCallTimeout() string      { return viper.GetString(KeyLLMCallTimeout) }

// ParseDuration parses value, returning fallback when value is blank.
func ParseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, err
	}
	return d, nil
}

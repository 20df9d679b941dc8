package util

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ties/voltdb-client-go/voltdb/common"
	"github.com/ties/voltdb-client-go/voltdb/session"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupClientFlags adds the common connection flags to a command
func SetupClientFlags(cmd *cobra.Command) {
	key := "server"
	cmd.PersistentFlags().String(key, "localhost:21212", WrapString("The address of the server as host:port"))

	key = "user"
	cmd.PersistentFlags().String(key, "", WrapString("Username for authentication, empty for none"))

	key = "password"
	cmd.PersistentFlags().String(key, "", WrapString("Password for authentication, empty for none"))

	key = "connect-timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("The dial timeout in seconds, 0 to wait forever"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("Log level (debug, info, warn, error)"))

	key = "tcp-nodelay"
	cmd.PersistentFlags().Bool(key, true, WrapString("Whether to disable Nagle's algorithm on the connection"))

	key = "tcp-keepalive"
	cmd.PersistentFlags().Int(key, 0, WrapString("The keepalive interval for the connection (in seconds, 0 to disable)"))

	key = "tcp-write-buffer"
	cmd.PersistentFlags().Int(key, 0, WrapString("The size of the socket write buffer (in KB, 0 for the kernel default)"))

	key = "tcp-read-buffer"
	cmd.PersistentFlags().Int(key, 0, WrapString("The size of the socket read buffer (in KB, 0 for the kernel default)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("volt")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() (*common.ClientConfig, error) {
	target, err := common.ParseIPPort(viper.GetString("server"))
	if err != nil {
		return nil, err
	}

	conf := &common.ClientConfig{
		Target:               target,
		Username:             viper.GetString("user"),
		Password:             viper.GetString("password"),
		ConnectTimeoutSecond: viper.GetInt("connect-timeout"),
		TCP: common.TCPConf{
			TCPNoDelay:      viper.GetBool("tcp-nodelay"),
			TCPKeepAliveSec: viper.GetInt("tcp-keepalive"),
			WriteBufferSize: viper.GetInt("tcp-write-buffer") * 1024,
			ReadBufferSize:  viper.GetInt("tcp-read-buffer") * 1024,
		},
		LogLevel: viper.GetString("log-level"),
	}

	return conf, nil
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}

// Connect initializes logging and opens a session using the configuration
// from viper
func Connect() (*session.Session, error) {
	conf, err := GetClientConfig()
	if err != nil {
		return nil, err
	}

	common.InitLoggers(conf.LogLevel)

	return session.Connect(*conf)
}

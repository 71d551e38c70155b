package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint = "http://localhost:8080/chat"
	DefaultPort     = "8080"
)

// ClientConfig configures the chat widget
type ClientConfig struct {
	Endpoint string        // full URL of the /chat endpoint
	Timeout  time.Duration // 0 means no timeout
	LogFile  string        // empty disables logging
}

// ServerConfig configures the development /chat server
type ServerConfig struct {
	Addr        string
	CatalogPath string // empty uses the built in catalog
}

// LoadDotEnv loads a .env file if present. A missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	var present []string
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// LoadClient reads the widget configuration from the environment
func LoadClient() (ClientConfig, error) {
	endpoint := strings.TrimSpace(os.Getenv("CHAT_ENDPOINT"))
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if err := validateEndpoint(endpoint); err != nil {
		return ClientConfig{}, err
	}

	var timeout time.Duration
	if raw := strings.TrimSpace(os.Getenv("CHAT_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return ClientConfig{}, fmt.Errorf("invalid CHAT_TIMEOUT value %q: %w", raw, err)
		}
		if d < 0 {
			return ClientConfig{}, fmt.Errorf("invalid CHAT_TIMEOUT value %q: negative", raw)
		}
		timeout = d
	}

	return ClientConfig{
		Endpoint: endpoint,
		Timeout:  timeout,
		LogFile:  strings.TrimSpace(os.Getenv("CHAT_LOG_FILE")),
	}, nil
}

// LoadServer reads the development server configuration from the environment
func LoadServer() (ServerConfig, error) {
	addr, err := parseAddr(os.Getenv("PORT"))
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		Addr:        addr,
		CatalogPath: strings.TrimSpace(os.Getenv("CATALOG_PATH")),
	}, nil
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid chat endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid chat endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid chat endpoint %q: missing host", endpoint)
	}
	return nil
}

// ValidateEndpoint checks a chat endpoint given on the command line
func ValidateEndpoint(endpoint string) error {
	return validateEndpoint(endpoint)
}

func parseAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = DefaultPort
	}
	// ":8080" and "127.0.0.1:8080" are taken as is
	if strings.Contains(port, ":") {
		return port, nil
	}
	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}
	return ":" + port, nil
}

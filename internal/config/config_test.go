package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("CHAT_ENDPOINT", "")
	t.Setenv("CHAT_TIMEOUT", "")
	t.Setenv("CHAT_LOG_FILE", "")

	cfg, err := LoadClient()
	require.NoError(t, err)
	require.Equal(t, DefaultEndpoint, cfg.Endpoint)
	require.Zero(t, cfg.Timeout)
	require.Empty(t, cfg.LogFile)
}

func TestLoadClient_FromEnv(t *testing.T) {
	t.Setenv("CHAT_ENDPOINT", "https://shop.example.com/chat")
	t.Setenv("CHAT_TIMEOUT", "15s")
	t.Setenv("CHAT_LOG_FILE", "chat.log")

	cfg, err := LoadClient()
	require.NoError(t, err)
	require.Equal(t, "https://shop.example.com/chat", cfg.Endpoint)
	require.Equal(t, 15*time.Second, cfg.Timeout)
	require.Equal(t, "chat.log", cfg.LogFile)
}

func TestLoadClient_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad scheme":   {"ftp://host/chat", ""},
		"missing host": {"http:///chat", ""},
		"bad timeout":  {"", "soon"},
		"neg timeout":  {"", "-1s"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("CHAT_ENDPOINT", tc[0])
			t.Setenv("CHAT_TIMEOUT", tc[1])
			_, err := LoadClient()
			require.Error(t, err)
		})
	}
}

func TestLoadServer(t *testing.T) {
	cases := []struct {
		port string
		want string
	}{
		{"", ":8080"},
		{"9090", ":9090"},
		{":7000", ":7000"},
		{"127.0.0.1:5000", "127.0.0.1:5000"},
	}
	for _, tc := range cases {
		t.Setenv("PORT", tc.port)
		cfg, err := LoadServer()
		require.NoError(t, err, "port=%q", tc.port)
		require.Equal(t, tc.want, cfg.Addr, "port=%q", tc.port)
	}

	t.Setenv("PORT", "80 80")
	_, err := LoadServer()
	require.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CHEESECAKE_TEST_VALUE=loaded\n"), 0o600))
	t.Setenv("CHEESECAKE_TEST_VALUE", "")
	os.Unsetenv("CHEESECAKE_TEST_VALUE")

	require.NoError(t, LoadDotEnv(path))
	require.Equal(t, "loaded", os.Getenv("CHEESECAKE_TEST_VALUE"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}

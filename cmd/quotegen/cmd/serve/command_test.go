package serve

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen/cmd/quotegen/cmd/cmdtest"
)

func TestParsePort(t *testing.T) {
	p, err := parsePort("9090")
	require.NoError(t, err)
	assert.Equal(t, 9090, p)

	for _, bad := range []string{"abc", "0", "70000"} {
		_, err := parsePort(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseConfig(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("HTTP_HOST", "")

	cmd := NewCommand(cmdtest.App(nil, ""))
	require.NoError(t, cmd.ParseFlags([]string{"--port", "3000", "--cors-origins", "https://a.example", "--cache-ttl", "5s"}))

	cfg := parseConfig(cmd)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "/api/v1", cfg.PathPrefix)
	assert.True(t, cfg.CORSEnabled)
	assert.Equal(t, []string{"https://a.example"}, cfg.CORSOrigins)
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)
}

func TestParseConfigEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "4321")
	t.Setenv("HTTP_HOST", "0.0.0.0")

	cmd := NewCommand(cmdtest.App(nil, ""))
	require.NoError(t, cmd.ParseFlags(nil))

	cfg := parseConfig(cmd)
	assert.Equal(t, 4321, cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
}

func TestServeUntilCancelled(t *testing.T) {
	port := freePort(t)
	t.Setenv("HTTP_PORT", strconv.Itoa(port))
	t.Setenv("HTTP_HOST", "127.0.0.1")

	client := cmdtest.NewClient(t, &cmdtest.Remote{})
	cmd := NewCommand(cmdtest.App(client, ""))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--sync=false"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	url := "http://127.0.0.1:" + strconv.Itoa(port) + "/health"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Contains(t, out.String(), "API server stopped gracefully")
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

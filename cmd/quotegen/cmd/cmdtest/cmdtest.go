// Package cmdtest provides fixtures for command tests: a stub remote, a
// seeded in-memory client and a helper that runs a cobra command.
package cmdtest

import (
	"bytes"
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen"
	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/quotes"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

// Remote is an in-process remote source.
type Remote struct {
	mu      sync.Mutex
	Batch   []quotes.Quote
	Offline bool
	Pushed  []quotes.Quote
}

// Fetch implements sync.Remote.
func (r *Remote) Fetch(context.Context) ([]quotes.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Offline {
		return nil, errors.WrapRemote("fetch", "stub", errors.New("connection refused"))
	}
	out := make([]quotes.Quote, len(r.Batch))
	copy(out, r.Batch)
	return out, nil
}

// Push implements sync.Remote.
func (r *Remote) Push(_ context.Context, q quotes.Quote) (pkgsync.Ack, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Offline {
		return pkgsync.Ack{}, errors.WrapRemote("push", "stub", errors.New("connection refused"))
	}
	r.Pushed = append(r.Pushed, q)
	return pkgsync.Ack{ID: 101, Status: 201}, nil
}

// NewClient returns a client over memory storage holding the seed quotes.
// It is closed when the test ends.
func NewClient(t testing.TB, remote *Remote) quotegen.Client {
	t.Helper()
	if remote == nil {
		remote = &Remote{}
	}
	c, err := quotegen.New(
		quotegen.WithRemote(remote),
		quotegen.WithRandSource(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c
}

// App wraps client in an application mock with a fixed output format.
func App(client quotegen.Client, format string) *application.Mock {
	return &application.Mock{
		ClientFunc:       func() (quotegen.Client, error) { return client, nil },
		OutputFormatFunc: func() string { return format },
	}
}

// Run executes cmd with args and returns what it wrote to stdout.
func Run(t testing.TB, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

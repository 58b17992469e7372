package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/mark3labs/mcp-go/client"
	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/internal/core/coretest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChat struct{}

func (stubChat) Reply(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", core.ErrEmptyMessage
	}
	return "echo " + text, nil
}

func newClient(t *testing.T, s *Server) *client.Client {
	t.Helper()
	ctx := context.Background()

	cli, err := client.NewInProcessClient(s.MCPServer())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cli.Close() })

	require.NoError(t, cli.Start(ctx))

	initReq := mcpproto.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcpproto.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcpproto.Implementation{Name: "bodai-test", Version: "1.0.0"}
	_, err = cli.Initialize(ctx, initReq)
	require.NoError(t, err)
	return cli
}

func call(t *testing.T, cli *client.Client, name string, args map[string]any) (string, bool) {
	t.Helper()

	req := mcpproto.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	res, err := cli.CallTool(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)

	switch c := res.Content[0].(type) {
	case mcpproto.TextContent:
		return c.Text, res.IsError
	case *mcpproto.TextContent:
		return c.Text, res.IsError
	}
	t.Fatalf("unexpected content %T", res.Content[0])
	return "", false
}

func TestServer_ListTools(t *testing.T) {
	cli := newClient(t, NewServer(stubChat{}, coretest.NewMemoryRepo(), coretest.NewProfileRepo(), os.Stdin, os.Stdout))

	resp, err := cli.ListTools(context.Background(), mcpproto.ListToolsRequest{})
	require.NoError(t, err)

	var names []string
	for _, tool := range resp.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"chat", "list_memories", "list_profile"}, names)
}

func TestServer_Chat(t *testing.T) {
	cli := newClient(t, NewServer(stubChat{}, coretest.NewMemoryRepo(), coretest.NewProfileRepo(), os.Stdin, os.Stdout))

	text, isErr := call(t, cli, "chat", map[string]any{"message": "hello"})
	assert.False(t, isErr)
	assert.Equal(t, "echo hello", text)

	_, isErr = call(t, cli, "chat", map[string]any{})
	assert.True(t, isErr)

	text, isErr = call(t, cli, "chat", map[string]any{"message": ""})
	assert.True(t, isErr)
	assert.Contains(t, text, core.ErrEmptyMessage.Error())
}

func TestServer_ListMemoriesAndProfile(t *testing.T) {
	profile := coretest.NewProfileRepo()
	_, err := profile.AddFact(context.Background(), core.CategoryHobby, "hiking")
	require.NoError(t, err)

	cli := newClient(t, NewServer(stubChat{}, coretest.NewMemoryRepo("I like hiking"), profile, os.Stdin, os.Stdout))

	text, _ := call(t, cli, "list_memories", nil)
	var memories []core.Memory
	require.NoError(t, json.Unmarshal([]byte(text), &memories))
	require.Len(t, memories, 1)
	assert.Equal(t, "I like hiking", memories[0].Text)

	text, _ = call(t, cli, "list_profile", nil)
	var facts []core.ProfileFact
	require.NoError(t, json.Unmarshal([]byte(text), &facts))
	require.Len(t, facts, 1)
	assert.Equal(t, core.CategoryHobby, facts[0].Category)
}

type failingMemories struct {
	*coretest.MemoryRepo
}

func (failingMemories) ListMemories(ctx context.Context) ([]core.Memory, error) {
	return nil, errors.New("database is locked")
}

func TestServer_ListMemoriesError(t *testing.T) {
	cli := newClient(t, NewServer(stubChat{}, failingMemories{coretest.NewMemoryRepo()}, coretest.NewProfileRepo(), os.Stdin, os.Stdout))

	text, isErr := call(t, cli, "list_memories", nil)
	assert.True(t, isErr)
	assert.Contains(t, text, "locked")
}

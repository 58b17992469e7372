package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/pkg/log"
)

// Server exposes the bot to MCP clients over stdio.
type Server struct {
	chat     core.Chatter
	memories core.MemoryRepository
	profile  core.ProfileRepository

	mcp   *server.MCPServer
	stdio *server.StdioServer
	in    io.Reader
	out   io.Writer
}

func NewServer(
	chat core.Chatter,
	memories core.MemoryRepository,
	profile core.ProfileRepository,
	in io.Reader,
	out io.Writer,
) *Server {
	s := &Server{
		chat:     chat,
		memories: memories,
		profile:  profile,
		in:       in,
		out:      out,
	}

	s.mcp = server.NewMCPServer(core.BodaiName, core.BodaiVersion, server.WithToolCapabilities(false))
	s.registerTools()
	s.stdio = server.NewStdioServer(s.mcp)
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcpproto.NewTool("chat",
		mcpproto.WithDescription("Send a message to BODAI and get its reply. Messages like 'remember that ...' are stored."),
		mcpproto.WithString("message", mcpproto.Required(), mcpproto.Description("The user message")),
	), s.handleChat)

	s.mcp.AddTool(mcpproto.NewTool("list_memories",
		mcpproto.WithDescription("List everything BODAI was asked to remember, newest first."),
	), s.handleListMemories)

	s.mcp.AddTool(mcpproto.NewTool("list_profile",
		mcpproto.WithDescription("List the profile facts BODAI learned about the user."),
	), s.handleListProfile)
}

// MCPServer returns the underlying server, for in-process clients.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("serving mcp over stdio")
	err := s.stdio.Listen(ctx, s.in, s.out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) handleChat(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}

	answer, err := s.chat.Reply(ctx, message)
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}
	return mcpproto.NewToolResultText(answer), nil
}

func (s *Server) handleListMemories(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	memories, err := s.memories.ListMemories(ctx)
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}
	if memories == nil {
		memories = []core.Memory{}
	}
	return jsonResult(memories)
}

func (s *Server) handleListProfile(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	facts, err := s.profile.ListFacts(ctx)
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}
	if facts == nil {
		facts = []core.ProfileFact{}
	}
	return jsonResult(facts)
}

func jsonResult(v any) (*mcpproto.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcpproto.NewToolResultText(string(data)), nil
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/bodai/internal/transport/mcp"
	"github.com/sandevgo/bodai/pkg/log"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve BODAI as an MCP server over stdio",
	Long:  `Exposes the chat, list_memories and list_profile tools to an MCP client. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// stdout carries the protocol
		var flushLog func()
		ctx, flushLog = setupLoggerTo(ctx, os.Stderr)
		defer flushLog()

		a := newApp(ctx)
		defer func() {
			if err := a.cleanup.Shutdown(ctx); err != nil {
				log.FromCtx(ctx).Error().Err(err).Msg("failed to close database")
			}
		}()

		return mcp.NewServer(a.bot, a.memories, a.profile, os.Stdin, os.Stdout).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/captvty-nav/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server around a session.
type Server struct {
	session *Session
	mcp     *mcpserver.MCPServer
}

// New creates an MCP server with all captvty-nav tools registered.
func New(session *Session) *Server {
	s := &Server{
		session: session,
		mcp:     mcpserver.NewMCPServer("captvty-nav", version.Version),
	}
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio", "":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// mode
	s.mcp.AddTool(
		mcp.NewTool("mode",
			mcp.WithDescription("Read the current Captvty mode (direct, catchup or other) and the announcement spoken on focus"),
		),
		s.handleMode,
	)

	// buttons
	s.mcp.AddTool(
		mcp.NewTool("buttons",
			mcp.WithDescription("List the mode buttons located in the Captvty window"),
		),
		s.handleButtons,
	)

	// select_mode
	s.mcp.AddTool(
		mcp.NewTool("select_mode",
			mcp.WithDescription("Switch Captvty to the direct or catch-up menu by pressing its mode button"),
			mcp.WithString("mode", mcp.Required(), mcp.Description("Mode to select: direct or catchup")),
		),
		s.handleSelectMode,
	)

	// channels
	s.mcp.AddTool(
		mcp.NewTool("channels",
			mcp.WithDescription("List the channels of the Captvty channel list in display order"),
		),
		s.handleChannels,
	)

	// select_channel
	s.mcp.AddTool(
		mcp.NewTool("select_channel",
			mcp.WithDescription("Scroll a channel into view and act on it. In direct mode the option picks the player or recording; in catch-up mode the channel is selected."),
			mcp.WithString("channel", mcp.Required(), mcp.Description("Channel name (exact, case-insensitive, substring, or #N)")),
			mcp.WithString("option", mcp.Description("Direct mode option: internal player, external player or recording, by text or #N (default: ask the host)")),
		),
		s.handleSelectChannel,
	)

	// gesture
	s.mcp.AddTool(
		mcp.NewTool("gesture",
			mcp.WithDescription("Send a bound key gesture (control+d, control+r, nvda+l) as the screen reader would"),
			mcp.WithString("gesture", mcp.Required(), mcp.Description("Key combination, e.g. 'kb:control+d' or 'NVDA+L'")),
			mcp.WithString("answers", mcp.Description("Comma-separated answers for the dialogs the gesture opens, in order")),
		),
		s.handleGesture,
	)

	// parse_program
	s.mcp.AddTool(
		mcp.NewTool("parse_program",
			mcp.WithDescription("Parse a Captvty program description ('Name; Chaîne: X; Diffusée ou publiée le: Y; Durée: Z; Résumé: W')"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Program description text")),
		),
		s.handleParseProgram,
	)
}

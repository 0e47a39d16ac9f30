package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"
)

// resultToText serializes a Result to YAML for MCP response.
func resultToText(result Result) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("ok: %v\naction: %s\nerror: %s", result.OK, result.Action, result.Error)
	}
	return string(b)
}

// toolResult converts a session call into an MCP result. Failures are
// reported as tool errors carrying the transcript, not protocol errors.
func toolResult(result Result, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(resultToText(result)), nil
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *Server) handleMode(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.session.Mode(ctx))
}

func (s *Server) handleButtons(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.session.Buttons(ctx))
}

func (s *Server) handleSelectMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	mode := StringParam(params, "mode", "")
	if mode == "" {
		return mcp.NewToolResultError("mode is required"), nil
	}
	return toolResult(s.session.SelectMode(ctx, mode))
}

func (s *Server) handleChannels(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.session.Channels(ctx))
}

func (s *Server) handleSelectChannel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	channel := StringParam(params, "channel", "")
	option := StringParam(params, "option", "")
	if channel == "" {
		return mcp.NewToolResultError("channel is required"), nil
	}
	return toolResult(s.session.SelectChannel(ctx, channel, option))
}

func (s *Server) handleGesture(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	gesture := StringParam(params, "gesture", "")
	if gesture == "" {
		return mcp.NewToolResultError("gesture is required"), nil
	}
	answers := ListParam(params, "answers")
	return toolResult(s.session.Gesture(ctx, gesture, answers))
}

func (s *Server) handleParseProgram(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := StringParam(params, "text", "")
	return mcp.NewToolResultText(resultToText(ParseProgram(text))), nil
}

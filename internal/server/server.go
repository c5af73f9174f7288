package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ewrenn/calc/internal/tools"
	"github.com/ewrenn/calc/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "calc-mcp"
	serverVersion = "0.1.0"
)

var _ types.Server = &CalcServer{}

// CalcServer represents the calculator MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	session   *tools.Session
	config    *types.Config
}

// NewCalcServer creates a new calculator MCP server
func NewCalcServer(config *types.Config) *CalcServer {
	mcpServer := server.NewMCPServer(serverName, serverVersion)
	session := tools.NewSession(config.InitialValue)

	return &CalcServer{
		mcpServer: mcpServer,
		session:   session,
		config:    config,
	}
}

// Serve registers the tools and serves the calculator MCP server over stdio
func (s *CalcServer) Serve(ctx context.Context) error {
	slog.Info("Starting calc MCP server",
		"initial_value", s.config.InitialValue,
		"log_level", s.config.LogLevel)

	s.registerTools()

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalcServer) registerTools() {
	calculateTool := tools.NewCalculateTool()
	s.mcpServer.AddTool(calculateTool.GetTool(), calculateTool.Handle)

	applyTool := tools.NewAccumulatorApplyTool(s.session)
	s.mcpServer.AddTool(applyTool.GetTool(), applyTool.Handle)

	valueTool := tools.NewAccumulatorValueTool(s.session)
	s.mcpServer.AddTool(valueTool.GetTool(), valueTool.Handle)

	resetTool := tools.NewAccumulatorResetTool(s.session)
	s.mcpServer.AddTool(resetTool.GetTool(), resetTool.Handle)
}

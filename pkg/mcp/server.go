package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/calcmcp/calculator-mcp/pkg/calculator"
	"github.com/calcmcp/calculator-mcp/pkg/logger"
	"github.com/calcmcp/calculator-mcp/pkg/types"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultName is the server name announced to MCP clients when none is configured
const DefaultName = "Calculator MCP"

// CalculatorServer encapsulates the MCP server with calculator tools
type CalculatorServer struct {
	server  *server.MCPServer
	calc    calculator.Calculator
	name    string
	version string
}

// NewCalculatorServer creates a new MCP server exposing the calculator
func NewCalculatorServer(name, version string) *CalculatorServer {
	if name == "" {
		name = DefaultName
	}

	s := &CalculatorServer{
		server:  server.NewMCPServer(name, version),
		calc:    calculator.New(),
		name:    name,
		version: version,
	}

	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *CalculatorServer) Server() *server.MCPServer {
	return s.server
}

// Calculator returns the calculator backing the tools
func (s *CalculatorServer) Calculator() calculator.Calculator {
	return s.calc
}

// registerTools registers all calculator tools
func (s *CalculatorServer) registerTools() {
	s.addPingTool()
	s.addStatusTool()
	s.addLimitsTool()

	s.addOperationTool(calculator.OpAdd, "Add two numbers", s.Add)
	s.addOperationTool(calculator.OpSubtract, "Subtract b from a", s.Subtract)
	s.addOperationTool(calculator.OpMultiply, "Multiply two numbers", s.Multiply)
	s.addOperationTool(calculator.OpDivide, "Divide a by b", s.Divide)
	s.addCalculateTool()
}

func (s *CalculatorServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

func (s *CalculatorServer) addStatusTool() {
	statusTool := mcp.NewTool("status",
		mcp.WithDescription("Report server version, operand bounds and supported operations"),
	)

	s.server.AddTool(statusTool, s.Status)
}

func (s *CalculatorServer) addLimitsTool() {
	limitsTool := mcp.NewTool("limits",
		mcp.WithDescription("Report the inclusive range every operand must fall in"),
	)

	s.server.AddTool(limitsTool, s.Limits)
}

// addOperationTool adds one of the four arithmetic tools, all sharing the a/b schema
func (s *CalculatorServer) addOperationTool(op calculator.Operation, description string, handler server.ToolHandlerFunc) {
	bounds := fmt.Sprintf("between %d and %d inclusive", calculator.MinValue, calculator.MaxValue)

	tool := mcp.NewTool(op.String(),
		mcp.WithDescription(description),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand, "+bounds),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand, "+bounds),
		),
	)

	s.server.AddTool(tool, handler)
}

func (s *CalculatorServer) addCalculateTool() {
	names := make([]string, 0, 4)
	for _, op := range calculator.Operations() {
		names = append(names, op.String())
	}

	calculateTool := mcp.NewTool("calculate",
		mcp.WithDescription("Apply an arithmetic operation to two numbers"),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("One of "+strings.Join(names, ", ")+", or its symbol"),
		),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)

	s.server.AddTool(calculateTool, s.Calculate)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *CalculatorServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.NewToolResultText("pong - Calculator MCP is connected!"), nil
}

// Status handles the status command
func (s *CalculatorServer) Status(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received status request")

	ops := calculator.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}

	response := types.StatusResponse{
		Server: types.ServerInfo{
			Name:    s.name,
			Version: s.version,
		},
		Calculator: types.CalculatorInfo{
			Min:        calculator.MinValue,
			Max:        calculator.MaxValue,
			Operations: names,
		},
	}

	return newToolResultJSON(response)
}

// Limits handles the limits command
func (s *CalculatorServer) Limits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received limits request")

	response := types.LimitsResponse{
		Min:     calculator.MinValue,
		Max:     calculator.MaxValue,
		Summary: fmt.Sprintf("Inputs must be between %d and %d", calculator.MinValue, calculator.MaxValue),
	}

	return newToolResultJSON(response)
}

// Add handles the add command
func (s *CalculatorServer) Add(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(calculator.OpAdd, request)
}

// Subtract handles the subtract command
func (s *CalculatorServer) Subtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(calculator.OpSubtract, request)
}

// Multiply handles the multiply command
func (s *CalculatorServer) Multiply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(calculator.OpMultiply, request)
}

// Divide handles the divide command
func (s *CalculatorServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(calculator.OpDivide, request)
}

// Calculate handles the calculate command
func (s *CalculatorServer) Calculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.Params.Arguments["operation"]
	if !ok || raw == nil {
		return newErrorResult("missing required argument %q", "operation"), nil
	}
	name, ok := raw.(string)
	if !ok {
		return newErrorResult("argument %q must be a string", "operation"), nil
	}

	op, err := calculator.ParseOperation(name)
	if err != nil {
		logger.Warn("Rejected calculate request", "error", err)
		return newErrorResult("%v", err), nil
	}

	return s.run(op, request)
}

// run parses the operands, applies op and renders the response
func (s *CalculatorServer) run(op calculator.Operation, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := uuid.NewString()
	logger.Debug("Received calculation request", "id", id, "operation", op)

	a, err := numberArgument(request, "a")
	if err != nil {
		return newErrorResult("%v", err), nil
	}
	b, err := numberArgument(request, "b")
	if err != nil {
		return newErrorResult("%v", err), nil
	}

	result, err := s.calc.Apply(op, a, b)
	if err != nil {
		logger.Warn("Calculation failed", "id", id, "operation", op, "a", a, "b", b, "error", err)
		return newErrorResult("%v", err), nil
	}

	response := types.CalculationResponse{
		ID:        id,
		Operation: op.String(),
		A:         a,
		B:         b,
		Result:    types.Number(result),
		Status:    types.StatusSuccess,
		Summary:   fmt.Sprintf("%s %s %s = %s", formatNumber(a), op.Symbol(), formatNumber(b), formatNumber(result)),
		Timestamp: time.Now(),
	}

	logger.Debug("Calculation complete", "id", id, "summary", response.Summary)

	return newToolResultJSON(response)
}

// numberArgument extracts a numeric argument. JSON clients send float64;
// strings are accepted for clients that quote numbers.
func numberArgument(request mcp.CallToolRequest, name string) (float64, error) {
	raw, ok := request.Params.Arguments[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("missing required argument %q", name)
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("argument %q must be a number", name)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("argument %q must be a number", name)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("argument %q must be a number", name)
	}
}

// formatNumber prints f the way encoding/json does: plain decimal, switching
// to exponent form below 1e-6 and from 1e21 up. ±Inf prints as "+Inf"/"-Inf".
func formatNumber(f float64) string {
	if abs := math.Abs(f); abs != 0 && !math.IsInf(f, 0) && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

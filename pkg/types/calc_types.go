package types

import (
	"time"
)

// StatusSuccess marks a completed calculation
const StatusSuccess = "success"

// CalculationResponse describes one arithmetic tool call
type CalculationResponse struct {
	ID        string    `json:"id"`        // Call ID, also attached to log entries
	Operation string    `json:"operation"` // add, subtract, multiply or divide
	A         float64   `json:"a"`         // First operand
	B         float64   `json:"b"`         // Second operand
	Result    Number    `json:"result"`    // Operation result, not range checked; "+Inf"/"-Inf" when not finite
	Status    string    `json:"status"`    // Always success; failures are IsError text results
	Summary   string    `json:"summary"`   // Human-readable form, e.g. "2 + 3 = 5"
	Timestamp time.Time `json:"timestamp"` // Operation timestamp
}

// LimitsResponse reports the inclusive operand bounds
type LimitsResponse struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Summary string  `json:"summary"`
}

// ServerInfo identifies the running server
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// CalculatorInfo describes what the calculator accepts
type CalculatorInfo struct {
	Min        float64  `json:"min"`
	Max        float64  `json:"max"`
	Operations []string `json:"operations"`
}

// StatusResponse is returned by the status tool
type StatusResponse struct {
	Server     ServerInfo     `json:"server"`
	Calculator CalculatorInfo `json:"calculator"`
}

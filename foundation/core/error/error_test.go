// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity mapping and
//              JSON rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-18 v0.2.0: Cases for Smpl codes and chain lookups

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.timestamp.IsZero() {
		t.Error("timestamp should be set on creation")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{name: "wrap nil error", err: nil, message: "context", wantNil: true},
		{
			name:    "wrap standard error",
			err:     errors.New("boom"),
			message: "compile",
			wantMsg: "compile: boom",
		},
		{
			name:    "wrap structured error",
			err:     New("inner").WithCode(CodeSmplParse),
			message: "outer",
			wantMsg: "outer: inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrap_InheritsClassification(t *testing.T) {
	inner := New("unexpected token").WithCode(CodeSmplParse)
	outer := Wrap(inner, "compile test.smp")

	if outer.Code() != CodeSmplParse {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeSmplParse)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
}

func TestWithCode_SeverityMapping(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSmplLex, SeverityLow},
		{CodeSmplParse, SeverityLow},
		{CodeSmplIntegerRange, SeverityLow},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithCode_Recode(t *testing.T) {
	err := New("x").WithCode(CodeInternal).WithCode(CodeSmplLex)
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}
	if err.Severity().ShouldAlert() {
		t.Error("low severity must not alert")
	}
}

func TestCode_IsSyntax(t *testing.T) {
	if !CodeSmplLex.IsSyntax() || !CodeSmplParse.IsSyntax() || !CodeSmplIntegerRange.IsSyntax() {
		t.Error("scanner and parser codes should be syntax codes")
	}
	if CodeConfigError.IsSyntax() || CodeSmplInputSize.IsSyntax() {
		t.Error("non-syntax codes reported as syntax")
	}
}

func TestHasCode_ThroughChain(t *testing.T) {
	base := New("bad token").WithCode(CodeSmplLex)
	wrapped := fmt.Errorf("cli: %w", Wrap(base, "compile"))

	if !HasCode(wrapped, CodeSmplLex) {
		t.Error("HasCode() should find the code through fmt.Errorf wrapping")
	}
	if HasCode(wrapped, CodeSmplParse) {
		t.Error("HasCode() reported a code that is not in the chain")
	}
	if GetCode(wrapped) != CodeSmplLex {
		t.Errorf("GetCode() = %v, want %v", GetCode(wrapped), CodeSmplLex)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "top")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}
	if lone := New("alone"); lone.RootCause() != lone {
		t.Error("RootCause() of an unwrapped error should be the error itself")
	}
}

func TestDetails_Copy(t *testing.T) {
	err := New("x").WithDetail("line", 3).WithDetails(map[string]interface{}{"column": 7})
	details := err.Details()
	details["line"] = 99

	if err.Details()["line"] != 3 {
		t.Error("Details() must return a copy")
	}
	if err.Details()["column"] != 7 {
		t.Error("WithDetails() lost a value")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("cause"), "msg").
		WithCode(CodeSmplParse).
		WithOperation("parse").
		WithRequestID("req-1").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{"Error: msg", "Code: SMPL_PARSE", "Operation: parse", "RequestID: req-1", "Details: {a=1, b=2}", "Cause: cause"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("unexpected character").
		WithCode(CodeSmplLex).
		WithOperation("tokenize").
		WithDetail("offset", 8)

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var got map[string]interface{}
	if jerr := json.Unmarshal(raw, &got); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}
	if got["code"] != "SMPL_LEX" {
		t.Errorf("code = %v, want SMPL_LEX", got["code"])
	}
	if got["severity"] != "low" {
		t.Errorf("severity = %v, want low", got["severity"])
	}
	if got["operation"] != "tokenize" {
		t.Errorf("operation = %v, want tokenize", got["operation"])
	}
}

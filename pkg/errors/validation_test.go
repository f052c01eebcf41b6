package errors

import (
	"strings"
	"testing"
	"time"
)

func TestValidateAlgorithmName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "bfs", false},
		{"kebab", "reverse-k-group", false},
		{"digits", "sum3", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"uppercase", "BFS", true},
		{"leading dash", "-bfs", true},
		{"trailing dash", "bfs-", true},
		{"double dash", "two--sum", true},
		{"path traversal", "../etc", true},
		{"space", "two sum", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAlgorithmName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAlgorithmName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateAlgorithmName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateValues(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		wantErr bool
	}{
		{"nil", nil, false},
		{"small", []int{3, -7, 12}, false},
		{"at limit", []int{MaxValue, -MaxValue}, false},
		{"max length", make([]int, MaxValues), false},

		{"too many", make([]int, MaxValues+1), true},
		{"too large", []int{1, MaxValue + 1}, true},
		{"too small", []int{-MaxValue - 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValues(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateValues() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	if err := ValidateText(strings.Repeat("é", MaxTextLength)); err != nil {
		t.Errorf("ValidateText(max runes) = %v, want nil", err)
	}
	if err := ValidateText(strings.Repeat("a", MaxTextLength+1)); err == nil {
		t.Error("ValidateText(too long) = nil, want error")
	}
}

func TestValidateSpeed(t *testing.T) {
	tests := []struct {
		in      time.Duration
		wantErr bool
	}{
		{600 * time.Millisecond, false},
		{time.Millisecond, false},
		{time.Hour, false},
		{0, true},
		{-time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			err := ValidateSpeed(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSpeed(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat("json", "table", "json"); err != nil {
		t.Errorf("ValidateFormat(json) = %v, want nil", err)
	}
	err := ValidateFormat("xml", "table", "json")
	if err == nil {
		t.Fatal("ValidateFormat(xml) = nil, want error")
	}
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(xml) code = %v, want %v", GetCode(err), ErrCodeInvalidFormat)
	}
}

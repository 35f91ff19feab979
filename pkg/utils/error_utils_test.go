/*
 * movie-night is a Discord bot for browsing, discussing and tracking movies together.
 * Copyright (C) 2025  Lucas Duport
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package utils

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestGetErrorDetailLevel(t *testing.T) {
	tests := []struct {
		name          string
		envValue      string
		expectedLevel ErrorDetailLevel
	}{
		{
			name:          "none detail level",
			envValue:      "none",
			expectedLevel: ErrorDetailNone,
		},
		{
			name:          "full detail level",
			envValue:      "full",
			expectedLevel: ErrorDetailFull,
		},
		{
			name:          "simple detail level (default)",
			envValue:      "simple",
			expectedLevel: ErrorDetailSimple,
		},
		{
			name:          "empty env defaults to simple",
			envValue:      "",
			expectedLevel: ErrorDetailSimple,
		},
		{
			name:          "invalid value defaults to simple",
			envValue:      "invalid",
			expectedLevel: ErrorDetailSimple,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("ERROR_DETAIL_LEVEL", tt.envValue)
			defer os.Unsetenv("ERROR_DETAIL_LEVEL")

			if got := getErrorDetailLevel(); got != tt.expectedLevel {
				t.Errorf("getErrorDetailLevel() = %v, want %v", got, tt.expectedLevel)
			}
		})
	}
}

func TestErrorWithLocation(t *testing.T) {
	os.Setenv("ERROR_DETAIL_LEVEL", "simple")
	defer os.Unsetenv("ERROR_DETAIL_LEVEL")

	if got := ErrorWithLocation(nil); got != nil {
		t.Errorf("ErrorWithLocation(nil) = %v, want nil", got)
	}

	err := errors.New("boom")
	wrapped := ErrorWithLocation(err)
	if wrapped == nil {
		t.Fatal("ErrorWithLocation returned nil for non-nil error")
	}
	if !strings.Contains(wrapped.Error(), "boom") {
		t.Errorf("wrapped error %q does not contain original message", wrapped.Error())
	}
	if !strings.Contains(wrapped.Error(), "error_utils_test.go") {
		t.Errorf("wrapped error %q does not contain caller file", wrapped.Error())
	}
}

func TestErrorWithLocationFullDetail(t *testing.T) {
	os.Setenv("ERROR_DETAIL_LEVEL", "full")
	defer os.Unsetenv("ERROR_DETAIL_LEVEL")

	wrapped := ErrorWithLocation(errors.New("boom"))
	if !strings.Contains(wrapped.Error(), "Stack Trace:") {
		t.Errorf("full detail error %q does not contain a stack trace", wrapped.Error())
	}
}

func TestMaskString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "[empty]"},
		{name: "short", input: "abc", want: "a******"},
		{name: "long", input: "abcdefghijkl", want: "abcd...ijkl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskString(tt.input); got != tt.want {
				t.Errorf("MaskString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimTo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{name: "short enough", input: "hello", n: 10, want: "hello"},
		{name: "exact", input: "hello", n: 5, want: "hello"},
		{name: "truncated", input: "hello world", n: 8, want: "hello..."},
		{name: "tiny budget", input: "hello", n: 2, want: "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimTo(tt.input, tt.n); got != tt.want {
				t.Errorf("TrimTo(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

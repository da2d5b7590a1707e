package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	tests := map[string]struct {
		givenArgs  []string
		givenStdin string
		wantCode   int
		wantStderr string
	}{
		"match":                 {givenArgs: []string{"-E", "a"}, givenStdin: "banana\n", wantCode: 0},
		"no match":              {givenArgs: []string{"-E", "z"}, givenStdin: "banana\n", wantCode: 1},
		"newline is not input":  {givenArgs: []string{"-E", "na$"}, givenStdin: "banana\n", wantCode: 0},
		"crlf is not input":     {givenArgs: []string{"-E", "^log$"}, givenStdin: "log\r\n", wantCode: 0},
		"only first line":       {givenArgs: []string{"-E", "z"}, givenStdin: "banana\nzebra\n", wantCode: 1},
		"no trailing newline":   {givenArgs: []string{"-E", `\d`}, givenStdin: "route 66", wantCode: 0},
		"empty input":           {givenArgs: []string{"-E", "^$"}, givenStdin: "", wantCode: 0},
		"long flag":             {givenArgs: []string{"--extended", "ca+t"}, givenStdin: "caaats\n", wantCode: 0},
		"unsupported escape":    {givenArgs: []string{"-E", `\x`}, givenStdin: "abc\n", wantCode: 1, wantStderr: "unsupported escape"},
		"malformed pattern":     {givenArgs: []string{"-E", `\`}, givenStdin: "abc\n", wantCode: 1, wantStderr: "malformed pattern"},
		"missing extended flag": {givenArgs: []string{"a"}, givenStdin: "abc\n", wantCode: 1, wantStderr: "error:"},
		"missing pattern":       {givenArgs: []string{"-E"}, givenStdin: "abc\n", wantCode: 1, wantStderr: "error:"},
		"diagnostics uncolored": {givenArgs: []string{"-E", "--color=never", `\x`}, givenStdin: "abc\n", wantCode: 1, wantStderr: "error: unsupported escape"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// given
			noColor := color.NoColor
			t.Cleanup(func() { color.NoColor = noColor })
			var stdout, stderr bytes.Buffer

			// when
			gotCode := run(tt.givenArgs, strings.NewReader(tt.givenStdin), &stdout, &stderr)

			// then
			if d := cmp.Diff(tt.wantCode, gotCode); d != "" {
				t.Errorf("got diff (-want +got):\n%s", d)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tt.wantStderr)
			}
			if tt.wantStderr == "" && stderr.Len() != 0 {
				t.Errorf("unexpected stderr %q", stderr.String())
			}
		})
	}
}

func TestRunColoredDiagnostics(t *testing.T) {
	// given
	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })
	var stdout, stderr bytes.Buffer

	// when
	gotCode := run([]string{"-E", "--color=always", `\x`}, strings.NewReader("abc\n"), &stdout, &stderr)

	// then
	if d := cmp.Diff(1, gotCode); d != "" {
		t.Errorf("got diff (-want +got):\n%s", d)
	}
	if !strings.Contains(stderr.String(), "\x1b[") {
		t.Errorf("stderr %q is not colored", stderr.String())
	}
}

func TestReadLineError(t *testing.T) {
	// when
	_, err := readLine(iotest.ErrReader(errors.New("boom")))

	// then
	if err == nil || err.Error() != "boom" {
		t.Errorf("got error %v, want boom", err)
	}
}

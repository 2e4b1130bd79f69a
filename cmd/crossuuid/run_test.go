package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	configURL := "mem://localhost/cmd/crossuuid.yaml"
	assert.NoError(t, fs.Upload(ctx, configURL, file.DefaultFileOsMode, strings.NewReader("source: gofrs\ncount: 2\n")))
	brokenURL := "mem://localhost/cmd/broken-kernel-uuid"
	assert.NoError(t, fs.Upload(ctx, brokenURL, file.DefaultFileOsMode, strings.NewReader("garbage")))
	brokenConfigURL := "mem://localhost/cmd/broken.yaml"
	assert.NoError(t, fs.Upload(ctx, brokenConfigURL, file.DefaultFileOsMode, strings.NewReader("source: system\nsystemURL: "+brokenURL+"\n")))
	fallbackConfigURL := "mem://localhost/cmd/fallback.yaml"
	assert.NoError(t, fs.Upload(ctx, fallbackConfigURL, file.DefaultFileOsMode, strings.NewReader("source: system\nzeroFallback: true\nsystemURL: "+brokenURL+"\n")))

	testCases := []struct {
		description string
		args        []string
		expectCode  int
		expectOut   []string
		expectErr   string
		expectLines int
	}{
		{
			description: "self check",
			args:        []string{"-source", "random", "check"},
			expectOut:   []string{"UUID 1(36): ", "UUID 2(36): "},
		},
		{
			description: "self check is the default command",
			args:        []string{"-source", "library"},
			expectOut:   []string{"UUID 1(36): "},
		},
		{
			description: "gen from config",
			args:        []string{"-config", configURL, "gen"},
			expectLines: 2,
		},
		{
			description: "gen count flag overrides config",
			args:        []string{"-config", configURL, "-n", "4", "gen"},
			expectLines: 4,
		},
		{
			description: "lenient parse",
			args:        []string{"parse", "000102030405060708090A0B0C0D0E0F----"},
			expectOut:   []string{"00010203-0405-0607-0809-0a0b0c0d0e0f"},
		},
		{
			description: "strict parse rejects missing hyphens",
			args:        []string{"-strict", "parse", "000102030405060708090A0B0C0D0E0F----"},
			expectCode:  1,
			expectErr:   "invalid input",
		},
		{
			description: "failing source",
			args:        []string{"-config", brokenConfigURL, "check"},
			expectCode:  1,
			expectErr:   "generate: crossuuid: identifier source unavailable",
		},
		{
			description: "zero fallback passes the self check with a zero uuid",
			args:        []string{"-config", fallbackConfigURL, "check"},
			expectOut:   []string{"UUID 1(36): 00000000-0000-0000-0000-000000000000"},
			expectErr:   "using zero UUID",
		},
		{
			description: "unknown source",
			args:        []string{"-source", "quantum"},
			expectCode:  1,
			expectErr:   "unsupported source",
		},
		{
			description: "unknown command",
			args:        []string{"-source", "random", "frobnicate"},
			expectCode:  1,
			expectErr:   "unknown command",
		},
		{
			description: "parse without input",
			args:        []string{"parse"},
			expectCode:  1,
			expectErr:   "no input",
		},
	}

	for _, testCase := range testCases {
		var stdout, stderr bytes.Buffer
		code := run(testCase.args, &stdout, &stderr)
		assert.Equal(t, testCase.expectCode, code, testCase.description+": "+stderr.String())
		for _, expected := range testCase.expectOut {
			assert.Contains(t, stdout.String(), expected, testCase.description)
		}
		if testCase.expectErr != "" {
			assert.Contains(t, stderr.String(), testCase.expectErr, testCase.description)
		}
		if testCase.expectLines > 0 {
			lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
			assert.Len(t, lines, testCase.expectLines, testCase.description)
		}
	}
}

func TestRun_Trace(t *testing.T) {
	traceFile := filepath.Join(t.TempDir(), "trace.json")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-source", "random", "-trace", traceFile}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(traceFile)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "fromString")
	assert.NotContains(t, stderr.String(), "failed to shutdown tracing")

	second := filepath.Join(t.TempDir(), "second.json")
	stdout.Reset()
	code = run([]string{"-source", "random", "-trace", second}, &stdout, &stderr)
	assert.Equal(t, 0, code, stderr.String())
	data, err = os.ReadFile(second)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "generate", "each run should trace into its own file")
}

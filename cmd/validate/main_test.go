package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amp-labs/amp-validator/envutil"
	"github.com/amp-labs/amp-validator/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, env map[string]string, stdin string, args ...string) (int, string) {
	t.Helper()

	ctx := envutil.WithEnvOverrides(context.Background(), env)

	var stdout, stderr bytes.Buffer

	code := run(ctx, args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String()
}

func TestRun_AllPass(t *testing.T) {
	code, out := runWith(t, map[string]string{"VALIDATE_MIN_LENGTH": "2"}, "", "abc", "de")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "ok\tabc\nok\tde\n", out)
}

func TestRun_AnyFailure(t *testing.T) {
	code, out := runWith(t, map[string]string{"VALIDATE_MIN_LENGTH": "2"}, "", "abc", "a")

	assert.Equal(t, exitInvalid, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ok\tabc", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "FAIL\ta\t"), lines[1])
}

func TestRun_NonEmptyByDefault(t *testing.T) {
	code, _ := runWith(t, nil, "", "")
	assert.Equal(t, exitInvalid, code)

	code, _ = runWith(t, map[string]string{"VALIDATE_NON_EMPTY": "false"}, "", "")
	assert.Equal(t, exitOK, code)
}

func TestRun_Stdin(t *testing.T) {
	code, out := runWith(t, map[string]string{"VALIDATE_ONE_OF": "red, green"}, "red\r\ngreen\n")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "ok\tred\nok\tgreen\n", out)
}

func TestRun_JSON(t *testing.T) {
	code, out := runWith(t, map[string]string{"VALIDATE_FORMAT": "uuid"}, "",
		"-json", "f47ac10b-58cc-4372-a567-0e02b2c3d479", "nope")

	assert.Equal(t, exitInvalid, code)

	dec := json.NewDecoder(strings.NewReader(out))

	var first, second report

	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.True(t, first.Valid)
	assert.Empty(t, first.Failures)

	assert.False(t, second.Valid)
	assert.Equal(t, "nope", second.Value)
	require.Len(t, second.Failures, 1)
	assert.Equal(t, rules.CodeUUID, second.Failures[0].Code)
}

func TestRun_ReportsEveryFailure(t *testing.T) {
	code, out := runWith(t, map[string]string{
		"VALIDATE_MAX_LENGTH": "3",
		"VALIDATE_PATTERN":    "^[0-9]+$",
	}, "", "-json", "abcd")

	assert.Equal(t, exitInvalid, code)

	var rep report

	require.NoError(t, json.Unmarshal([]byte(out), &rep))

	codes := make([]string, 0, len(rep.Failures))
	for _, f := range rep.Failures {
		codes = append(codes, f.Code)
	}

	assert.Equal(t, []string{rules.CodeTooLong, rules.CodePattern}, codes)
}

func TestRun_BadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown format", env: map[string]string{"VALIDATE_FORMAT": "email"}},
		{name: "bad pattern", env: map[string]string{"VALIDATE_PATTERN": "("}},
		{name: "negative length", env: map[string]string{"VALIDATE_MIN_LENGTH": "-3"}},
		{name: "non-numeric length", env: map[string]string{"VALIDATE_MAX_LENGTH": "ten"}},
		{name: "min above max", env: map[string]string{"VALIDATE_MIN_LENGTH": "5", "VALIDATE_MAX_LENGTH": "2"}},
		{name: "bad bool", env: map[string]string{"VALIDATE_NON_EMPTY": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := runWith(t, tt.env, "", "value")

			assert.Equal(t, exitConfig, code)
			assert.Empty(t, out)
		})
	}
}

func TestRun_BadFlag(t *testing.T) {
	code, _ := runWith(t, nil, "", "-nope")
	assert.Equal(t, exitConfig, code)
}

func TestRun_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.env")
	require.NoError(t, os.WriteFile(path, []byte("VALIDATE_ONE_OF=red,green\n"), 0o600))

	code, out := runWith(t, nil, "", "-env-file", path, "red", "blue")

	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, out, "ok\tred\n")
	assert.Contains(t, out, "FAIL\tblue\t")
}

func TestRun_MissingEnvFile(t *testing.T) {
	code, _ := runWith(t, nil, "", "-env-file", filepath.Join(t.TempDir(), "missing.env"), "x")
	assert.Equal(t, exitConfig, code)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(context.Background())
	require.NoError(t, err)

	assert.True(t, cfg.NonEmpty)
	assert.Equal(t, -1, cfg.MinLength)
	assert.Equal(t, -1, cfg.MaxLength)
	assert.Empty(t, cfg.Pattern)
	assert.Empty(t, cfg.Format)
	assert.Empty(t, cfg.OneOf)
}

func TestRun_Version(t *testing.T) {
	code, out := runWith(t, nil, "", "-version")

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "validate dev\n", out)
}

func TestRun_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer

	code := run(ctx, []string{"a", "b"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitInterrupted, code)
	assert.Empty(t, stdout.String())
}

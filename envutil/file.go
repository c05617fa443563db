package envutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile loads configuration values from a file. The format follows the
// extension (case-insensitive):
//   - .env is KEY=VALUE lines, parsed by godotenv
//   - .json and .yml/.yaml need a top-level "env" object of string values
func LoadEnvFile(path string) (map[string]string, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(fileInfo.Name())

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".json"):
		return loadStructuredFile(path, json.Unmarshal)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadStructuredFile(path, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, fileInfo.Name())
	}
}

// WithEnvFile loads path and layers its values over the environment for
// readers using the returned context.
func WithEnvFile(ctx context.Context, path string) (context.Context, error) {
	vars, err := LoadEnvFile(path)
	if err != nil {
		return ctx, fmt.Errorf("loading env file %s: %w", path, err)
	}

	return WithEnvOverrides(ctx, vars), nil
}

// envFile is the shared shape of the JSON and YAML formats.
type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadStructuredFile(path string, unmarshal func([]byte, any) error) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}

	if err := unmarshal(bts, out); err != nil {
		return nil, err
	}

	return out.Env, nil
}

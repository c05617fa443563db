package main

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/amp-labs/amp-validator/envutil"
	"github.com/amp-labs/amp-validator/rules"
	"github.com/amp-labs/amp-validator/validate"
)

const formatUUID = "uuid"

var errBadConfig = errors.New("invalid rule configuration")

// config is the rule chain requested through VALIDATE_* settings.
type config struct {
	NonEmpty  bool
	MinLength int
	MaxLength int
	Pattern   string
	Format    string
	OneOf     []string
}

func loadConfig(ctx context.Context) (*config, error) {
	var (
		cfg  config
		errs []error
	)

	nonNegative := envutil.Validate(validate.AsCheckFunc(rules.Min(0)))

	cfg.NonEmpty, errs = collect(errs, envutil.Bool(ctx, "VALIDATE_NON_EMPTY", envutil.Default(true)))
	cfg.MinLength, errs = collectOptional(errs, envutil.Int(ctx, "VALIDATE_MIN_LENGTH", nonNegative), -1)
	cfg.MaxLength, errs = collectOptional(errs, envutil.Int(ctx, "VALIDATE_MAX_LENGTH", nonNegative), -1)
	cfg.Pattern, errs = collectOptional(errs, envutil.String(ctx, "VALIDATE_PATTERN",
		envutil.Validate(func(p string) error {
			_, err := regexp.Compile(p)

			return err
		})), "")
	cfg.Format, errs = collectOptional(errs, envutil.String(ctx, "VALIDATE_FORMAT",
		envutil.Validate(validate.AsCheckFunc(rules.OneOf("", formatUUID)))), "")
	cfg.OneOf, errs = collectOptional(errs, envutil.StringList(ctx, "VALIDATE_ONE_OF"), nil)

	if cfg.MinLength >= 0 && cfg.MaxLength >= 0 && cfg.MinLength > cfg.MaxLength {
		errs = append(errs, fmt.Errorf("VALIDATE_MIN_LENGTH %d exceeds VALIDATE_MAX_LENGTH %d",
			cfg.MinLength, cfg.MaxLength))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadConfig, err)
	}

	return &cfg, nil
}

func collect[T any](errs []error, rdr envutil.Reader[T]) (T, []error) {
	value, err := rdr.Value()
	if err != nil {
		errs = append(errs, err)
	}

	return value, errs
}

// collectOptional is collect for keys that may be left unset, in which case
// unset is returned.
func collectOptional[T any](errs []error, rdr envutil.Reader[T], unset T) (T, []error) {
	if !rdr.HasValue() && !rdr.HasError() {
		return unset, errs
	}

	return collect(errs, rdr)
}

// validator builds the rule chain. Every configured rule runs, so a value
// reports all of its problems at once.
func (c *config) validator() validate.Validator[string] {
	var chain []validate.Validator[string]

	if c.NonEmpty {
		chain = append(chain, rules.NonEmpty())
	}

	if c.MinLength >= 0 {
		chain = append(chain, rules.MinLength(c.MinLength))
	}

	if c.MaxLength >= 0 {
		chain = append(chain, rules.MaxLength(c.MaxLength))
	}

	if c.Pattern != "" {
		chain = append(chain, rules.Matches(c.Pattern, ""))
	}

	if c.Format == formatUUID {
		chain = append(chain, rules.UUID())
	}

	if len(c.OneOf) > 0 {
		chain = append(chain, rules.OneOf(c.OneOf...))
	}

	return validate.Named(appName, validate.All(chain...))
}

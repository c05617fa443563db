package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-validator/spans"
	"github.com/amp-labs/amp-validator/validate"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// report is the JSON line printed per value with -json.
type report struct {
	Value    string             `json:"value"`
	Valid    bool               `json:"valid"`
	Failures []validate.Failure `json:"failures,omitempty"`
}

// checkValue validates one value and writes its report, inside a
// "validate.cli.value" span. The span only turns to Error when the report
// can't be written; a failed value is an ordinary outcome.
func checkValue(
	ctx context.Context, v validate.Validator[string], index int, value string, w io.Writer, asJSON bool,
) (validate.Result, error) {
	return spans.StartValErr[validate.Result](ctx, "validate.cli.value",
		spans.WithSpanDecorator(func(span trace.Span) {
			span.SetAttributes(
				attribute.Int("cli.value.index", index),
				attribute.Int("cli.value.bytes", len(value)),
			)
		}),
		spans.WithSuccessMessage("value checked"),
		spans.WithErrorMessage("writing result"),
	).Enter(func(ctx context.Context, _ trace.Span) (validate.Result, error) {
		res := validate.RunContext(ctx, v, value)

		return res, writeResult(w, value, res, asJSON)
	})
}

func writeResult(w io.Writer, value string, res validate.Result, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(report{
			Value:    value,
			Valid:    res.IsSuccess(),
			Failures: res.Failures(),
		})
	}

	if res.IsSuccess() {
		_, err := fmt.Fprintf(w, "ok\t%s\n", value)

		return err
	}

	_, err := fmt.Fprintf(w, "FAIL\t%s\t%s\n", value, strings.Join(res.Messages(), "; "))

	return err
}

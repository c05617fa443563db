package main

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// nextValue returns the next value to check. ok is false once the input is
// exhausted; err is set when the input can't be read or ctx is done.
type nextValue func(ctx context.Context) (value string, ok bool, err error)

func argValues(args []string) nextValue {
	return func(context.Context) (string, bool, error) {
		if len(args) == 0 {
			return "", false, nil
		}

		value := args[0]
		args = args[1:]

		return value, true, nil
	}
}

type scannedLine struct {
	text string
	err  error
}

// stdinValues scans r on its own goroutine and hands lines over one at a
// time, so a read blocked on a quiet pipe never delays an interrupt. The
// goroutine stops at EOF, on a read error or when ctx is done; a Scan that
// is already blocked ends with the process.
func stdinValues(ctx context.Context, r io.Reader) nextValue {
	lines := make(chan scannedLine)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scannedLine{text: strings.TrimRight(scanner.Text(), "\r")}:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			select {
			case lines <- scannedLine{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	return func(ctx context.Context) (string, bool, error) {
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case line, ok := <-lines:
			switch {
			case !ok:
				return "", false, nil
			case line.err != nil:
				return "", false, line.err
			default:
				return line.text, true, nil
			}
		}
	}
}

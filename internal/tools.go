package internal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// Prompt writes prompt to rw and reads one trimmed line back, retrying
// until the validator accepts the input or the try budget runs out.
func Prompt(rw io.ReadWriter, prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	br := bufio.NewReader(rw)

	tries := 0
	for {
		_, err := rw.Write([]byte(prompt))
		if err != nil {
			return "", err
		}

		input, err := br.ReadString('\n')
		if err != nil && input == "" {
			return "", err
		}
		input = strings.TrimSpace(input)

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				rw.Write([]byte(msg))

				tries++
				if config.tries > 0 && config.tries == tries {
					rw.Write([]byte("too many tries\n"))
					return "", fmt.Errorf("too many tries")
				}

				continue
			}
		}

		return input, nil
	}
}

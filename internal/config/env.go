// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via the `env` and
// `envPrefix` tags on [StructuredConfig] and its nested types.
//
// Every failing variable is reported, not only the first one, so a broken
// deployment can be fixed in one pass.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggregate env.AggregateError
	if errors.As(err, &aggregate) && len(aggregate.Errors) > 1 {
		msgs := make([]string, 0, len(aggregate.Errors))
		for _, e := range aggregate.Errors {
			msgs = append(msgs, e.Error())
		}
		return fmt.Errorf("error getting env configs (%d variables): %s: %w", len(msgs), strings.Join(msgs, "; "), err)
	}

	return fmt.Errorf("error getting env configs: %w", err)
}

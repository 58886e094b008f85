// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/viper"
)

// maxConfigFileBytes bounds config parsing so a runaway file cannot exhaust
// memory before dispatch even starts.
const maxConfigFileBytes = 1 << 20

// loadCUEIntoViper parses a CUE config file, validates it against the
// embedded #Config schema, and merges its contents into Viper.
//
// The decode target is a map rather than a struct: Viper owns precedence
// merging across defaults, file, and environment, so the file layer has to
// arrive as loose keys. Concrete(false) is used because every schema field
// is optional.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxConfigFileBytes {
		return fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileBytes)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return formatCUEError(userValue.Err(), path)
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return formatCUEError(err, path)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return formatCUEError(err, path)
	}

	return v.MergeConfigMap(configMap)
}

// formatCUEError rewrites a CUE error as "<file>: <path>: <message>" so the
// offending value can be found without reading CUE stack traces.
func formatCUEError(err error, path string) error {
	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", path, err)
	}

	var msgs []string
	for _, ce := range cueErrs {
		fieldPath := strings.Join(ce.Path(), ".")
		format, args := ce.Msg()
		msg := fmt.Sprintf(format, args...)
		if fieldPath != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", fieldPath, msg))
		} else {
			msgs = append(msgs, msg)
		}
	}

	return fmt.Errorf("%s: %s", path, strings.Join(msgs, "; "))
}

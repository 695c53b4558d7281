// Package yamlutil decodes the YAML files burst reads.
package yamlutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// MaxInputSize bounds a YAML document (1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func checkSize(n int) error {
	if n == 0 {
		return ErrNilData
	}
	if n > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, n, MaxInputSize)
	}
	return nil
}

// UnmarshalStrict decodes data into v and rejects fields v does not declare.
func UnmarshalStrict(data []byte, v any) error {
	if v == nil {
		return ErrNilDestination
	}
	if err := checkSize(len(data)); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// ReadStrict is UnmarshalStrict over a reader. At most MaxInputSize+1 bytes
// are read.
func ReadStrict(r io.Reader, v any) error {
	if v == nil {
		return ErrNilDestination
	}
	data, err := io.ReadAll(io.LimitReader(r, int64(MaxInputSize)+1))
	if err != nil {
		return fmt.Errorf("yamlutil: reading: %w", err)
	}
	return UnmarshalStrict(data, v)
}

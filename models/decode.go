package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// DecodeDocument maps a store document onto a typed model. Numbers of any width
// and RFC3339 timestamps are accepted so the same models work for every backend.
func DecodeDocument(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

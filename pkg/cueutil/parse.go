// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ParseResult holds a decoded document.
type ParseResult[T any] struct {
	// Value is the decoded document.
	Value *T
	// Unified is the document unified with its schema definition.
	Unified cue.Value
}

// ParseAndDecode compiles schema, unifies data with the definition at
// schemaPath (e.g. "#Config"), validates the result and decodes it into T.
func ParseAndDecode[T any](schema, data []byte, schemaPath string, opts ...Option) (*ParseResult[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	filename := o.filename
	if filename == "" {
		filename = "<input>"
	}

	if err := CheckFileSize(data, o.maxFileSize, filename); err != nil {
		return nil, err
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", err)
	}
	def := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, err)
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if err := userValue.Err(); err != nil {
		return nil, FormatError(err, filename)
	}

	unified := def.Unify(userValue)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return nil, FormatError(err, filename)
	}

	var result T
	if err := unified.Decode(&result); err != nil {
		return nil, FormatError(err, filename)
	}
	return &ParseResult[T]{Value: &result, Unified: unified}, nil
}

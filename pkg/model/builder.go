package model

import (
	"github.com/goliatone/go-tableform/internal/model"
	"github.com/goliatone/go-tableform/pkg/catalog"
)

// Builder converts catalogue fields into default questions.
type Builder interface {
	Build(field catalog.Field) (Question, error)
	BuildAll(fields []catalog.Field) ([]Question, error)
	Key(fieldID string) string
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	labeler   func(string) string
	keyPrefix string
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) BuilderOption {
	return func(opts *builderOptions) {
		opts.labeler = labeler
	}
}

// WithKeyPrefix overrides the prefix used to derive question keys from field
// ids (default "field_").
func WithKeyPrefix(prefix string) BuilderOption {
	return func(opts *builderOptions) {
		opts.keyPrefix = prefix
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := model.Options{}
	if cfg.labeler != nil {
		internalOpts.Labeler = cfg.labeler
	}
	if cfg.keyPrefix != "" {
		internalOpts.KeyPrefix = cfg.keyPrefix
	}

	return model.New(internalOpts)
}

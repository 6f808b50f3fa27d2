package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"phpcompat.dev/pkg/phpcompat/internal/adapter"
	m "phpcompat.dev/pkg/phpcompat/internal/model"
)

// OptionsService loads and saves the process-wide scan options. Invalid
// values are clamped to their defaults, never rejected.
type OptionsService interface {
	Load(ctx context.Context) (m.Options, error)
	// Save clamps options, persists them and returns what was stored.
	Save(ctx context.Context, options m.Options) (m.Options, error)
}

type optionsService struct {
	store    adapter.OptionsStore
	validate *validator.Validate
}

// NewOptionsService constructs an OptionsService backed by store.
func NewOptionsService(store adapter.OptionsStore) OptionsService {
	return &optionsService{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *optionsService) Load(ctx context.Context) (m.Options, error) {
	options, err := s.store.Load(ctx)
	if err != nil {
		return m.Options{}, fmt.Errorf("load options: %w", err)
	}

	return ClampOptions(s.validate, options), nil
}

func (s *optionsService) Save(ctx context.Context, options m.Options) (m.Options, error) {
	clamped := ClampOptions(s.validate, options)

	if err := s.store.Save(ctx, clamped); err != nil {
		return m.Options{}, fmt.Errorf("save options: %w", err)
	}

	slog.Debug("Saved options", "options", clamped)

	return clamped, nil
}

// ClampOptions resets every field that fails its validation tag to the
// field's default.
func ClampOptions(validate *validator.Validate, options m.Options) m.Options {
	err := validate.Struct(options)
	if err == nil {
		return options
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		slog.Warn("Options validation failed, using defaults", "error", err)
		return m.DefaultOptions()
	}

	defaults := m.DefaultOptions()

	for _, fieldErr := range fieldErrors {
		slog.Debug("Clamping invalid option", "field", fieldErr.Field(), "value", fieldErr.Value())

		switch fieldErr.StructField() {
		case "ReportMode":
			options.ReportMode = defaults.ReportMode
		case "BatchSize":
			options.BatchSize = defaults.BatchSize
		case "PHPVersion":
			options.PHPVersion = defaults.PHPVersion
		}
	}

	return options
}

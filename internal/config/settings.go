package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/speakscore/internal/model"
)

// Defaults applied before any source.
const (
	DefaultMode     = model.ModeConversational
	DefaultDuration = 2 * time.Minute
	DefaultFormat   = "text"
	DefaultLogLevel = "warn"
)

var validate = validator.New()

// Defaults returns settings with every default applied.
func Defaults() model.Settings {
	return model.Settings{
		Mode:     DefaultMode,
		Duration: DefaultDuration,
		Format:   DefaultFormat,
		Color:    true,
		LogLevel: DefaultLogLevel,
	}
}

// Resolve layers the config file and then the environment over the defaults
// and validates the result. Flags are applied by the caller afterwards.
func Resolve(file FileConfig, env EnvConfig) (model.Settings, error) {
	s := Defaults()

	if file.Scoring.Mode != nil {
		s.Mode = ParseMode(*file.Scoring.Mode, "scoring.mode")
	}
	if file.Scoring.Duration != nil {
		d, err := time.ParseDuration(*file.Scoring.Duration)
		if err != nil {
			return model.Settings{}, fmt.Errorf("invalid scoring.duration: %w", err)
		}
		s.Duration = d
	}
	applyString(&s.Format, file.Output.Format)
	applyBool(&s.Color, file.Output.Color)
	applyString(&s.LogLevel, file.Log.Level)
	applyString(&s.FillersFile, file.Lexicon.Fillers)
	applyString(&s.TransitionsFile, file.Lexicon.Transitions)
	applyString(&s.ReferencesFile, file.Lexicon.References)

	if env.Mode != nil {
		s.Mode = ParseMode(*env.Mode, EnvPrefix+"_MODE")
	}
	if env.Duration != nil {
		s.Duration = *env.Duration
	}
	applyString(&s.Format, env.Format)
	applyBool(&s.Color, env.Color)
	applyString(&s.LogLevel, env.LogLevel)
	applyString(&s.FillersFile, env.Fillers)
	applyString(&s.TransitionsFile, env.Transitions)
	applyString(&s.ReferencesFile, env.References)

	if err := Validate(s); err != nil {
		return model.Settings{}, err
	}
	return s, nil
}

// ParseMode maps a mode literal to a Mode. Unknown literals fall back to
// conversational with a warning naming where the value came from.
func ParseMode(raw, source string) model.Mode {
	mode := model.Mode(strings.ToLower(strings.TrimSpace(raw)))
	switch mode {
	case model.ModeConversational, model.ModeSingle:
		return mode
	}
	slog.Warn("unknown mode, using conversational", "source", source, "mode", raw)
	return model.ModeConversational
}

// Load reads .env, the config file at path and the environment, in that order.
func Load(path string) (model.Settings, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return model.Settings{}, err
	}
	file, err := LoadConfig(path)
	if err != nil {
		return model.Settings{}, err
	}
	env, err := LoadEnv()
	if err != nil {
		return model.Settings{}, err
	}
	return Resolve(file, env)
}

// Validate checks resolved settings.
func Validate(s model.Settings) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate settings: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %v (%s %s)",
			strings.ToLower(fe.Field()), fe.Value(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}

func applyString(target, value *string) {
	if value == nil {
		return
	}
	*target = strings.TrimSpace(*value)
}

func applyBool(target, value *bool) {
	if value == nil {
		return
	}
	*target = *value
}

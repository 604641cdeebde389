package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherdash.app/internal/core/theme"
	"weatherdash.app/internal/core/weather"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the enum validators used by request bodies on
// gin's default validator. Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		for tag, fn := range map[string]validator.Func{
			"temperature_unit": validateTemperatureUnit,
			"theme":            validateTheme,
			"theme_preset":     validateThemePreset,
		} {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = err
				return
			}
		}
	})
	return registerErr
}

func validateTemperatureUnit(fl validator.FieldLevel) bool {
	_, err := weather.ParseTemperatureUnit(fl.Field().String())
	return err == nil
}

func validateTheme(fl validator.FieldLevel) bool {
	_, err := theme.ParseMode(fl.Field().String())
	return err == nil
}

// validateThemePreset accepts the empty string, which clears the preset
func validateThemePreset(fl validator.FieldLevel) bool {
	_, err := theme.ParsePreset(fl.Field().String())
	return err == nil
}

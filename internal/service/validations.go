package service

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// flag_status accepts the statuses a coach may set on a flag.
		// Flags are created open and never reopened.
		validate.RegisterValidation("flag_status", func(fl validator.FieldLevel) bool {
			switch entity.FlagStatus(fl.Field().String()) {
			case entity.FlagAcknowledged, entity.FlagResolved, entity.FlagDismissed:
				return true
			}
			return false
		})
	})
}

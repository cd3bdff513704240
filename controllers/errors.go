package controllers

import (
	"net/http"

	"clinic-backend/models"
)

// statusFor maps an error kind to the HTTP status carried alongside the
// chat-facing message. The body contract stays {ok, message} either way.
func statusFor(err error) int {
	switch models.KindOf(err) {
	case models.KindValidation, models.KindFormat:
		return http.StatusBadRequest
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

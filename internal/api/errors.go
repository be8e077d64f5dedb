package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"pixel-arena/internal/service"
)

var errorStatus = []struct {
	err    error
	status int
}{
	// authorization
	{service.ErrNotParticipant, http.StatusForbidden},
	{service.ErrNotYourTurn, http.StatusConflict},
	// state
	{service.ErrBattleNotFound, http.StatusNotFound},
	{service.ErrPoolNotFound, http.StatusNotFound},
	{service.ErrAvatarNotFound, http.StatusNotFound},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrBattleNotActive, http.StatusBadRequest},
	{service.ErrBattleNotFinished, http.StatusBadRequest},
	// resource
	{service.ErrInsufficientGems, http.StatusPaymentRequired},
	// validation
	{service.ErrInvalidAction, http.StatusBadRequest},
	{service.ErrInvalidPullCount, http.StatusBadRequest},
	{service.ErrInvalidAvatarName, http.StatusBadRequest},
	{service.ErrInvalidClass, http.StatusBadRequest},
	{service.ErrEquipmentNotOwned, http.StatusBadRequest},
	{service.ErrInvalidAmount, http.StatusBadRequest},
	// idempotency and concurrency
	{service.ErrAlreadySettled, http.StatusConflict},
	{service.ErrAvatarExists, http.StatusConflict},
	{service.ErrTurnConflict, http.StatusConflict},
}

// StatusFor maps a service error to an HTTP status code.
func StatusFor(err error) int {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"error": "..."}; internal errors are logged and hidden.
func writeError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msg})
}

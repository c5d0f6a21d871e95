// Package auth extracts the acting user from the request. Identity arrives
// as the X-User-ID header set by the fronting gateway; there is no session
// handling here.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const Header = "X-User-ID"

var ErrNoActor = errors.New("missing or invalid " + Header + " header")

// ActorID returns the acting user's id or writes a 401 and reports false.
func ActorID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader(Header)
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrNoActor.Error()})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": ErrNoActor.Error()})
		return uuid.Nil, false
	}
	return id, true
}

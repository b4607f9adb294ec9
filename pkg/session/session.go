package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/ventu-io/go-shortid"
)

const viewerSessionKey = "viewer"

// Viewer returns the viewer id of the current session, assigning a new one on first visit.
func Viewer(c *gin.Context) (string, error) {
	s := sessions.Default(c)

	if id, ok := s.Get(viewerSessionKey).(string); ok && id != "" {
		return id, nil
	}

	id, err := shortid.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate viewer id")
	}

	s.Set(viewerSessionKey, id)
	if err := s.Save(); err != nil {
		return "", errors.Wrap(err, "failed to save session")
	}

	return id, nil
}

package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(sessions.Sessions("test", cookie.NewStore([]byte("secret"))))

	r.GET("/viewer", func(c *gin.Context) {
		id, err := Viewer(c)
		if err != nil {
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, id)
	})

	return r
}

func TestViewer(t *testing.T) {
	r := newRouter()

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/viewer", nil))
	require.Equal(t, http.StatusOK, first.Code)

	id := first.Body.String()
	require.NotEmpty(t, id)

	cookies := first.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/viewer", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	second := httptest.NewRecorder()
	r.ServeHTTP(second, req)
	assert.Equal(t, id, second.Body.String())

	// A request without the cookie becomes a new viewer.
	third := httptest.NewRecorder()
	r.ServeHTTP(third, httptest.NewRequest(http.MethodGet, "/viewer", nil))
	assert.NotEqual(t, id, third.Body.String())
}

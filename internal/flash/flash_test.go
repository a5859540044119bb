package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newFlashRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("test_session", cookie.NewStore([]byte("secret"))))
	r.GET("/set", func(c *gin.Context) {
		Set(c, c.Query("msg"))
		c.Status(http.StatusOK)
	})
	r.GET("/take", func(c *gin.Context) {
		c.String(http.StatusOK, strings.Join(Take(c), "|"))
	})
	return r
}

func do(r http.Handler, path string, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	next := cookies
	if got := w.Result().Cookies(); len(got) > 0 {
		next = got
	}
	return w, next
}

func Test_Flash_Consumed_Exactly_Once(t *testing.T) {
	r := newFlashRouter()

	_, cookies := do(r, "/set?msg=product+added+successfully", nil)

	w, cookies := do(r, "/take", cookies)
	require.Equal(t, "product added successfully", w.Body.String())

	// the very next render sees nothing
	w, _ = do(r, "/take", cookies)
	require.Empty(t, w.Body.String())
}

func Test_Flash_Queues_Multiple_Messages(t *testing.T) {
	r := newFlashRouter()

	_, cookies := do(r, "/set?msg=first", nil)
	_, cookies = do(r, "/set?msg=second", cookies)

	w, _ := do(r, "/take", cookies)
	require.Equal(t, "first|second", w.Body.String())
}

func Test_Flash_Empty_Session(t *testing.T) {
	r := newFlashRouter()

	w, _ := do(r, "/take", nil)
	require.Empty(t, w.Body.String())
}

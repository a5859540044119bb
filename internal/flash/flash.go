// Package flash carries one-shot user feedback across redirects through the
// session cookie.
package flash

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Key is the flash category every mutation handler writes to.
const Key = "message"

// Set queues msg for the next rendered page in this session.
func Set(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, Key)
	_ = sess.Save()
}

// Take returns all pending messages and clears them, so a second
// consecutive render sees nothing.
func Take(c *gin.Context) []string {
	sess := sessions.Default(c)
	raw := sess.Flashes(Key)
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save()
	msgs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			msgs = append(msgs, s)
		}
	}
	return msgs
}

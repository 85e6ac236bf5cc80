// Package middleware mounts the fault boundary on a gin engine.
//
//	b := boundary.New(boundary.Options{Service: "orders", Production: cfg.Fault.IsProduction(cfg.App)})
//	engine.Use(middleware.FaultBoundary(b), middleware.RequireHeaders(cfg.Headers, b))
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Goden-Gun/service-lib/pkg/boundary"
	"github.com/Goden-Gun/service-lib/pkg/codes"
	"github.com/Goden-Gun/service-lib/pkg/config"
	"github.com/Goden-Gun/service-lib/pkg/errkind"
	"github.com/Goden-Gun/service-lib/pkg/headers"
	"github.com/Goden-Gun/service-lib/pkg/journal"
)

// FaultBoundary recovers panics and handles errors pushed with c.Error. The
// last pushed error wins. The response is the fault's JSON with
// codes.HTTPStatus as status; the transaction-id header is echoed back.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func FaultBoundary(b *boundary.Boundary) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if v := recover(); v != nil {
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}
				respond(c, b, errkind.Recovered(v))
			}
		}()

		c.Next()

		if last := c.Errors.Last(); last != nil {
			respond(c, b, last.Err)
		}
	}
}

// RequireHeaders rejects requests missing a correlation header with the
// matching protocol violation. Paths under cfg.SkipPrefixes pass through.
func RequireHeaders(cfg config.HeaderConfig, b *boundary.Boundary) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Skips(c.Request.URL.Path) {
			c.Next()
			return
		}
		if f := headers.FromHTTP(c.Request.Header).Validate(cfg.RequireUserInfo); f != nil {
			respond(c, b, f)
			return
		}
		c.Next()
	}
}

func respond(c *gin.Context, b *boundary.Boundary, err error) {
	if b == nil {
		b = boundary.New(boundary.Options{})
	}
	id := headers.FromHTTP(c.Request.Header).TransactionID()
	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	f := b.Handle(c.Request.Context(), err, id, boundary.Site{
		Transport: journal.TransportHTTP,
		Method:    c.Request.Method,
		Path:      route,
	})
	if c.Writer.Written() {
		// 响应已经开始写出，只能记录
		c.Abort()
		return
	}
	if id != "" {
		c.Header(headers.TransactionID, id)
	}
	c.AbortWithStatusJSON(codes.HTTPStatus(f.Code()), f.ServiceError())
}

package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagURL      = "url"
	TagIP       = "ip"
	TagUA       = "ua"
	TagBody     = "body"
	TagResBody  = "resBody"
	TagBytesIn  = "bytesReceived"
	TagBytesOut = "bytesSent"
	TagUserID   = "userId"
	RequestID   = "requestId"
)

// bodies above this size are logged as their length only
const maxLoggedBody = 4096

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag returns the value logged under a tag.
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return loggedBody(c.Get(fiber.HeaderContentType), c.Body())
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			return loggedBody(string(c.Response().Header.ContentType()), c.Response().Body())
		},
		TagBytesIn: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Request().Body())
		},
		TagBytesOut: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Response().Body())
		},
		TagUserID: func(c *fiber.Ctx, _ *data) interface{} {
			userID, _ := c.Locals("userID").(string)
			return userID
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID, c.Get(fiber.HeaderXRequestID))
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

// loggedBody keeps json and text bodies; binary payloads (uploads, xlsx, pdf) are skipped.
func loggedBody(contentType string, body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if !isTextual(contentType) || len(body) > maxLoggedBody {
		return ""
	}
	return string(body)
}

func isTextual(contentType string) bool {
	for _, prefix := range []string{fiber.MIMEApplicationJSON, "text/"} {
		if len(contentType) >= len(prefix) && contentType[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

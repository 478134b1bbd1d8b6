package middleware

import (
	"encoding/json"
	apimodels "ets-backend/models/api"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const errNotifyTimeout = 5 * time.Second

type errReport struct {
	Code   int    `json:"code"`
	Method string `json:"method"`
	Path   string `json:"path"`
	UserID string `json:"user_id,omitempty"`
	Error  string `json:"error"`
}

// ErrNotify posts a short report to addr for every 5xx response.
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < fiber.StatusInternalServerError {
			return err
		}

		report := errReport{
			Code:   statusCode,
			Method: c.Method(),
			Path:   c.OriginalURL(),
			UserID: GetUserID(c),
			Error:  string(c.Response().Body()),
		}
		if r := c.Route(); r != nil {
			report.Path = r.Path
		}
		var resp apimodels.Response
		if unmErr := json.Unmarshal(c.Response().Body(), &resp); unmErr != nil {
			log.WithError(unmErr).Debug("error report: response body is not an api envelope")
		} else if resp.Message != "" {
			report.Error = resp.Message
		}

		go sendErrReport(addr, report)
		return err
	}
}

func sendErrReport(addr string, report errReport) {
	code, _, errs := fiber.Post(addr).
		Timeout(errNotifyTimeout).
		JSON(report).
		Bytes()
	logger := log.
		WithField("notify_addr", addr).
		WithField("path", report.Path)
	if len(errs) > 0 {
		logger.WithError(errs[0]).Warn("error sending error notification")
		return
	}
	if code >= fiber.StatusBadRequest {
		logger.WithField("status", code).Warn("error notification rejected")
	}
}

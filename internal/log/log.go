package log

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var base = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	return l
}

// SetOutput redirects the log sink (stdout plus file in main).
func SetOutput(w io.Writer) { base.SetOutput(w) }

func write(level logrus.Level, kind string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	f := logrus.Fields{"kind": kind}
	if c != nil {
		f["ip"] = c.IP()
		f["method"] = c.Method()
		f["path"] = c.Path()
		f["status"] = c.Response().StatusCode()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			f["req_id"] = rid
		}
	}
	for k, v := range fields {
		f[k] = v
	}
	e := base.WithFields(f)
	if err != nil {
		e = e.WithError(err)
	}
	e.Log(level, action)
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(logrus.InfoLevel, "app", c, action, nil, fields)
}

// Audit marks state-changing actions worth keeping in the operational log.
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(logrus.InfoLevel, "audit", c, action, nil, fields)
}

// Security marks rejected input, auth failures and rate-limit hits.
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(logrus.WarnLevel, "security", c, action, nil, fields)
}

func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(logrus.ErrorLevel, "app", c, action, err, fields)
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cookiekit/pkg/logger"
	"github.com/dmitrymomot/cookiekit/pkg/requestid"
)

// classify returns the status to send for err and the level to log it at.
func classify(err error) (int, slog.Level) {
	status := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
	}
	if status < http.StatusInternalServerError {
		return status, slog.LevelWarn
	}
	return status, slog.LevelError
}

// NewErrorHandler returns an ErrorHandler that logs err and answers with a
// JSON error body. Client errors log at warn, everything else at error.
//
//	h := handler.Wrap(get,
//		handler.WithErrorHandler[handler.Context, GetRequest](
//			handler.NewErrorHandler[handler.Context](log),
//		),
//	)
func NewErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx C, err error) {
		status, level := classify(err)
		r := ctx.Request()

		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
			)
		}
	}
}

package http

import (
	"net/http"

	"restaurant-insights/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status and service error of a response so
// metrics and the completion log can read them after the handler returns.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// StatusOrOK is the written status, or 200 when the handler never wrote a header.
func (w *appResponseWriter) StatusOrOK() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}

// responseOutcome reads status and error code from w when it is an appResponseWriter.
func responseOutcome(w http.ResponseWriter) (status int, errorCode string) {
	appWriter, ok := w.(*appResponseWriter)
	if !ok {
		return http.StatusOK, ""
	}
	return appWriter.StatusOrOK(), appWriter.ErrorCode()
}

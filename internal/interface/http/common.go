// Package handlers maps HTTP requests onto application services and their
// results onto the uniform response envelope.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/application"
	"github.com/lmhoang06/waiedu-task-management/pkg/response"
	"github.com/lmhoang06/waiedu-task-management/pkg/validation"
)

// respondErr maps service errors to the envelope. Coded errors go out as a
// 200 with success:false; anything else is a store-level failure of the
// request and becomes a logged 500.
func respondErr(c *gin.Context, logger *logrus.Logger, err error) {
	if ce, ok := application.AsCoded(err); ok {
		response.Fail(c, ce.Code, ce.Details, ce.Message)
		return
	}
	if logger != nil {
		logger.WithError(err).
			WithField("request_id", c.GetString("request_id")).
			WithField("path", c.FullPath()).
			Error("request failed")
	}
	response.Internal(c, "Internal server error.")
}

// flattenDetails turns the per-field validation map into the single details
// string the envelope carries.
func flattenDetails(m map[string]string) string {
	if len(m) == 0 {
		return "Invalid payload."
	}
	out := ""
	for field, msg := range m {
		if out != "" {
			out += "; "
		}
		out += field + " " + msg
	}
	return out
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Fail(c, application.CodeValidation, flattenDetails(validation.ToDetails(err)), "Invalid payload.")
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Fail(c, application.CodeValidation, name+" must be a positive integer.", "Invalid path parameter.")
		return 0, false
	}
	return id, true
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/alanalzi/jalin-alam-project/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Returns false and writes a 400 response if either step fails — the caller
// must return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.Response{Message: "Invalid JSON: " + err.Error()})
		return false
	}
	if err := validate.Struct(req); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			c.JSON(http.StatusBadRequest, apierror.Response{Message: err.Error()})
			return false
		}
		msg := "Validation failed"
		if len(verrs) > 0 {
			msg = "Validation failed on field '" + verrs[0].Field() + "' (" + verrs[0].Tag() + ")"
		}
		c.JSON(http.StatusBadRequest, apierror.Response{Message: msg})
		return false
	}
	return true
}

// parseID reads the :id path parameter. A malformed identifier fails fast
// with 400 before any database work.
func parseID(c *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.Response{Message: entity + " ID is required"})
		return 0, false
	}
	return uint(id), true
}

// respondError converts any service/repository error into its HTTP shape:
// Validation → 400, NotFound → 404, Conflict → 409, everything else → 500.
func respondError(c *gin.Context, err error) {
	c.JSON(apierror.StatusOf(err), apierror.ResponseFor(err))
}

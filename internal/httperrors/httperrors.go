package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/go-sqlite"
	"github.com/rs/zerolog/log"
	"github.com/snackpool/backend/internal/models"
	"gorm.io/gorm"
)

// HTTPError is the response body for all error responses.
//
// Field names the first offending field for validation errors and is
// omitted otherwise.
type HTTPError struct {
	Message string `json:"message" example:"the name of a category must be set"`
	Field   string `json:"field,omitempty" example:"name"`
}

// New writes an error response without a field reference.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	c.JSON(status, HTTPError{
		Message: format(msgAndArgs...),
	})
}

// NewField writes a validation error response naming the offending field.
func NewField(c *gin.Context, status int, field string, msgAndArgs ...any) {
	c.JSON(status, HTTPError{
		Message: format(msgAndArgs...),
		Field:   field,
	})
}

// format builds the message from msgAndArgs.
// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
func format(msgAndArgs ...any) string {
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	return msg
}

// DBErrorMessage returns the status code, message and offending field
// appropriate to the database error that has occurred.
func DBErrorMessage(err error) (int, string, string) {
	// Category names need to be unique
	if strings.Contains(err.Error(), "UNIQUE constraint failed: categories.name") {
		return http.StatusBadRequest, "a category with this name already exists", "name"

		// Family names need to be unique, they are the login identifier
	} else if strings.Contains(err.Error(), "UNIQUE constraint failed: families.name") {
		return http.StatusBadRequest, "a family with this name already exists", "name"

		// One selection row per family and snack. The selection upsert
		// writes on this key, so this only fires for direct inserts
	} else if strings.Contains(err.Error(), "UNIQUE constraint failed: selections.family_id, selections.snack_id") {
		return http.StatusBadRequest, "this family already has a selection for this snack", ""

		// A field references a non-existing resource
	} else if strings.Contains(err.Error(), "constraint failed: FOREIGN KEY constraint failed") {
		return http.StatusBadRequest, "a resource referenced in the request does not exist", ""

		// A general error we do not know more about
	} else {
		log.Error().Msgf("%T: %v", err, err.Error())
		return http.StatusInternalServerError, "a database error occurred during your request", ""
	}
}

// Handler translates errors from the store layer into error responses.
func Handler(c *gin.Context, err error) {
	// No record found => 404
	if errors.Is(err, gorm.ErrRecordNotFound) {
		New(c, http.StatusNotFound, "there is no resource for the ID you specified")

		// Negative selection quantity => 400 on the quantity field
	} else if errors.Is(err, models.ErrSelectionQuantityNegative) {
		NewField(c, http.StatusBadRequest, "quantity", err.Error())

		// Database error
	} else if reflect.TypeOf(err) == reflect.TypeOf(&sqlite.Error{}) || strings.Contains(err.Error(), "constraint failed") {
		status, msg, field := DBErrorMessage(err)
		if field != "" {
			NewField(c, status, field, msg)
		} else {
			New(c, status, msg)
		}

		// End of file reached when reading
	} else if errors.Is(io.EOF, err) {
		New(c, http.StatusBadRequest, "the request body must not be empty")

		// An ID in the URL could not be parsed
	} else if reflect.TypeOf(err) == reflect.TypeOf(&strconv.NumError{}) {
		New(c, http.StatusBadRequest, "an ID specified in the request URL was not a valid number")

		// All other errors
	} else {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		New(c, http.StatusInternalServerError, "an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c))
	}
}

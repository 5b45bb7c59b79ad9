package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/snackpool/backend/internal/httperrors"
)

// BindData binds the JSON body of the request to the struct passed in
// the interface. The error response has already been written when an
// error is returned.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(io.EOF, err) {
			httperrors.New(c, http.StatusBadRequest, "the request body must not be empty")
			return err
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		httperrors.New(c, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data. Please check and try again")
		return err
	}

	return nil
}

// ParseID parses the named URL parameter as an ID.
func ParseID(c *gin.Context, param string) (uint64, error) {
	parsed, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		httperrors.Handler(c, err)
		return 0, err
	}

	return parsed, nil
}

// HasField reports whether GetBodyFields found the named field in the
// request body. A field that is present with a JSON null still counts
// as present.
func HasField(fields []any, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}

	return false
}

// GetBodyFields returns the model field names for all keys present in
// the request body, mapped through the json tags of the resource
// struct. Update handlers use this to only write the fields a partial
// payload actually sets, which also allows explicitly clearing a
// nullable field with null.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	// Copy the body to be able to bind it again afterwards
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	// Parse the body into a map to have all keys available
	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		e := errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
		httperrors.New(c, http.StatusBadRequest, e.Error())
		return []any{}, e
	}

	var bodyFields []any
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("json")

		if _, ok := mapBody[param]; ok {
			bodyFields = append(bodyFields, field)
		}
	}

	return bodyFields, nil
}

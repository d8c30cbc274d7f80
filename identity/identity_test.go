package identity

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexID(t *testing.T) {
	var v struct {
		A flexID `json:"a"`
		B flexID `json:"b"`
		C flexID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 3, "b": "17", "c": null}`), &v))
	assert.Equal(t, flexID(3), v.A)
	assert.Equal(t, flexID(17), v.B)
	assert.Equal(t, flexID(0), v.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a": "x"}`), &v))
}

func TestStatusCodeOf(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, StatusCodeOf(&StatusError{StatusCode: http.StatusForbidden}, 500))
	assert.Equal(t, 500, StatusCodeOf(errors.New("plain"), 500))
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nabeelsyed11/Kimia-Reality/models"
	"github.com/nabeelsyed11/Kimia-Reality/utils"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = utils.NewValidator()
	return e
}

// Malformed identifiers must short-circuit to a 400 before any store
// lookup; the controller here has no store connection at all.
func TestGetPropertyInvalidIDShortCircuits(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/properties/not-an-id", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-an-id")

	pc := &PropertyController{}
	require.NoError(t, pc.GetProperty(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var env models.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid property ID format", env.Error)
}

func TestDeletePropertyInvalidIDShortCircuits(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodDelete, "/api/properties/zzz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("zzz")

	pc := &PropertyController{}
	require.NoError(t, pc.DeleteProperty(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePropertyInvalidIDShortCircuits(t *testing.T) {
	e := newEcho()
	req := httptest.NewRequest(http.MethodPut, "/api/properties/42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	pc := &PropertyController{}
	require.NoError(t, pc.UpdateProperty(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

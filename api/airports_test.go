package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/skypath/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirportHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewAirportHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/airports", nil)

	airports := []domain.Airport{
		{Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "US", Timezone: "America/New_York"},
		{Code: "LHR", Name: "London Heathrow", City: "London", Country: "GB", Timezone: "Europe/London"},
	}
	mockService.On("Airports", c.Request.Context()).Return(airports)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	for _, a := range body {
		for _, field := range []string{"code", "name", "city", "country", "timezone"} {
			assert.NotEmpty(t, a[field], field)
		}
	}
	assert.Equal(t, "JFK", body[0]["code"])

	mockService.AssertExpectations(t)
}

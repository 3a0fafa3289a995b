//go:build !integration

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/nutrition-lookup/internal/domain/dto"
	"github.com/guttosm/nutrition-lookup/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "valid", body: `{"fdcId": 10, "weight": 55.5}`},
		{name: "invalid json", body: `not json`},
		{name: "missing fdcId", body: `{"weight": 100}`},
		{name: "negative fdcId", body: `{"fdcId": -3, "weight": 100}`, wantErr: dto.ErrInvalidFoodID},
		{name: "negative weight", body: `{"fdcId": 3, "weight": -1}`, wantErr: dto.ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/api/calculate", tt.body)

			req, err := BuildRequestAndValidate[dto.CalculateRequest](c)

			if tt.name == "valid" {
				require.NoError(t, err)
				assert.EqualValues(t, 10, req.FdcID)
				assert.Equal(t, 55.5, req.Weight)
				return
			}
			assert.Error(t, err)
			assert.Nil(t, req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBuildQueryAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantQuery string
		wantErr   bool
	}{
		{name: "valid", target: "/api/search?query=apple", wantQuery: "apple"},
		{name: "padded", target: "/api/search?query=+apple+", wantQuery: "apple"},
		{name: "missing", target: "/api/search", wantErr: true},
		{name: "blank", target: "/api/search?query=+++", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodGet, tt.target, "")

			req, err := BuildQueryAndValidate[dto.SearchRequest](c)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, req.Normalized())
		})
	}
}

func TestResponseBuilder_Error(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/api/search", "")
	c.Request.Header.Set("Accept-Language", "pt")
	cause := errors.New("upstream status 500")

	NewResponseBuilder(c).Error(http.StatusBadGateway, i18n.ErrKeyUpstreamUnavailable, cause)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.True(t, c.IsAborted())
	require.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors[0].Err, cause)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeUpstream, resp.Code)
	assert.Equal(t, "A base de alimentos está indisponível, tente novamente mais tarde", resp.Error)
	assert.NotZero(t, resp.Timestamp)
}

func TestResponseBuilder_ErrorWithMessage(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")

	NewResponseBuilder(c).ErrorWithMessage(http.StatusInternalServerError, "custom message", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, c.Errors)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "custom message", resp.Error)
	assert.Equal(t, dto.ErrCodeInternal, resp.Code)
}

func TestResponseBuilder_Success(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")

	NewResponseBuilder(c).Success(http.StatusCreated, gin.H{"ok": true})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

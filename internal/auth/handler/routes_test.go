package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that every route is mounted.
func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ta := newTestApp(ctrl, handlerConfig())

	// The reset-link route touches the token store even for an existence check.
	ta.repo.EXPECT().GetResetTokenByDigest(gomock.Any(), gomock.Any()).Return(nil, nil)

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/register"},
		{http.MethodGet, "/login"},
		{http.MethodGet, "/forgot/password"},
		{http.MethodGet, "/password/reset/some-token"},
		{http.MethodPost, "/site/register"},
		{http.MethodPost, "/auth/login"},
		{http.MethodPost, "/password/email"},
		{http.MethodPost, "/password/change"},
		{http.MethodGet, "/logout"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := ta.app.Test(req)
			require.NoError(t, err)

			// We only care that the route exists. A 404 means it doesn't.
			// The actual handlers return other codes (e.g. 400 for a missing
			// body), which is fine for this existence check.
			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

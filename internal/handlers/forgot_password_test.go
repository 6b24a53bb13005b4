package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/msokolov/bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestForgotPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("token issued", func(t *testing.T) {
		mockSvc := NewMockPasswordForgetter(ctrl)
		mockSvc.EXPECT().
			ForgotPassword(gomock.Any(), "john@example.com").
			Return("plaintoken", nil)

		handler := NewForgotPasswordHandler(mockSvc)

		bodyBytes, _ := json.Marshal(ForgotPasswordRequest{Email: "john@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/users/forgot-password", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp ForgotPasswordResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "plaintoken", resp.ResetToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockSvc := NewMockPasswordForgetter(ctrl)
		mockSvc.EXPECT().
			ForgotPassword(gomock.Any(), "nobody@example.com").
			Return("", services.ErrUserNotFound)

		handler := NewForgotPasswordHandler(mockSvc)

		bodyBytes, _ := json.Marshal(ForgotPasswordRequest{Email: "nobody@example.com"})
		req := httptest.NewRequest(http.MethodPost, "/api/users/forgot-password", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

package remove

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ServiceMock struct{ mock.Mock }

func (m *ServiceMock) Remove(ctx context.Context, id int) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newRequestWithID(t *testing.T, id string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/api/faqs/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRemoveHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockSetup      func(s *ServiceMock)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Успешное удаление",
			id:   "3",
			mockSetup: func(s *ServiceMock) {
				s.On("Remove", mock.Anything, 3).Return(int64(1), nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			// Удаление несуществующей записи не является ошибкой.
			name: "Запись отсутствует",
			id:   "99",
			mockSetup: func(s *ServiceMock) {
				s.On("Remove", mock.Anything, 99).Return(int64(0), nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Нечисловой id",
			id:             "abc",
			mockSetup:      func(s *ServiceMock) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid id",
		},
		{
			name: "Ошибка хранилища",
			id:   "3",
			mockSetup: func(s *ServiceMock) {
				s.On("Remove", mock.Anything, 3).Return(int64(0), assert.AnError).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to delete faq",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			service := new(ServiceMock)
			tc.mockSetup(service)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			handler := New(logger, service)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequestWithID(t, tc.id))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
			if tc.expectedError != "" {
				assert.Contains(t, rr.Body.String(), tc.expectedError)
			}
			service.AssertExpectations(t)
		})
	}
}

package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goodbooks/goodbooks-api/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubToReadRepository struct {
	books []domain.Book
	err   error
}

func (s *stubToReadRepository) BooksForUser(_ context.Context, userID int) ([]domain.Book, error) {
	return s.books, s.err
}

func userRouter(stub *stubToReadRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	uc := NewUserController(stub)
	engine.GET("/users/:user_id/to-read", uc.GetToRead)
	return engine
}

func TestGetToRead(t *testing.T) {
	engine := userRouter(&stubToReadRepository{books: []domain.Book{{BookID: 260, Title: "Dune"}}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/9/to-read", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.UserToRead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 9, result.UserID)
	require.Len(t, result.ToRead, 1)
	assert.Equal(t, "Dune", result.ToRead[0].Title)
}

func TestGetToReadUnknownUserEmptyList(t *testing.T) {
	engine := userRouter(&stubToReadRepository{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/424242/to-read", nil)
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.UserToRead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 424242, result.UserID)
	assert.Empty(t, result.ToRead)
}

func TestGetToReadRejectsNonInteger(t *testing.T) {
	engine := userRouter(&stubToReadRepository{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/bob/to-read", nil)
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"

	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
	"github.com/remixer-xyz/goapi/domain/explore"
	exploreMocks "github.com/remixer-xyz/goapi/domain/explore/mocks"
	"github.com/remixer-xyz/goapi/middleware"
)

func newServer(uc explore.Usecase) *echo.Echo {
	e := echo.New()
	e.Use(middleware.AddContext())
	New(e, uc)
	return e
}

func TestGetAllSectionsHandlerShowsFailedSection(t *testing.T) {
	uc := &exploreMocks.Usecase{}
	uc.On("GetAllSections", mock.Anything, 0).Return([]*explore.Section{
		{
			Category: explore.CategoryTopGainers,
			Coins:    []*coin.Coin{{Address: "0xc0", Name: "Gainer"}},
		},
		{
			Category: explore.CategoryNew,
			Err:      xerrors.New("upstream timeout"),
		},
	}, nil)

	e := newServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/explore", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// the healthy section renders, the broken one says why it did not
	assert.Contains(t, rec.Body.String(), "Gainer")
	assert.Contains(t, rec.Body.String(), "upstream timeout")
	uc.AssertExpectations(t)
}

func TestGetSectionHandlerBadCategory(t *testing.T) {
	uc := &exploreMocks.Usecase{}
	uc.On("GetSection", mock.Anything, explore.Category("bogus"), 0).Return(nil, domain.ErrBadParamInput)

	e := newServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/explore/bogus", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

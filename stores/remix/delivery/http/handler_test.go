package http

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/remix"
	remixMocks "github.com/remixer-xyz/goapi/domain/remix/mocks"
	"github.com/remixer-xyz/goapi/middleware"
)

func noAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

func newServer(uc remix.Usecase) *echo.Echo {
	e := echo.New()
	e.Use(middleware.AddContext())
	New(e, noAuth, uc)
	return e
}

func publishForm(t *testing.T) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("name", "My Remix"))
	require.NoError(t, w.WriteField("symbol", "RMX"))
	require.NoError(t, w.WriteField("description", "d"))
	require.NoError(t, w.WriteField("payoutRecipient", "0x00000000000000000000000000000000000000aa"))
	require.NoError(t, w.WriteField("revenueShare", "50"))
	require.NoError(t, w.WriteField("idempotencySeed", "seed-1"))
	require.NoError(t, w.WriteField("chainId", "8453"))
	fw, err := w.CreateFormFile("image", "cover.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestPublishHandler(t *testing.T) {
	uc := &remixMocks.Usecase{}
	uc.On("Publish", mock.Anything, mock.MatchedBy(func(req *remix.PublishRequest) bool {
		return req.Name == "My Remix" &&
			req.Symbol == "RMX" &&
			req.IdempotencySeed == "seed-1" &&
			req.ChainId == domain.ChainId(8453) &&
			len(req.Image) == 4
	})).Return(&remix.PublishResult{
		CoinAddress: "0x00000000000000000000000000000000000000cc",
		TxHash:      "0xdeadbeef",
		ImageCid:    "Qm1",
		MetadataUri: "ipfs://Qm2",
	}, nil)

	e := newServer(uc)
	body, contentType := publishForm(t)
	req := httptest.NewRequest(http.MethodPost, "/remix/publish", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestPublishHandlerMissingImage(t *testing.T) {
	uc := &remixMocks.Usecase{}
	e := newServer(uc)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("name", "My Remix"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/remix/publish", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPublishHandlerStageError(t *testing.T) {
	uc := &remixMocks.Usecase{}
	uc.On("Publish", mock.Anything, mock.Anything).Return(nil, &remix.PublicationError{
		Stage: remix.StageReverted,
		Err:   domain.ErrTransactionReverted,
	})

	e := newServer(uc)
	body, contentType := publishForm(t)
	req := httptest.NewRequest(http.MethodPost, "/remix/publish", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var resp publishErrBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, remix.StageReverted, resp.Stage)
}

func TestPublishHandlerNoWallet(t *testing.T) {
	uc := &remixMocks.Usecase{}
	uc.On("Publish", mock.Anything, mock.Anything).Return(nil, &remix.PublicationError{
		Stage: remix.StageNoWallet,
		Err:   domain.ErrNoWalletConnected,
	})

	e := newServer(uc)
	body, contentType := publishForm(t)
	req := httptest.NewRequest(http.MethodPost, "/remix/publish", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedHandler(t *testing.T) {
	uc := &remixMocks.Usecase{}
	uc.On("Feed", mock.Anything, 0, 20).Return([]*remix.PublishedRemix{
		{CoinAddress: "0x00000000000000000000000000000000000000cc", Name: "My Remix"},
	}, 35, nil)

	e := newServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/remix/feed", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "My Remix")
	assert.Contains(t, rec.Body.String(), `"total":35`)
	uc.AssertExpectations(t)
}

func TestGetPublishedRemixHandler(t *testing.T) {
	uc := &remixMocks.Usecase{}
	uc.On("Get", mock.Anything, domain.Address("0x00000000000000000000000000000000000000cc")).Return(&remix.PublishedRemix{
		CoinAddress: "0x00000000000000000000000000000000000000cc",
		Name:        "My Remix",
	}, nil)

	e := newServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/remix/0x00000000000000000000000000000000000000cc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "My Remix")
	uc.AssertExpectations(t)
}

func TestGetPublishedRemixHandlerNotFound(t *testing.T) {
	uc := &remixMocks.Usecase{}
	uc.On("Get", mock.Anything, domain.Address("0x00000000000000000000000000000000000000dd")).Return(nil, domain.ErrNotFound)

	e := newServer(uc)
	req := httptest.NewRequest(http.MethodGet, "/remix/0x00000000000000000000000000000000000000dd", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

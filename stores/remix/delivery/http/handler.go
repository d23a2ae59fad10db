package http

import (
	"errors"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/delivery"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/remix"
)

type handler struct {
	remix remix.Usecase
}

// New registers the publication endpoints. Publishing requires auth.
func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, us remix.Usecase) {
	h := &handler{remix: us}
	g := e.Group("/remix")
	g.POST("/publish", h.publish, authMiddleware)
	g.GET("/feed", h.feed)
	g.GET("/:coinAddress", h.get)
}

func (h *handler) publish(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Name            string         `form:"name"`
		Symbol          string         `form:"symbol"`
		Description     string         `form:"description"`
		PayoutRecipient domain.Address `form:"payoutRecipient"`
		Creators        string         `form:"creators"`
		RevenueShare    int            `form:"revenueShare"`
		IdempotencySeed string         `form:"idempotencySeed"`
		ChainId         domain.ChainId `form:"chainId"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		ctx.WithField("err", err).Warn("missing image file")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidInput)
	}
	src, err := file.Open()
	if err != nil {
		ctx.WithField("err", err).Error("file.Open failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	defer src.Close()
	image, err := ioutil.ReadAll(src)
	if err != nil {
		ctx.WithField("err", err).Error("read image failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	var creators []domain.Address
	for _, cr := range strings.Split(p.Creators, ",") {
		if cr = strings.TrimSpace(cr); cr != "" {
			creators = append(creators, domain.Address(cr))
		}
	}

	req := &remix.PublishRequest{
		Name:            p.Name,
		Symbol:          p.Symbol,
		Description:     p.Description,
		Image:           image,
		ImageFilename:   file.Filename,
		PayoutRecipient: p.PayoutRecipient,
		Creators:        creators,
		RevenueShare:    p.RevenueShare,
		IdempotencySeed: p.IdempotencySeed,
		ChainId:         p.ChainId,
	}

	res, err := h.remix.Publish(ctx, req)
	if err != nil {
		ctx.WithField("err", err).Error("remix.Publish failed")
		return publishErrResp(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) feed(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Offset int `query:"offset"`
		Limit  int `query:"limit"`
	}

	p := &params{Limit: 20}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}

	records, total, err := h.remix.Feed(ctx, p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	type feedResp struct {
		Records []*remix.PublishedRemix `json:"records"`
		Total   int                     `json:"total"`
	}
	return delivery.MakeJsonResp(c, http.StatusOK, feedResp{Records: records, Total: total})
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	record, err := h.remix.Get(ctx, domain.Address(c.Param("coinAddress")))
	if errors.Is(err, domain.ErrNotFound) {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, record)
}

type publishErrBody struct {
	Stage remix.Stage `json:"stage,omitempty"`
	Error string      `json:"error"`
}

func publishErrResp(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidMetadata),
		errors.Is(err, domain.ErrNoWalletConnected):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrSizeExceeded):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUploadFailed),
		errors.Is(err, domain.ErrSubmissionRejected),
		errors.Is(err, domain.ErrTransactionReverted):
		status = http.StatusBadGateway
	}

	body := publishErrBody{Error: err.Error()}
	var pubErr *remix.PublicationError
	if errors.As(err, &pubErr) {
		body.Stage = pubErr.Stage
	}
	return c.JSON(status, body)
}

package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/delivery"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
)

type handler struct {
	coin coin.Usecase
}

func New(e *echo.Echo, us coin.Usecase) {
	h := &handler{coin: us}
	g := e.Group("/coins")
	g.GET("", h.getCoins)
	g.GET("/:address", h.getCoin)
}

func (h *handler) getCoin(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		ChainId domain.ChainId `query:"chainId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	address := domain.Address(c.Param("address"))
	res, err := h.coin.GetCoin(ctx, p.ChainId, address)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getCoins(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		ChainId   domain.ChainId `query:"chainId"`
		Addresses string         `query:"addresses"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	var addresses []domain.Address
	for _, a := range strings.Split(p.Addresses, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addresses = append(addresses, domain.Address(a))
		}
	}
	if len(addresses) == 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := h.coin.GetCoins(ctx, p.ChainId, addresses)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/delivery"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
)

type handler struct {
	portfolio coin.PortfolioUsecase
}

func New(e *echo.Echo, us coin.PortfolioUsecase) {
	h := &handler{portfolio: us}
	g := e.Group("/portfolio")
	g.GET("/:owner", h.get)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	owner := c.Param("owner")
	if owner == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	portfolio, err := h.portfolio.GetPortfolio(ctx, owner)
	if err != nil {
		ctx.WithField("err", err).Error("portfolio.GetPortfolio failed")
		if errors.Is(err, domain.ErrPaginationFailure) {
			return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, portfolio)
}

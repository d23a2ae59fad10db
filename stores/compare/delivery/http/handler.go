package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/delivery"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/compare"
)

type handler struct {
	compare compare.Usecase
}

func New(e *echo.Echo, us compare.Usecase) {
	h := &handler{compare: us}
	g := e.Group("/compare")
	g.GET("", h.compareCoins)
}

func (h *handler) compareCoins(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		ChainId   domain.ChainId `query:"chainId"`
		Addresses string         `query:"addresses"`
		SortKey   string         `query:"sortBy"`
		SortDir   string         `query:"sortDir"`
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

	st := compare.SortState{Key: compare.SortKey(p.SortKey), Dir: domain.SortDirDesc}
	if p.SortDir == "asc" {
		st.Dir = domain.SortDirAsc
	}

	res, err := h.compare.Compare(ctx, p.ChainId, addresses, st)
	if err == domain.ErrSelectionLimitExceeded {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

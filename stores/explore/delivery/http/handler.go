package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/delivery"
	"github.com/remixer-xyz/goapi/domain"
	"github.com/remixer-xyz/goapi/domain/coin"
	"github.com/remixer-xyz/goapi/domain/explore"
)

type handler struct {
	explore explore.Usecase
}

func New(e *echo.Echo, us explore.Usecase) {
	h := &handler{explore: us}
	g := e.Group("/explore")
	g.GET("", h.getAllSections)
	g.GET("/:category", h.getSection)
}

func (h *handler) getAllSections(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Count int `query:"count"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	sections, err := h.explore.GetAllSections(ctx, p.Count)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := make([]*sectionResp, 0, len(sections))
	for _, section := range sections {
		sr := &sectionResp{Category: section.Category, Coins: section.Coins}
		if section.Err != nil {
			sr.Error = section.Err.Error()
		}
		res = append(res, sr)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// sectionResp carries a failed section's error so one broken leaderboard
// is visible without hiding the others
type sectionResp struct {
	Category explore.Category `json:"category"`
	Coins    []*coin.Coin     `json:"coins"`
	Error    string           `json:"error,omitempty"`
}

func (h *handler) getSection(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Count int `query:"count"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	category := explore.Category(c.Param("category"))
	section, err := h.explore.GetSection(ctx, category, p.Count)
	if err == domain.ErrBadParamInput {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, section)
}

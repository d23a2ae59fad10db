package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/delivery"
	"github.com/remixer-xyz/goapi/domain"
)

type handler struct {
	metadata domain.MetadataUseCase
}

func New(e *echo.Echo, us domain.MetadataUseCase) {
	h := &handler{metadata: us}
	g := e.Group("/metadata")
	g.GET("", h.get)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(bCtx.Ctx)

	type params struct {
		Uri string `query:"uri"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if p.Uri == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	md, err := h.metadata.GetFromUri(ctx, p.Uri)
	if err == domain.ErrUnsupportedSchema || err == domain.ErrInvalidJsonFormat {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return c.JSONBlob(http.StatusOK, md.RawMessage)
}

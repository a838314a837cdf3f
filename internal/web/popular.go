package web

import (
	"net/http"

	"bzmall/internal/service"
	"bzmall/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

var _ handler = (*PopularProductHandler)(nil)

// PopularProductHandler 商城前台的热榜接口
type PopularProductHandler struct {
	svc service.PopularService
	l   logger.Logger
}

func NewPopularProductHandler(svc service.PopularService, l logger.Logger) *PopularProductHandler {
	return &PopularProductHandler{
		svc: svc,
		l:   l,
	}
}

func (h *PopularProductHandler) RegisterRoutes(server *gin.Engine) {
	pg := server.Group("/popular-products")
	pg.GET("", h.List)
	pg.GET("/top", h.Top)
}

func (h *PopularProductHandler) List(ctx *gin.Context) {
	var req ListPopularReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = 20
	}
	res, err := h.svc.List(ctx, req.Page, req.Limit, req.Name)
	if err != nil {
		ctx.JSON(http.StatusOK, Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("查询热榜失败", logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Data: PopularListVo{
			Items: slice.Map(res.Items, toPopularVo),
			Page:  res.Page,
			Limit: res.Limit,
			Total: res.Total,
		},
	})
}

// Top 首页热榜条，固定最多 10 个，不分页
func (h *PopularProductHandler) Top(ctx *gin.Context) {
	items, err := h.svc.TopN(ctx)
	if err != nil {
		ctx.JSON(http.StatusOK, Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("查询首页热榜失败", logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Data: slice.Map(items, toPopularVo),
	})
}

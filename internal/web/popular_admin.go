package web

import (
	"errors"

	"bzmall/internal/service"
	"bzmall/pkg/ginx"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

var _ handler = (*PopularProductAdminHandler)(nil)

// PopularProductAdminHandler 运营后台的热榜接口
// 比前台多暴露各项指标，还能手动触发重算
type PopularProductAdminHandler struct {
	svc service.PopularService
}

func NewPopularProductAdminHandler(svc service.PopularService) *PopularProductAdminHandler {
	return &PopularProductAdminHandler{
		svc: svc,
	}
}

func (h *PopularProductAdminHandler) RegisterRoutes(server *gin.Engine) {
	ag := server.Group("/admin/popular-products")
	ag.GET("", ginx.WrapReq[ListPopularReq](h.List))
	ag.POST("/rebuild", ginx.Wrap(h.Rebuild))
}

func (h *PopularProductAdminHandler) List(ctx *gin.Context, req ListPopularReq) (ginx.Result, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = 20
	}
	res, err := h.svc.List(ctx, req.Page, req.Limit, req.Name)
	if err != nil {
		return ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
	return ginx.Result{
		Data: PopularAdminListVo{
			Items: slice.Map(res.Items, toPopularAdminVo),
			Page:  res.Page,
			Limit: res.Limit,
			Total: res.Total,
		},
	}, nil
}

// Rebuild 手动触发重算。同步执行，算完才返回
func (h *PopularProductAdminHandler) Rebuild(ctx *gin.Context) (ginx.Result, error) {
	err := h.svc.Rebuild(ctx.Request.Context())
	switch {
	case err == nil:
		return ginx.Result{
			Msg: "OK",
		}, nil
	case errors.Is(err, service.ErrRebuildRunning):
		// 有人在算了，这不是系统错误，让运营稍后再试
		return ginx.Result{
			Code: 4,
			Msg:  "热榜重算正在进行中，稍后再试",
		}, nil
	default:
		return ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		}, err
	}
}

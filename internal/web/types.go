package web

import (
	"bzmall/internal/domain"

	"github.com/gin-gonic/gin"
)

// Result API 响应的统一格式
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

// handler 定义了注册路由的接口类型
type handler interface {
	RegisterRoutes(s *gin.Engine)
}

// ListPopularReq 榜单分页查询参数，q 是商品名模糊搜索
type ListPopularReq struct {
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
	Name  string `form:"q"`
}

// PopularProductVo 给普通用户看的榜单行，只有展示字段
// 打分细节是内部口径，不往外暴露
type PopularProductVo struct {
	ProductId     int64  `json:"productId"`
	Rank          int64  `json:"rank"`
	Name          string `json:"name"`
	ThumbnailPath string `json:"thumbnailPath"`
	SalePrice     int64  `json:"salePrice"`
}

// PopularProductAdminVo 给运营看的榜单行，带全部指标
type PopularProductAdminVo struct {
	ProductId     int64  `json:"productId"`
	Rank          int64  `json:"rank"`
	Name          string `json:"name"`
	SalesCount    int64  `json:"salesCount"`
	ViewCount     int64  `json:"viewCount"`
	WishlistCount int64  `json:"wishlistCount"`
	CartAddCount  int64  `json:"cartAddCount"`
	TotalScore    int64  `json:"totalScore"`
}

type PopularListVo struct {
	Items []PopularProductVo `json:"items"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int64              `json:"total"`
}

type PopularAdminListVo struct {
	Items []PopularProductAdminVo `json:"items"`
	Page  int                     `json:"page"`
	Limit int                     `json:"limit"`
	Total int64                   `json:"total"`
}

func toPopularVo(idx int, src domain.PopularProduct) PopularProductVo {
	return PopularProductVo{
		ProductId:     src.ProductId,
		Rank:          src.Rank,
		Name:          src.Name,
		ThumbnailPath: src.ThumbnailPath,
		SalePrice:     src.SalePrice,
	}
}

func toPopularAdminVo(idx int, src domain.PopularProduct) PopularProductAdminVo {
	return PopularProductAdminVo{
		ProductId:     src.ProductId,
		Rank:          src.Rank,
		Name:          src.Name,
		SalesCount:    src.SalesCount,
		ViewCount:     src.ViewCount,
		WishlistCount: src.WishlistCount,
		CartAddCount:  src.CartAddCount,
		TotalScore:    src.TotalScore,
	}
}

package web

import (
	"net/http"
	"strconv"
	"time"

	"bzmall/internal/events/product"
	"bzmall/pkg/logger"

	"github.com/gin-gonic/gin"
)

var _ handler = (*ProductViewHandler)(nil)

// ProductViewHandler 接收商城前台上报的商品浏览
// 只发一条事件就返回，落库由消费者异步去做
type ProductViewHandler struct {
	producer product.Producer
	l        logger.Logger
}

func NewProductViewHandler(producer product.Producer, l logger.Logger) *ProductViewHandler {
	return &ProductViewHandler{
		producer: producer,
		l:        l,
	}
}

func (h *ProductViewHandler) RegisterRoutes(server *gin.Engine) {
	server.POST("/products/:id/view", h.View)
}

type ProductViewReq struct {
	Uid int64 `json:"uid"`
}

func (h *ProductViewHandler) View(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusOK, Result{
			Code: 4,
			Msg:  "参数错误",
		})
		return
	}
	var req ProductViewReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	err = h.producer.ProduceViewEvent(ctx, product.ViewEvent{
		Uid: req.Uid,
		Pid: id,
		// 浏览所在的自然日，按服务器本地时区算
		ViewDate: time.Now().Format(time.DateOnly),
	})
	if err != nil {
		// 少记一次浏览而已，不值得让前台报错
		h.l.Error("发送浏览事件失败",
			logger.Int64("pid", id),
			logger.Error(err))
	}
	ctx.JSON(http.StatusOK, Result{
		Msg: "OK",
	})
}

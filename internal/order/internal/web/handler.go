// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/ecodeclub/mall/internal/shipping"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
	sdk "github.com/smartwalle/alipay/v3"
	"gorm.io/gorm"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc    service.Service
	client *sdk.Client
	logger *elog.Component
}

func NewHandler(svc service.Service, client *sdk.Client) *Handler {
	return &Handler{
		svc:    svc,
		client: client,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.Create))
	g.POST("/cancel", ginx.BS[OrderSNReq](h.Cancel))
	g.POST("/detail", ginx.BS[OrderSNReq](h.Detail))
	g.POST("/list", ginx.BS[ListOrdersReq](h.List))
	g.POST("/preview", ginx.S(h.CartPreview))
	g.POST("/pay", ginx.BS[OrderSNReq](h.Pay))
	g.POST("/pay_status", ginx.BS[OrderSNReq](h.PayStatus))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 渠道回调约定回显纯文本 success/fail, 不走统一的 Result 包装
	server.POST("/order/alipay/callback", h.AlipayCallback)
}

func (h *Handler) Create(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.CreateOrder(ctx, sess.Claims().Uid, req.ShippingID)
	switch {
	case errors.Is(err, service.ErrAddressNotFound):
		return addressNotFoundResult, nil
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, nil
	case errors.Is(err, service.ErrProductUnavailable):
		return productUnavailableResult, nil
	case errors.Is(err, service.ErrInsufficientStock):
		return insufficientStockResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toOrderVO(order),
	}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Cancel(ctx, sess.Claims().Uid, req.SN)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return orderNotFoundResult, nil
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidOrderStatusResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	order, addr, err := h.svc.Detail(ctx, sess.Claims().Uid, req.SN)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: OrderDetailResp{
			Order:   toOrderVO(order),
			Address: toAddressVO(addr),
		},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *Handler) CartPreview(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	preview, err := h.svc.CheckedCartPreview(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return emptyCartResult, nil
	case errors.Is(err, service.ErrProductUnavailable):
		return productUnavailableResult, nil
	case errors.Is(err, service.ErrInsufficientStock):
		return insufficientStockResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CartPreviewResp{
			Items: slice.Map(preview.Items, func(idx int, src domain.OrderItem) OrderItem {
				return toItemVO(src)
			}),
			TotalPrice: preview.TotalPrice.StringFixed(2),
		},
	}, nil
}

func (h *Handler) Pay(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	qr, err := h.svc.Pay(ctx, sess.Claims().Uid, req.SN)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return orderNotFoundResult, nil
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidOrderStatusResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PayResp{QRCode: qr},
	}, nil
}

func (h *Handler) PayStatus(ctx *ginx.Context, req OrderSNReq, sess session.Session) (ginx.Result, error) {
	paid, err := h.svc.PayStatus(ctx, sess.Claims().Uid, req.SN)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PayStatusResp{Paid: paid},
	}, nil
}

// AlipayCallback 支付宝异步通知入口。
// 验签失败或处理失败回 fail, 渠道会按自己的节奏重发。
func (h *Handler) AlipayCallback(ctx *gin.Context) {
	if err := ctx.Request.ParseForm(); err != nil {
		ctx.String(http.StatusOK, "fail")
		return
	}
	noti, err := h.client.DecodeNotification(ctx.Request.Form)
	if err != nil {
		h.logger.Error("渠道通知验签失败", elog.FieldErr(err))
		ctx.String(http.StatusOK, "fail")
		return
	}
	amount, err := decimal.NewFromString(noti.TotalAmount)
	if err != nil {
		amount = decimal.Zero
	}
	err = h.svc.HandleGatewayCallback(ctx, domain.GatewayCallback{
		OutTradeNo:  noti.OutTradeNo,
		TradeNo:     noti.TradeNo,
		TradeStatus: string(noti.TradeStatus),
		PaidAt:      noti.GmtPayment,
		Amount:      amount,
	})
	if err != nil {
		h.logger.Error("处理渠道通知失败",
			elog.FieldErr(err),
			elog.String("outTradeNo", noti.OutTradeNo))
		ctx.String(http.StatusOK, "fail")
		return
	}
	ctx.String(http.StatusOK, "success")
}

func toOrderVO(src domain.Order) Order {
	return Order{
		SN:          src.SN,
		Payment:     src.Payment.StringFixed(2),
		Postage:     src.Postage.StringFixed(2),
		Status:      src.Status.ToUint8(),
		StatusDesc:  src.Status.Desc(),
		PaymentTime: src.PaymentTime,
		SendTime:    src.SendTime,
		Ctime:       src.Ctime,
		Items: slice.Map(src.Items, func(idx int, item domain.OrderItem) OrderItem {
			return toItemVO(item)
		}),
	}
}

func toItemVO(src domain.OrderItem) OrderItem {
	return OrderItem{
		ProductID:    src.ProductID,
		ProductName:  src.ProductName,
		ProductImage: src.ProductImage,
		UnitPrice:    src.UnitPrice.StringFixed(2),
		Quantity:     src.Quantity,
		TotalPrice:   src.TotalPrice.StringFixed(2),
	}
}

func toAddressVO(src shipping.Address) Address {
	return Address{
		ID:               src.ID,
		ReceiverName:     src.ReceiverName,
		ReceiverPhone:    src.ReceiverPhone,
		ReceiverMobile:   src.ReceiverMobile,
		ReceiverProvince: src.ReceiverProvince,
		ReceiverCity:     src.ReceiverCity,
		ReceiverDistrict: src.ReceiverDistrict,
		ReceiverAddress:  src.ReceiverAddress,
		ReceiverZip:      src.ReceiverZip,
	}
}

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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var _ ginx.Handler = (*Handler)(nil)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[AddCartItemReq](h.Add))
	g.POST("/update", ginx.BS[UpdateCartItemReq](h.Update))
	g.POST("/delete_product", ginx.BS[DeleteCartItemReq](h.Delete))
	g.POST("/list", ginx.S(h.List))
	g.POST("/select", ginx.BS[SelectCartItemReq](h.Select))
	g.POST("/un_select", ginx.BS[SelectCartItemReq](h.UnSelect))
	g.POST("/select_all", ginx.S(h.SelectAll))
	g.POST("/un_select_all", ginx.S(h.UnSelectAll))
	g.POST("/count", ginx.S(h.Count))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Add(ctx *ginx.Context, req AddCartItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Add(ctx, sess.Claims().Uid, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return illegalArgumentResult, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return illegalArgumentResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return h.list(ctx, sess.Claims().Uid)
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateCartItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SetQuantity(ctx, sess.Claims().Uid, req.ProductID, req.Quantity)
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return illegalArgumentResult, nil
	case errors.Is(err, service.ErrCartItemNotFound):
		return cartItemNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return h.list(ctx, sess.Claims().Uid)
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteCartItemReq, sess session.Session) (ginx.Result, error) {
	if len(req.ProductIDs) == 0 {
		return illegalArgumentResult, nil
	}
	if err := h.svc.Remove(ctx, sess.Claims().Uid, req.ProductIDs); err != nil {
		return systemErrorResult, err
	}
	return h.list(ctx, sess.Claims().Uid)
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.list(ctx, sess.Claims().Uid)
}

func (h *Handler) Select(ctx *ginx.Context, req SelectCartItemReq, sess session.Session) (ginx.Result, error) {
	if err := h.svc.SetChecked(ctx, sess.Claims().Uid, req.ProductID, true); err != nil {
		return systemErrorResult, err
	}
	return h.list(ctx, sess.Claims().Uid)
}

func (h *Handler) UnSelect(ctx *ginx.Context, req SelectCartItemReq, sess session.Session) (ginx.Result, error) {
	if err := h.svc.SetChecked(ctx, sess.Claims().Uid, req.ProductID, false); err != nil {
		return systemErrorResult, err
	}
	return h.list(ctx, sess.Claims().Uid)
}

func (h *Handler) SelectAll(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.svc.SetChecked(ctx, sess.Claims().Uid, 0, true); err != nil {
		return systemErrorResult, err
	}
	return h.list(ctx, sess.Claims().Uid)
}

func (h *Handler) UnSelectAll(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.svc.SetChecked(ctx, sess.Claims().Uid, 0, false); err != nil {
		return systemErrorResult, err
	}
	return h.list(ctx, sess.Claims().Uid)
}

func (h *Handler) Count(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cnt, err := h.svc.Count(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CartCountResp{Count: cnt},
	}, nil
}

func (h *Handler) list(ctx *ginx.Context, uid int64) (ginx.Result, error) {
	view, err := h.svc.Snapshot(ctx, uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toCartResp(view),
	}, nil
}

func (h *Handler) toCartResp(view domain.CartView) CartResp {
	return CartResp{
		Items: slice.Map(view.Items, func(idx int, src domain.CartItemView) CartItem {
			return CartItem{
				ID:            src.ID,
				ProductID:     src.ProductID,
				ProductName:   src.ProductName,
				Subtitle:      src.Subtitle,
				MainImage:     src.MainImage,
				Price:         src.Price.StringFixed(2),
				Quantity:      src.Quantity,
				Stock:         src.Stock,
				Checked:       src.Checked,
				LimitExceeded: src.LimitExceeded,
				TotalPrice:    src.TotalPrice.StringFixed(2),
			}
		}),
		TotalPrice: view.TotalPrice.StringFixed(2),
		AllChecked: view.AllChecked,
	}
}

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
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes 商品浏览不需要登录
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/detail", ginx.B[ProductDetailReq](h.Detail))
	g.POST("/list", ginx.B[ListProductsReq](h.List))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) Detail(ctx *ginx.Context, req ProductDetailReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx.Request.Context(), req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, service.ErrProductOffShelf) {
		return productNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductDetailResp{Product: toProductVO(p)},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	ps, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListProductsResp{
			Total: total,
			Products: slice.Map(ps, func(idx int, src domain.Product) Product {
				return toProductVO(src)
			}),
		},
	}, nil
}

func toProductVO(p domain.Product) Product {
	return Product{
		ID:        p.ID,
		Name:      p.Name,
		Subtitle:  p.Subtitle,
		MainImage: p.MainImage,
		Price:     p.Price.StringFixed(2),
		Stock:     p.Stock,
		Status:    p.Status.ToUint8(),
	}
}

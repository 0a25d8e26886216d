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
	"github.com/ecodeclub/mall/internal/pkg/money"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[SaveProductReq](h.Save))
	g.POST("/set_sale_status", ginx.B[SetSaleStatusReq](h.SetSaleStatus))
	g.POST("/list", ginx.B[ListProductsReq](h.List))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveProductReq) (ginx.Result, error) {
	price, err := money.FromString(req.Product.Price)
	if err != nil || price.IsNegative() || req.Product.Stock < 0 {
		return illegalArgumentResult, nil
	}
	id, err := h.svc.Save(ctx.Request.Context(), domain.Product{
		ID:        req.Product.ID,
		Name:      req.Product.Name,
		Subtitle:  req.Product.Subtitle,
		MainImage: req.Product.MainImage,
		Price:     price,
		Stock:     req.Product.Stock,
		Status:    domain.SaleStatus(req.Product.Status),
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) SetSaleStatus(ctx *ginx.Context, req SetSaleStatusReq) (ginx.Result, error) {
	status := domain.SaleStatus(req.Status)
	if status != domain.SaleStatusOnSale && status != domain.SaleStatusOffSale && status != domain.SaleStatusDeleted {
		return illegalArgumentResult, nil
	}
	err := h.svc.UpdateSaleStatus(ctx.Request.Context(), req.ProductID, status)
	if errors.Is(err, service.ErrProductNotFound) {
		return productNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
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

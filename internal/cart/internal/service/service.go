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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/repository"
	"github.com/ecodeclub/mall/internal/pkg/money"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/gotomicro/ego/core/elog"
	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound = repository.ErrCartItemNotFound
	ErrInvalidQuantity  = errors.New("非法的商品数量")
)

type Service interface {
	Add(ctx context.Context, uid, productID, quantity int64) error
	SetQuantity(ctx context.Context, uid, productID, quantity int64) error
	Remove(ctx context.Context, uid int64, productIDs []int64) error
	// SetChecked productID 为 0 时作用于全车
	SetChecked(ctx context.Context, uid, productID int64, checked bool) error
	// Count 未登录用户返回 0
	Count(ctx context.Context, uid int64) (int64, error)
	// Snapshot 整车快照, 数量超出库存时按库存钳位并回写购物车
	Snapshot(ctx context.Context, uid int64) (domain.CartView, error)
	// FindCheckedItems 下单入口, 返回原始勾选行不做钳位
	FindCheckedItems(ctx context.Context, uid int64) ([]domain.CartItem, error)
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
		logger:     elog.DefaultLogger,
	}
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
	logger     *elog.Component
}

func (s *service) Add(ctx context.Context, uid, productID, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	_, err := s.productSvc.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	return s.repo.Add(ctx, uid, productID, quantity)
}

func (s *service) SetQuantity(ctx context.Context, uid, productID, quantity int64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	return s.repo.SetQuantity(ctx, uid, productID, quantity)
}

func (s *service) Remove(ctx context.Context, uid int64, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}
	return s.repo.Remove(ctx, uid, productIDs)
}

func (s *service) SetChecked(ctx context.Context, uid, productID int64, checked bool) error {
	return s.repo.SetChecked(ctx, uid, productID, checked)
}

func (s *service) Count(ctx context.Context, uid int64) (int64, error) {
	if uid <= 0 {
		return 0, nil
	}
	return s.repo.TotalQuantity(ctx, uid)
}

func (s *service) Snapshot(ctx context.Context, uid int64) (domain.CartView, error) {
	res := domain.CartView{
		Items:      make([]domain.CartItemView, 0, 8),
		TotalPrice: money.Zero(),
	}
	if uid <= 0 {
		return res, nil
	}
	items, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return domain.CartView{}, err
	}
	for _, item := range items {
		p, err := s.productSvc.FindByID(ctx, item.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 商品已被物理删除, 行保留在库里但不再展示
			continue
		}
		if err != nil {
			return domain.CartView{}, err
		}
		view := domain.CartItemView{
			ID:          item.ID,
			UID:         item.UID,
			ProductID:   item.ProductID,
			ProductName: p.Name,
			Subtitle:    p.Subtitle,
			MainImage:   p.MainImage,
			Price:       p.Price,
			Quantity:    item.Quantity,
			Stock:       p.Stock,
			Checked:     item.Checked,
		}
		if item.Quantity > p.Stock {
			view.Quantity = p.Stock
			view.LimitExceeded = true
			// 回写钳位后的数量, 失败只记日志不影响展示。
			// 售罄时不回写: 购物车里的数量恒 >= 1, 零数量不落库,
			// 这样的行走到下单会被库存守卫拦下。
			if p.Stock >= 1 {
				if err := s.repo.OverwriteQuantity(ctx, uid, item.ProductID, p.Stock); err != nil {
					s.logger.Error("回写购物车数量失败",
						elog.FieldErr(err),
						elog.Int64("uid", uid),
						elog.Int64("productID", item.ProductID))
				}
			}
		}
		view.TotalPrice = money.MulInt(p.Price, view.Quantity)
		if view.Checked {
			res.TotalPrice = money.Add(res.TotalPrice, view.TotalPrice)
		}
		res.Items = append(res.Items, view)
	}
	if len(res.Items) > 0 {
		unchecked, err := s.repo.CountUnchecked(ctx, uid)
		if err != nil {
			return domain.CartView{}, err
		}
		res.AllChecked = unchecked == 0
	}
	return res, nil
}

func (s *service) FindCheckedItems(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	return s.repo.FindCheckedByUID(ctx, uid)
}

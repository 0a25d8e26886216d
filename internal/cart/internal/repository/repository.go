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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/repository/dao"
)

var ErrCartItemNotFound = dao.ErrCartItemNotFound

type CartRepository interface {
	Add(ctx context.Context, uid, productID, quantity int64) error
	SetQuantity(ctx context.Context, uid, productID, quantity int64) error
	OverwriteQuantity(ctx context.Context, uid, productID, quantity int64) error
	Remove(ctx context.Context, uid int64, productIDs []int64) error
	SetChecked(ctx context.Context, uid, productID int64, checked bool) error
	FindByUID(ctx context.Context, uid int64) ([]domain.CartItem, error)
	FindCheckedByUID(ctx context.Context, uid int64) ([]domain.CartItem, error)
	TotalQuantity(ctx context.Context, uid int64) (int64, error)
	CountUnchecked(ctx context.Context, uid int64) (int64, error)
}

func NewRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{d: d}
}

type cartRepository struct {
	d dao.CartDAO
}

func (c *cartRepository) Add(ctx context.Context, uid, productID, quantity int64) error {
	return c.d.Upsert(ctx, uid, productID, quantity)
}

func (c *cartRepository) SetQuantity(ctx context.Context, uid, productID, quantity int64) error {
	return c.d.UpdateQuantity(ctx, uid, productID, quantity)
}

func (c *cartRepository) OverwriteQuantity(ctx context.Context, uid, productID, quantity int64) error {
	return c.d.SetQuantity(ctx, uid, productID, quantity)
}

func (c *cartRepository) Remove(ctx context.Context, uid int64, productIDs []int64) error {
	return c.d.Delete(ctx, uid, productIDs)
}

func (c *cartRepository) SetChecked(ctx context.Context, uid, productID int64, checked bool) error {
	return c.d.UpdateChecked(ctx, uid, productID, checked)
}

func (c *cartRepository) FindByUID(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	res, err := c.d.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Cart) domain.CartItem {
		return c.toDomain(src)
	}), nil
}

func (c *cartRepository) FindCheckedByUID(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	res, err := c.d.FindCheckedByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Cart) domain.CartItem {
		return c.toDomain(src)
	}), nil
}

func (c *cartRepository) TotalQuantity(ctx context.Context, uid int64) (int64, error) {
	return c.d.SumQuantityByUID(ctx, uid)
}

func (c *cartRepository) CountUnchecked(ctx context.Context, uid int64) (int64, error) {
	return c.d.CountUncheckedByUID(ctx, uid)
}

func (c *cartRepository) toDomain(src dao.Cart) domain.CartItem {
	return domain.CartItem{
		ID:        src.Id,
		UID:       src.Uid,
		ProductID: src.ProductId,
		Quantity:  src.Quantity,
		Checked:   src.Checked,
		Ctime:     src.Ctime,
		Utime:     src.Utime,
	}
}

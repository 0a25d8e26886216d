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
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound     = dao.ErrOrderNotFound
	ErrDuplicatedOrderSN = dao.ErrDuplicatedOrderSN
	ErrInsufficientStock = dao.ErrInsufficientStock
	ErrInvalidStatus     = dao.ErrInvalidStatus
)

type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) (int64, error)
	Cancel(ctx context.Context, uid, sn int64) error
	MarkPaid(ctx context.Context, sn, paymentTime int64) (bool, error)
	MarkShipped(ctx context.Context, sn int64) error
	// FindBySN 不带订单行
	FindBySN(ctx context.Context, sn int64) (domain.Order, error)
	// FindByUIDAndSN 带订单行
	FindByUIDAndSN(ctx context.Context, uid, sn int64) (domain.Order, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, error)
	Count(ctx context.Context) (int64, error)
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{d: d}
}

type orderRepository struct {
	d dao.OrderDAO
}

func (o *orderRepository) Create(ctx context.Context, order domain.Order) (int64, error) {
	items := slice.Map(order.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return o.toItemEntity(src)
	})
	return o.d.CreateOrder(ctx, o.toEntity(order), items)
}

func (o *orderRepository) Cancel(ctx context.Context, uid, sn int64) error {
	return o.d.CancelOrder(ctx, uid, sn)
}

func (o *orderRepository) MarkPaid(ctx context.Context, sn, paymentTime int64) (bool, error) {
	return o.d.MarkPaid(ctx, sn, paymentTime)
}

func (o *orderRepository) MarkShipped(ctx context.Context, sn int64) error {
	return o.d.MarkShipped(ctx, sn)
}

func (o *orderRepository) FindBySN(ctx context.Context, sn int64) (domain.Order, error) {
	res, err := o.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toDomain(res), nil
}

func (o *orderRepository) FindByUIDAndSN(ctx context.Context, uid, sn int64) (domain.Order, error) {
	res, err := o.d.FindByUIDAndSN(ctx, uid, sn)
	if err != nil {
		return domain.Order{}, err
	}
	order := o.toDomain(res)
	items, err := o.d.FindItemsByOrderID(ctx, res.Id)
	if err != nil {
		return domain.Order{}, err
	}
	order.Items = slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
		return o.toItemDomain(src)
	})
	return order, nil
}

func (o *orderRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	res, err := o.d.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomainWithItems(ctx, res)
}

func (o *orderRepository) CountByUID(ctx context.Context, uid int64) (int64, error) {
	return o.d.CountByUID(ctx, uid)
}

func (o *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	res, err := o.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return o.toDomainWithItems(ctx, res)
}

func (o *orderRepository) Count(ctx context.Context) (int64, error) {
	return o.d.Count(ctx)
}

func (o *orderRepository) toDomainWithItems(ctx context.Context, orders []dao.Order) ([]domain.Order, error) {
	res := make([]domain.Order, 0, len(orders))
	for _, e := range orders {
		order := o.toDomain(e)
		items, err := o.d.FindItemsByOrderID(ctx, e.Id)
		if err != nil {
			return nil, err
		}
		order.Items = slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return o.toItemDomain(src)
		})
		res = append(res, order)
	}
	return res, nil
}

func (o *orderRepository) toEntity(src domain.Order) dao.Order {
	return dao.Order{
		Id:          src.ID,
		Sn:          src.SN,
		Uid:         src.UID,
		ShippingId:  src.ShippingID,
		Payment:     src.Payment,
		Postage:     src.Postage,
		Status:      src.Status.ToUint8(),
		PaymentTime: src.PaymentTime,
		SendTime:    src.SendTime,
	}
}

func (o *orderRepository) toDomain(src dao.Order) domain.Order {
	return domain.Order{
		ID:          src.Id,
		SN:          src.Sn,
		UID:         src.Uid,
		ShippingID:  src.ShippingId,
		Payment:     src.Payment,
		Postage:     src.Postage,
		Status:      domain.OrderStatus(src.Status),
		PaymentTime: src.PaymentTime,
		SendTime:    src.SendTime,
		Ctime:       src.Ctime,
		Utime:       src.Utime,
	}
}

func (o *orderRepository) toItemEntity(src domain.OrderItem) dao.OrderItem {
	return dao.OrderItem{
		Id:           src.ID,
		OrderId:      src.OrderID,
		ProductId:    src.ProductID,
		ProductName:  src.ProductName,
		ProductImage: src.ProductImage,
		UnitPrice:    src.UnitPrice,
		Quantity:     src.Quantity,
		TotalPrice:   src.TotalPrice,
	}
}

func (o *orderRepository) toItemDomain(src dao.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ID:           src.Id,
		OrderID:      src.OrderId,
		ProductID:    src.ProductId,
		ProductName:  src.ProductName,
		ProductImage: src.ProductImage,
		UnitPrice:    src.UnitPrice,
		Quantity:     src.Quantity,
		TotalPrice:   src.TotalPrice,
	}
}

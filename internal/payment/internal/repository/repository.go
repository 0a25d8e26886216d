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
	"github.com/ecodeclub/mall/internal/payment/internal/domain"
	"github.com/ecodeclub/mall/internal/payment/internal/repository/dao"
)

type ReceiptRepository interface {
	Save(ctx context.Context, r domain.Receipt) (int64, error)
	FindByOrderSN(ctx context.Context, orderSN string) ([]domain.Receipt, error)
}

func NewRepository(d dao.ReceiptDAO) ReceiptRepository {
	return &receiptRepository{d: d}
}

type receiptRepository struct {
	d dao.ReceiptDAO
}

func (r *receiptRepository) Save(ctx context.Context, rcp domain.Receipt) (int64, error) {
	return r.d.Insert(ctx, r.toEntity(rcp))
}

func (r *receiptRepository) FindByOrderSN(ctx context.Context, orderSN string) ([]domain.Receipt, error) {
	res, err := r.d.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Receipt) domain.Receipt {
		return r.toDomain(src)
	}), nil
}

func (r *receiptRepository) toEntity(src domain.Receipt) dao.Receipt {
	return dao.Receipt{
		Id:             src.ID,
		Uid:            src.UID,
		OrderSn:        src.OrderSN,
		TradeNo:        src.TradeNo,
		Platform:       src.Platform.ToUint8(),
		PlatformStatus: src.PlatformStatus,
		Amount:         src.Amount,
		PayTime:        src.PayTime,
	}
}

func (r *receiptRepository) toDomain(src dao.Receipt) domain.Receipt {
	return domain.Receipt{
		ID:             src.Id,
		UID:            src.Uid,
		OrderSN:        src.OrderSn,
		TradeNo:        src.TradeNo,
		Platform:       domain.Platform(src.Platform),
		PlatformStatus: src.PlatformStatus,
		Amount:         src.Amount,
		PayTime:        src.PayTime,
		Ctime:          src.Ctime,
	}
}

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

	"github.com/ecodeclub/mall/internal/payment/internal/domain"
	"github.com/ecodeclub/mall/internal/payment/internal/repository"
)

// Gateway 支付渠道, 预下单返回可供扫码的二维码内容
type Gateway interface {
	Precreate(ctx context.Context, pmt domain.PrecreateOrder) (string, error)
}

type Service interface {
	// Precreate 向渠道预下单, 返回二维码内容
	Precreate(ctx context.Context, pmt domain.PrecreateOrder) (string, error)
	// SaveReceipt 落一条回调凭据, 永远是追加
	SaveReceipt(ctx context.Context, r domain.Receipt) (int64, error)
	ListReceiptsByOrderSN(ctx context.Context, orderSN string) ([]domain.Receipt, error)
}

func NewService(gateway Gateway, repo repository.ReceiptRepository) Service {
	return &service{
		gateway: gateway,
		repo:    repo,
	}
}

type service struct {
	gateway Gateway
	repo    repository.ReceiptRepository
}

func (s *service) Precreate(ctx context.Context, pmt domain.PrecreateOrder) (string, error) {
	return s.gateway.Precreate(ctx, pmt)
}

func (s *service) SaveReceipt(ctx context.Context, r domain.Receipt) (int64, error) {
	return s.repo.Save(ctx, r)
}

func (s *service) ListReceiptsByOrderSN(ctx context.Context, orderSN string) ([]domain.Receipt, error) {
	return s.repo.FindByOrderSN(ctx, orderSN)
}

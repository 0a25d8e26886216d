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
	"testing"

	"github.com/ecodeclub/mall/internal/payment/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	lastOrder domain.PrecreateOrder
}

func (f *fakeGateway) Precreate(_ context.Context, pmt domain.PrecreateOrder) (string, error) {
	f.lastOrder = pmt
	return "https://qr.alipay.com/bax-test", nil
}

type fakeReceiptRepo struct {
	receipts []domain.Receipt
}

func (f *fakeReceiptRepo) Save(_ context.Context, r domain.Receipt) (int64, error) {
	r.ID = int64(len(f.receipts) + 1)
	f.receipts = append(f.receipts, r)
	return r.ID, nil
}

func (f *fakeReceiptRepo) FindByOrderSN(_ context.Context, orderSN string) ([]domain.Receipt, error) {
	res := make([]domain.Receipt, 0, len(f.receipts))
	for _, r := range f.receipts {
		if r.OrderSN == orderSN {
			res = append(res, r)
		}
	}
	return res, nil
}

func TestService_Precreate(t *testing.T) {
	t.Parallel()
	gateway := &fakeGateway{}
	svc := NewService(gateway, &fakeReceiptRepo{})
	qr, err := svc.Precreate(context.Background(), domain.PrecreateOrder{
		OrderSN: "1756600000000666",
		Subject: "扫码支付,订单号:1756600000000666",
		Amount:  decimal.RequireFromString("69.97"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://qr.alipay.com/bax-test", qr)
	assert.Equal(t, "1756600000000666", gateway.lastOrder.OrderSN)
}

func TestService_SaveReceipt(t *testing.T) {
	t.Parallel()
	repo := &fakeReceiptRepo{}
	svc := NewService(&fakeGateway{}, repo)
	r := domain.Receipt{
		UID:            234,
		OrderSN:        "1756600000000666",
		TradeNo:        "2026083122001430100000000001",
		Platform:       domain.PlatformAlipay,
		PlatformStatus: "TRADE_SUCCESS",
		Amount:         decimal.RequireFromString("69.97"),
	}
	// 重复保存不做去重, 每次都是新的一条
	for i := 0; i < 3; i++ {
		_, err := svc.SaveReceipt(context.Background(), r)
		require.NoError(t, err)
	}
	got, err := svc.ListReceiptsByOrderSN(context.Background(), "1756600000000666")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

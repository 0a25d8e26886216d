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

package domain

import "github.com/shopspring/decimal"

type Platform uint8

const (
	PlatformAlipay Platform = 1
)

func (p Platform) ToUint8() uint8 {
	return uint8(p)
}

func (p Platform) Desc() string {
	switch p {
	case PlatformAlipay:
		return "支付宝"
	default:
		return "未知"
	}
}

// PrecreateOrder 预下单请求, 换取支付二维码
type PrecreateOrder struct {
	OrderSN string
	Subject string
	Amount  decimal.Decimal
}

// Receipt 渠道回调的原始凭据, 只追加不修改,
// 同一笔订单收到几次回调就落几条
type Receipt struct {
	ID  int64
	UID int64
	// OrderSN 即渠道侧的 out_trade_no
	OrderSN string
	// TradeNo 渠道流水号
	TradeNo  string
	Platform Platform
	// PlatformStatus 渠道原始状态, 例如 TRADE_SUCCESS
	PlatformStatus string
	Amount         decimal.Decimal
	// PayTime 渠道给出的支付完成时间, unix 毫秒
	PayTime int64
	Ctime   int64
}

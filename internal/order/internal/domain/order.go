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

type OrderStatus uint8

const (
	StatusUnpaid   OrderStatus = 0
	StatusPaid     OrderStatus = 1
	StatusShipped  OrderStatus = 2
	StatusClosed   OrderStatus = 3
	StatusCanceled OrderStatus = 4
)

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s OrderStatus) Desc() string {
	switch s {
	case StatusUnpaid:
		return "未支付"
	case StatusPaid:
		return "已支付"
	case StatusShipped:
		return "已发货"
	case StatusClosed:
		return "已完成"
	case StatusCanceled:
		return "已取消"
	default:
		return "未知状态"
	}
}

// transitions 合法的状态流转表, 不在表里的一律拒绝
var transitions = map[OrderStatus][]OrderStatus{
	StatusUnpaid:  {StatusPaid, StatusCanceled},
	StatusPaid:    {StatusShipped},
	StatusShipped: {StatusClosed},
}

// CanTransition 判定 s 能否流转到 target
func (s OrderStatus) CanTransition(target OrderStatus) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// PaidOrBeyond 是否已经走过支付环节。
// 已取消的订单同样算"走过", 重复回调与对已取消订单的回调都按重复处理。
func (s OrderStatus) PaidOrBeyond() bool {
	return s >= StatusPaid
}

type Order struct {
	ID  int64
	SN  int64
	UID int64
	// ShippingID 下单时引用的收货地址
	ShippingID int64
	// Payment 应付总额, 即各行 TotalPrice 之和加运费
	Payment decimal.Decimal
	Postage decimal.Decimal
	Status  OrderStatus
	// PaymentTime 渠道侧支付完成时间, unix 毫秒, 未支付为 0
	PaymentTime int64
	// SendTime 发货时间, unix 毫秒
	SendTime int64
	Ctime    int64
	Utime    int64
	Items    []OrderItem
}

// OrderItem 订单行, 价格是下单一刻的快照,
// 商品后续改价不影响已生成的订单
type OrderItem struct {
	ID           int64
	OrderID      int64
	ProductID    int64
	ProductName  string
	ProductImage string
	// UnitPrice 下单时的单价快照
	UnitPrice decimal.Decimal
	Quantity  int64
	// TotalPrice = UnitPrice * Quantity
	TotalPrice decimal.Decimal
}

// CartPreview 下单前确认页, 按当前勾选的购物车行试算,
// 不落库不扣库存
type CartPreview struct {
	Items      []OrderItem
	TotalPrice decimal.Decimal
}

// GatewayCallback 支付渠道异步通知里我们关心的字段
type GatewayCallback struct {
	// OutTradeNo 商户订单号, 即 Order.SN 的字符串形式
	OutTradeNo string
	// TradeNo 渠道交易流水号
	TradeNo string
	// TradeStatus 渠道交易状态, TRADE_SUCCESS 才触发状态流转
	TradeStatus string
	// PaidAt 渠道格式的支付完成时间, 2006-01-02 15:04:05
	PaidAt string
	// Amount 回调金额
	Amount decimal.Decimal
}

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

// CartItem 购物车行, 一个用户对同一商品只有一行
type CartItem struct {
	ID        int64
	UID       int64
	ProductID int64
	Quantity  int64
	Checked   bool
	Ctime     int64
	Utime     int64
}

// CartItemView 购物车行与商品信息的联合视图。
// Quantity 是按库存钳位之后的数量, LimitExceeded 表示发生过钳位。
type CartItemView struct {
	ID            int64
	UID           int64
	ProductID     int64
	ProductName   string
	Subtitle      string
	MainImage     string
	Price         decimal.Decimal
	Quantity      int64
	Stock         int64
	Checked       bool
	LimitExceeded bool
	// TotalPrice = Price * Quantity
	TotalPrice decimal.Decimal
}

// CartView 整车快照
type CartView struct {
	Items []CartItemView
	// TotalPrice 只累计勾选中的行
	TotalPrice decimal.Decimal
	// AllChecked 空车或未登录时恒为 false
	AllChecked bool
}

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

type SaleStatus uint8

func (s SaleStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	SaleStatusOnSale  SaleStatus = 1 // 在售
	SaleStatusOffSale SaleStatus = 2 // 下架
	SaleStatusDeleted SaleStatus = 3 // 删除
)

type Product struct {
	ID        int64
	Name      string
	Subtitle  string
	MainImage string
	Price     decimal.Decimal
	Stock     int64
	Status    SaleStatus
}

// OnSale 只有在售商品才能加入结算
func (p Product) OnSale() bool {
	return p.Status == SaleStatusOnSale
}

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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
)

type ReceiptDAO interface {
	Insert(ctx context.Context, r Receipt) (int64, error)
	FindByOrderSN(ctx context.Context, orderSN string) ([]Receipt, error)
}

type ReceiptGORMDAO struct {
	db *egorm.Component
}

func NewReceiptGORMDAO(db *egorm.Component) ReceiptDAO {
	return &ReceiptGORMDAO{db: db}
}

func (d *ReceiptGORMDAO) Insert(ctx context.Context, r Receipt) (int64, error) {
	r.Ctime = time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (d *ReceiptGORMDAO) FindByOrderSN(ctx context.Context, orderSN string) ([]Receipt, error) {
	var res []Receipt
	err := d.db.WithContext(ctx).
		Where("order_sn = ?", orderSN).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

// Receipt 回调凭据流水, 没有唯一索引, 重复回调照单全收
type Receipt struct {
	Id             int64           `gorm:"primaryKey;autoIncrement;comment:凭据自增ID"`
	Uid            int64           `gorm:"not null;index:idx_uid;comment:订单归属的用户ID"`
	OrderSn        string          `gorm:"column:order_sn;type:varchar(64);not null;index:idx_order_sn;comment:商户订单号"`
	TradeNo        string          `gorm:"type:varchar(64);not null;comment:渠道交易流水号"`
	Platform       uint8           `gorm:"type:tinyint unsigned;not null;default:1;comment:支付渠道 1=支付宝"`
	PlatformStatus string          `gorm:"type:varchar(32);not null;comment:渠道原始交易状态"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,2);not null;comment:回调金额"`
	PayTime        int64           `gorm:"comment:支付完成时间"`
	Ctime          int64
}

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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrInsufficientStock 扣减库存时余量不足
	ErrInsufficientStock = errors.New("库存不足")
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = gorm.ErrRecordNotFound
)

type ProductDAO interface {
	FindByID(ctx context.Context, id int64) (Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, p Product) (int64, error)
	UpdateSaleStatus(ctx context.Context, id int64, status uint8) error
	ReserveStock(ctx context.Context, id, quantity int64) error
	RestoreStock(ctx context.Context, id, quantity int64) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (d *ProductGORMDAO) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).
		Where("status != ?", saleStatusDeleted).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("status != ?", saleStatusDeleted).
		Count(&res).Error
	return res, err
}

func (d *ProductGORMDAO) Save(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Id == 0 {
		p.Ctime = now
		err := d.db.WithContext(ctx).Create(&p).Error
		return p.Id, err
	}
	err := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", p.Id).
		Updates(map[string]any{
			"name":       p.Name,
			"subtitle":   p.Subtitle,
			"main_image": p.MainImage,
			"price":      p.Price,
			"stock":      p.Stock,
			"status":     p.Status,
			"utime":      now,
		}).Error
	return p.Id, err
}

func (d *ProductGORMDAO) UpdateSaleStatus(ctx context.Context, id int64, status uint8) error {
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ReserveStock 带条件的扣减。WHERE stock >= quantity 保证并发扣减不会把库存打成负数,
// 影响行数为 0 视为库存不足。
// 订单模块的下单事务里内联了一份同样的守卫 SQL, 改这里必须同步改那边。
func (d *ProductGORMDAO) ReserveStock(ctx context.Context, id, quantity int64) error {
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// RestoreStock 无条件加回。只在取消未支付订单时调用, 对应的扣减此前恰好发生过一次。
func (d *ProductGORMDAO) RestoreStock(ctx context.Context, id, quantity int64) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock": gorm.Expr("stock + ?", quantity),
			"utime": time.Now().UnixMilli(),
		}).Error
}

const saleStatusDeleted uint8 = 3

type Product struct {
	Id        int64           `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	Name      string          `gorm:"type:varchar(100);not null;comment:商品名称"`
	Subtitle  string          `gorm:"type:varchar(200);comment:商品副标题"`
	MainImage string          `gorm:"type:varchar(500);comment:商品主图,url相对地址"`
	Price     decimal.Decimal `gorm:"type:decimal(20,2);not null;comment:商品价格,单位-元,保留两位小数"`
	Stock     int64           `gorm:"not null;comment:库存数量"`
	Status    uint8           `gorm:"type:tinyint unsigned;not null;default:1;comment:商品状态 1=在售 2=下架 3=删除"`
	Ctime     int64
	Utime     int64
}

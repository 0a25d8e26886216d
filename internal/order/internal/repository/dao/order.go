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
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = gorm.ErrRecordNotFound
	// ErrDuplicatedOrderSN 订单号撞了唯一索引, 调用方换号重试
	ErrDuplicatedOrderSN = errors.New("订单号冲突")
	ErrInsufficientStock = errors.New("库存不足")
	// ErrInvalidStatus 订单当前状态不允许本次流转
	ErrInvalidStatus = errors.New("订单状态不允许此操作")
)

type OrderDAO interface {
	// CreateOrder 在一个事务里落订单与订单行, 扣减库存并清掉对应购物车行。
	// 任何一个商品库存不够则整单回滚。
	CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error)
	// CancelOrder 仅未支付订单可取消, 取消时恢复库存
	CancelOrder(ctx context.Context, uid, sn int64) error
	// MarkPaid 未支付 -> 已支付, 返回是否真的发生了流转
	MarkPaid(ctx context.Context, sn, paymentTime int64) (bool, error)
	// MarkShipped 已支付 -> 已发货
	MarkShipped(ctx context.Context, sn int64) error
	FindBySN(ctx context.Context, sn int64) (Order, error)
	FindByUIDAndSN(ctx context.Context, uid, sn int64) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) CreateOrder(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			if d.isUniqueConflict(err) {
				return ErrDuplicatedOrderSN
			}
			return err
		}
		productIDs := make([]int64, 0, len(items))
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
			productIDs = append(productIDs, items[i].ProductId)
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		// 库存扣减带 stock >= ? 守卫, 防止并发下单把库存扣成负数。
		// 跨了商品表, 但必须和订单落库同一个事务, 否则回滚不掉。
		// 守卫条件和商品模块 dao 的 ReserveStock 是同一份语义, 改动要两边同步。
		for _, it := range items {
			res := tx.Table("products").
				Where("id = ? AND stock >= ?", it.ProductId, it.Quantity).
				Updates(map[string]any{
					"stock": gorm.Expr("stock - ?", it.Quantity),
					"utime": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrInsufficientStock
			}
		}
		return tx.Exec("DELETE FROM `carts` WHERE uid = ? AND product_id IN ?",
			o.Uid, productIDs).Error
	})
	return o.Id, err
}

func (d *OrderGORMDAO) CancelOrder(ctx context.Context, uid, sn int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.Where("uid = ? AND sn = ?", uid, sn).First(&o).Error; err != nil {
			return err
		}
		res := tx.Model(&Order{}).
			Where("id = ? AND status = ?", o.Id, uint8(0)).
			Updates(map[string]any{
				"status": uint8(4),
				"utime":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidStatus
		}
		var items []OrderItem
		if err := tx.Where("order_id = ?", o.Id).Find(&items).Error; err != nil {
			return err
		}
		for _, it := range items {
			err := tx.Table("products").
				Where("id = ?", it.ProductId).
				Updates(map[string]any{
					"stock": gorm.Expr("stock + ?", it.Quantity),
					"utime": now,
				}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (d *OrderGORMDAO) MarkPaid(ctx context.Context, sn, paymentTime int64) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND status = ?", sn, uint8(0)).
		Updates(map[string]any{
			"status":       uint8(1),
			"payment_time": paymentTime,
			"utime":        time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (d *OrderGORMDAO) MarkShipped(ctx context.Context, sn int64) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("sn = ? AND status = ?", sn, uint8(1)).
		Updates(map[string]any{
			"status":    uint8(2),
			"send_time": now,
			"utime":     now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidStatus
	}
	return nil
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).First(&res, "sn = ?", sn).Error
	return res, err
}

func (d *OrderGORMDAO) FindByUIDAndSN(ctx context.Context, uid, sn int64) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).First(&res, "uid = ? AND sn = ?", uid, sn).Error
	return res, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var res []OrderItem
	err := d.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).
		Where("uid = ?", uid).
		Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *OrderGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Count(&res).Error
	return res, err
}

func (d *OrderGORMDAO) isUniqueConflict(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexConflictErrNo uint16 = 1062
		return me.Number == uniqueIndexConflictErrNo
	}
	return false
}

type Order struct {
	Id         int64           `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	Sn         int64           `gorm:"not null;uniqueIndex:uniq_order_sn;comment:订单号"`
	Uid        int64           `gorm:"not null;index:idx_uid;comment:买家ID"`
	ShippingId int64           `gorm:"not null;comment:收货地址ID"`
	Payment    decimal.Decimal `gorm:"type:decimal(20,2);not null;comment:应付总额"`
	Postage    decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0;comment:运费"`
	Status     uint8           `gorm:"type:tinyint unsigned;not null;default:0;comment:订单状态 0-未支付 1-已支付 2-已发货 3-已完成 4-已取消"`
	// PaymentTime 支付完成时间, 未支付为 0
	PaymentTime int64 `gorm:"not null;default:0;comment:支付完成时间"`
	SendTime    int64 `gorm:"not null;default:0;comment:发货时间"`
	Ctime       int64
	Utime       int64
}

type OrderItem struct {
	Id           int64           `gorm:"primaryKey;autoIncrement;comment:订单行自增ID"`
	OrderId      int64           `gorm:"not null;index:idx_order_id;comment:订单ID"`
	ProductId    int64           `gorm:"not null;comment:商品ID"`
	ProductName  string          `gorm:"type:varchar(100);not null;comment:下单时商品名快照"`
	ProductImage string          `gorm:"type:varchar(500);comment:下单时商品主图快照"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(20,2);not null;comment:下单时单价快照"`
	Quantity     int64           `gorm:"not null;comment:数量"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(20,2);not null;comment:行小计"`
	Ctime        int64
	Utime        int64
}

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
	"gorm.io/gorm"
)

var ErrCartItemNotFound = gorm.ErrRecordNotFound

type CartDAO interface {
	// Upsert 同一 (uid, product_id) 已有行时累加数量, 否则插入新行
	Upsert(ctx context.Context, uid, productID, quantity int64) error
	UpdateQuantity(ctx context.Context, uid, productID, quantity int64) error
	// SetQuantity 列表自愈用, 直接覆盖数量不走累加
	SetQuantity(ctx context.Context, uid, productID, quantity int64) error
	Delete(ctx context.Context, uid int64, productIDs []int64) error
	// UpdateChecked productID 为 0 时作用于全车
	UpdateChecked(ctx context.Context, uid, productID int64, checked bool) error
	FindByUID(ctx context.Context, uid int64) ([]Cart, error)
	FindCheckedByUID(ctx context.Context, uid int64) ([]Cart, error)
	SumQuantityByUID(ctx context.Context, uid int64) (int64, error)
	CountUncheckedByUID(ctx context.Context, uid int64) (int64, error)
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

func (d *CartGORMDAO) Upsert(ctx context.Context, uid, productID, quantity int64) error {
	now := time.Now().UnixMilli()
	c := Cart{
		Uid:       uid,
		ProductId: productID,
		Quantity:  quantity,
		Checked:   true,
		Ctime:     now,
		Utime:     now,
	}
	err := d.db.WithContext(ctx).Create(&c).Error
	if d.isUniqueConflict(err) {
		// 新加入的商品默认勾选, 对已有行则保留原勾选状态
		return d.db.WithContext(ctx).Model(&Cart{}).
			Where("uid = ? AND product_id = ?", uid, productID).
			Updates(map[string]any{
				"quantity": gorm.Expr("quantity + ?", quantity),
				"utime":    now,
			}).Error
	}
	return err
}

func (d *CartGORMDAO) UpdateQuantity(ctx context.Context, uid, productID, quantity int64) error {
	res := d.db.WithContext(ctx).Model(&Cart{}).
		Where("uid = ? AND product_id = ?", uid, productID).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (d *CartGORMDAO) SetQuantity(ctx context.Context, uid, productID, quantity int64) error {
	return d.db.WithContext(ctx).Model(&Cart{}).
		Where("uid = ? AND product_id = ?", uid, productID).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *CartGORMDAO) Delete(ctx context.Context, uid int64, productIDs []int64) error {
	return d.db.WithContext(ctx).
		Where("uid = ? AND product_id IN ?", uid, productIDs).
		Delete(&Cart{}).Error
}

func (d *CartGORMDAO) UpdateChecked(ctx context.Context, uid, productID int64, checked bool) error {
	db := d.db.WithContext(ctx).Model(&Cart{}).Where("uid = ?", uid)
	if productID > 0 {
		db = db.Where("product_id = ?", productID)
	}
	return db.Updates(map[string]any{
		"checked": checked,
		"utime":   time.Now().UnixMilli(),
	}).Error
}

func (d *CartGORMDAO) FindByUID(ctx context.Context, uid int64) ([]Cart, error) {
	var res []Cart
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (d *CartGORMDAO) FindCheckedByUID(ctx context.Context, uid int64) ([]Cart, error) {
	var res []Cart
	err := d.db.WithContext(ctx).
		Where("uid = ? AND checked = ?", uid, true).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (d *CartGORMDAO) SumQuantityByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Cart{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("uid = ?", uid).
		Scan(&res).Error
	return res, err
}

func (d *CartGORMDAO) CountUncheckedByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Cart{}).
		Where("uid = ? AND checked = ?", uid, false).
		Count(&res).Error
	return res, err
}

func (d *CartGORMDAO) isUniqueConflict(err error) bool {
	if err == nil {
		return false
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexConflictErrNo uint16 = 1062
		return me.Number == uniqueIndexConflictErrNo
	}
	return false
}

type Cart struct {
	Id        int64 `gorm:"primaryKey;autoIncrement;comment:购物车行自增ID"`
	Uid       int64 `gorm:"not null;uniqueIndex:uniq_uid_product_id;comment:用户ID"`
	ProductId int64 `gorm:"not null;uniqueIndex:uniq_uid_product_id;comment:商品ID"`
	Quantity  int64 `gorm:"not null;comment:数量"`
	Checked   bool  `gorm:"not null;default:true;comment:是否勾选参与结算"`
	Ctime     int64
	Utime     int64
}

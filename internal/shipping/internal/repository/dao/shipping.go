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
	"gorm.io/gorm"
)

// ErrAddressNotFound 地址不存在或不属于当前用户
var ErrAddressNotFound = gorm.ErrRecordNotFound

type ShippingDAO interface {
	Create(ctx context.Context, s Shipping) (int64, error)
	// FindByUIDAndID 带 uid 条件, 防止横向越权读到别人的地址
	FindByUIDAndID(ctx context.Context, uid, id int64) (Shipping, error)
	FindByID(ctx context.Context, id int64) (Shipping, error)
}

type ShippingGORMDAO struct {
	db *egorm.Component
}

func NewShippingGORMDAO(db *egorm.Component) ShippingDAO {
	return &ShippingGORMDAO{db: db}
}

func (d *ShippingGORMDAO) Create(ctx context.Context, s Shipping) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	err := d.db.WithContext(ctx).Create(&s).Error
	return s.Id, err
}

func (d *ShippingGORMDAO) FindByUIDAndID(ctx context.Context, uid, id int64) (Shipping, error) {
	var res Shipping
	err := d.db.WithContext(ctx).First(&res, "uid = ? AND id = ?", uid, id).Error
	return res, err
}

func (d *ShippingGORMDAO) FindByID(ctx context.Context, id int64) (Shipping, error) {
	var res Shipping
	err := d.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

type Shipping struct {
	Id               int64  `gorm:"primaryKey;autoIncrement;comment:收货地址自增ID"`
	Uid              int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	ReceiverName     string `gorm:"type:varchar(20);not null;comment:收货人姓名"`
	ReceiverPhone    string `gorm:"type:varchar(20);comment:收货人固定电话"`
	ReceiverMobile   string `gorm:"type:varchar(20);comment:收货人移动电话"`
	ReceiverProvince string `gorm:"type:varchar(20);comment:省份"`
	ReceiverCity     string `gorm:"type:varchar(20);comment:城市"`
	ReceiverDistrict string `gorm:"type:varchar(20);comment:区/县"`
	ReceiverAddress  string `gorm:"type:varchar(200);comment:详细地址"`
	ReceiverZip      string `gorm:"type:varchar(6);comment:邮编"`
	Ctime            int64
	Utime            int64
}

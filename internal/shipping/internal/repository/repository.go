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

package repository

import (
	"context"

	"github.com/ecodeclub/mall/internal/shipping/internal/domain"
	"github.com/ecodeclub/mall/internal/shipping/internal/repository/dao"
)

var ErrAddressNotFound = dao.ErrAddressNotFound

type ShippingRepository interface {
	Create(ctx context.Context, addr domain.Address) (int64, error)
	FindByUIDAndID(ctx context.Context, uid, id int64) (domain.Address, error)
	FindByID(ctx context.Context, id int64) (domain.Address, error)
}

func NewRepository(d dao.ShippingDAO) ShippingRepository {
	return &shippingRepository{d: d}
}

type shippingRepository struct {
	d dao.ShippingDAO
}

func (s *shippingRepository) Create(ctx context.Context, addr domain.Address) (int64, error) {
	return s.d.Create(ctx, s.toEntity(addr))
}

func (s *shippingRepository) FindByUIDAndID(ctx context.Context, uid, id int64) (domain.Address, error) {
	res, err := s.d.FindByUIDAndID(ctx, uid, id)
	if err != nil {
		return domain.Address{}, err
	}
	return s.toDomain(res), nil
}

func (s *shippingRepository) FindByID(ctx context.Context, id int64) (domain.Address, error) {
	res, err := s.d.FindByID(ctx, id)
	if err != nil {
		return domain.Address{}, err
	}
	return s.toDomain(res), nil
}

func (s *shippingRepository) toDomain(src dao.Shipping) domain.Address {
	return domain.Address{
		ID:               src.Id,
		UID:              src.Uid,
		ReceiverName:     src.ReceiverName,
		ReceiverPhone:    src.ReceiverPhone,
		ReceiverMobile:   src.ReceiverMobile,
		ReceiverProvince: src.ReceiverProvince,
		ReceiverCity:     src.ReceiverCity,
		ReceiverDistrict: src.ReceiverDistrict,
		ReceiverAddress:  src.ReceiverAddress,
		ReceiverZip:      src.ReceiverZip,
	}
}

func (s *shippingRepository) toEntity(src domain.Address) dao.Shipping {
	return dao.Shipping{
		Id:               src.ID,
		Uid:              src.UID,
		ReceiverName:     src.ReceiverName,
		ReceiverPhone:    src.ReceiverPhone,
		ReceiverMobile:   src.ReceiverMobile,
		ReceiverProvince: src.ReceiverProvince,
		ReceiverCity:     src.ReceiverCity,
		ReceiverDistrict: src.ReceiverDistrict,
		ReceiverAddress:  src.ReceiverAddress,
		ReceiverZip:      src.ReceiverZip,
	}
}

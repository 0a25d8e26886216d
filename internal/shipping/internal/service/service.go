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

package service

import (
	"context"

	"github.com/ecodeclub/mall/internal/shipping/internal/domain"
	"github.com/ecodeclub/mall/internal/shipping/internal/repository"
)

var ErrAddressNotFound = repository.ErrAddressNotFound

type Service interface {
	Save(ctx context.Context, addr domain.Address) (int64, error)
	// FindByUIDAndID 校验归属, 地址不属于该用户时与不存在一视同仁
	FindByUIDAndID(ctx context.Context, uid, id int64) (domain.Address, error)
	// FindByID 订单视图回填收货快照用, 不做归属校验
	FindByID(ctx context.Context, id int64) (domain.Address, error)
}

func NewService(repo repository.ShippingRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ShippingRepository
}

func (s *service) Save(ctx context.Context, addr domain.Address) (int64, error) {
	return s.repo.Create(ctx, addr)
}

func (s *service) FindByUIDAndID(ctx context.Context, uid, id int64) (domain.Address, error) {
	return s.repo.FindByUIDAndID(ctx, uid, id)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Address, error) {
	return s.repo.FindByID(ctx, id)
}

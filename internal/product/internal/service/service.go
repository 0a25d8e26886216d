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
	"errors"

	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProductNotFound   = repository.ErrProductNotFound
	ErrInsufficientStock = repository.ErrInsufficientStock
	// ErrProductOffShelf 商品已下架或删除, 客户端不可见
	ErrProductOffShelf = errors.New("商品已下架或删除")
)

type Service interface {
	// FindByID 内部读路径, 不过滤销售状态, 校验逻辑留给调用方
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	// Detail 面向客户的商品详情, 非在售商品一律不可见
	Detail(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	Save(ctx context.Context, p domain.Product) (int64, error)
	UpdateSaleStatus(ctx context.Context, id int64, status domain.SaleStatus) error
	ReserveStock(ctx context.Context, id, quantity int64) error
	RestoreStock(ctx context.Context, id, quantity int64) error
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if !p.OnSale() {
		return domain.Product{}, ErrProductOffShelf
	}
	return p, nil
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) Save(ctx context.Context, p domain.Product) (int64, error) {
	return s.repo.Save(ctx, p)
}

func (s *service) UpdateSaleStatus(ctx context.Context, id int64, status domain.SaleStatus) error {
	return s.repo.UpdateSaleStatus(ctx, id, status)
}

func (s *service) ReserveStock(ctx context.Context, id, quantity int64) error {
	return s.repo.ReserveStock(ctx, id, quantity)
}

func (s *service) RestoreStock(ctx context.Context, id, quantity int64) error {
	return s.repo.RestoreStock(ctx, id, quantity)
}

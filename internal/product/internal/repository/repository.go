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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mall/internal/product/internal/domain"
	"github.com/ecodeclub/mall/internal/product/internal/repository/dao"
)

var (
	ErrInsufficientStock = dao.ErrInsufficientStock
	ErrProductNotFound   = dao.ErrProductNotFound
)

type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, error)
	Total(ctx context.Context) (int64, error)
	Save(ctx context.Context, p domain.Product) (int64, error)
	UpdateSaleStatus(ctx context.Context, id int64, status domain.SaleStatus) error
	ReserveStock(ctx context.Context, id, quantity int64) error
	RestoreStock(ctx context.Context, id, quantity int64) error
}

func NewRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{d: d}
}

type productRepository struct {
	d dao.ProductDAO
}

func (p *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	res, err := p.d.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomain(res), nil
}

func (p *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, error) {
	ps, err := p.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return p.toDomain(src)
	}), nil
}

func (p *productRepository) Total(ctx context.Context) (int64, error) {
	return p.d.Count(ctx)
}

func (p *productRepository) Save(ctx context.Context, product domain.Product) (int64, error) {
	return p.d.Save(ctx, p.toEntity(product))
}

func (p *productRepository) UpdateSaleStatus(ctx context.Context, id int64, status domain.SaleStatus) error {
	return p.d.UpdateSaleStatus(ctx, id, status.ToUint8())
}

func (p *productRepository) ReserveStock(ctx context.Context, id, quantity int64) error {
	return p.d.ReserveStock(ctx, id, quantity)
}

func (p *productRepository) RestoreStock(ctx context.Context, id, quantity int64) error {
	return p.d.RestoreStock(ctx, id, quantity)
}

func (p *productRepository) toDomain(src dao.Product) domain.Product {
	return domain.Product{
		ID:        src.Id,
		Name:      src.Name,
		Subtitle:  src.Subtitle,
		MainImage: src.MainImage,
		Price:     src.Price,
		Stock:     src.Stock,
		Status:    domain.SaleStatus(src.Status),
	}
}

func (p *productRepository) toEntity(src domain.Product) dao.Product {
	return dao.Product{
		Id:        src.ID,
		Name:      src.Name,
		Subtitle:  src.Subtitle,
		MainImage: src.MainImage,
		Price:     src.Price,
		Stock:     src.Stock,
		Status:    src.Status.ToUint8(),
	}
}

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
	"sort"
	"testing"

	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testUID = int64(234)

type fakeCartRepo struct {
	items       map[int64]domain.CartItem
	overwritten map[int64]int64
}

func newFakeCartRepo(items ...domain.CartItem) *fakeCartRepo {
	res := &fakeCartRepo{
		items:       make(map[int64]domain.CartItem),
		overwritten: make(map[int64]int64),
	}
	for _, item := range items {
		res.items[item.ProductID] = item
	}
	return res
}

func (f *fakeCartRepo) Add(_ context.Context, uid, productID, quantity int64) error {
	item, ok := f.items[productID]
	if ok {
		item.Quantity += quantity
	} else {
		item = domain.CartItem{
			ID:        int64(len(f.items) + 1),
			UID:       uid,
			ProductID: productID,
			Quantity:  quantity,
			Checked:   true,
		}
	}
	f.items[productID] = item
	return nil
}

func (f *fakeCartRepo) SetQuantity(_ context.Context, _, productID, quantity int64) error {
	item, ok := f.items[productID]
	if !ok {
		return ErrCartItemNotFound
	}
	item.Quantity = quantity
	f.items[productID] = item
	return nil
}

func (f *fakeCartRepo) OverwriteQuantity(_ context.Context, _, productID, quantity int64) error {
	f.overwritten[productID] = quantity
	item := f.items[productID]
	item.Quantity = quantity
	f.items[productID] = item
	return nil
}

func (f *fakeCartRepo) Remove(_ context.Context, _ int64, productIDs []int64) error {
	for _, id := range productIDs {
		delete(f.items, id)
	}
	return nil
}

func (f *fakeCartRepo) SetChecked(_ context.Context, _, productID int64, checked bool) error {
	for id, item := range f.items {
		if productID == 0 || productID == id {
			item.Checked = checked
			f.items[id] = item
		}
	}
	return nil
}

func (f *fakeCartRepo) FindByUID(_ context.Context, uid int64) ([]domain.CartItem, error) {
	// 按 ProductID 稳定排序, 方便断言
	ids := make([]int64, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	res := make([]domain.CartItem, 0, len(ids))
	for _, id := range ids {
		if item := f.items[id]; item.UID == uid {
			res = append(res, item)
		}
	}
	return res, nil
}

func (f *fakeCartRepo) FindCheckedByUID(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	all, _ := f.FindByUID(ctx, uid)
	res := make([]domain.CartItem, 0, len(all))
	for _, item := range all {
		if item.Checked {
			res = append(res, item)
		}
	}
	return res, nil
}

func (f *fakeCartRepo) TotalQuantity(_ context.Context, uid int64) (int64, error) {
	var res int64
	for _, item := range f.items {
		if item.UID == uid {
			res += item.Quantity
		}
	}
	return res, nil
}

func (f *fakeCartRepo) CountUnchecked(_ context.Context, uid int64) (int64, error) {
	var res int64
	for _, item := range f.items {
		if item.UID == uid && !item.Checked {
			res++
		}
	}
	return res, nil
}

type fakeProductService struct {
	products map[int64]product.Product
}

func (f *fakeProductService) FindByID(_ context.Context, id int64) (product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return product.Product{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeProductService) Detail(ctx context.Context, id int64) (product.Product, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeProductService) List(_ context.Context, _, _ int) ([]product.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductService) Save(_ context.Context, _ product.Product) (int64, error) {
	return 0, nil
}

func (f *fakeProductService) UpdateSaleStatus(_ context.Context, _ int64, _ product.SaleStatus) error {
	return nil
}

func (f *fakeProductService) ReserveStock(_ context.Context, _, _ int64) error { return nil }
func (f *fakeProductService) RestoreStock(_ context.Context, _, _ int64) error { return nil }

func newFakeProductService() *fakeProductService {
	return &fakeProductService{
		products: map[int64]product.Product{
			1: {
				ID:     1,
				Name:   "斯伯丁篮球",
				Price:  decimal.RequireFromString("19.99"),
				Stock:  10,
				Status: product.SaleStatusOnSale,
			},
			2: {
				ID:     2,
				Name:   "Yonex羽毛球拍",
				Price:  decimal.RequireFromString("10.00"),
				Stock:  2,
				Status: product.SaleStatusOnSale,
			},
			3: {
				ID:     3,
				Name:   "绝版纪念球衣",
				Price:  decimal.RequireFromString("99.00"),
				Stock:  0,
				Status: product.SaleStatusOnSale,
			},
		},
	}
}

func TestService_Add(t *testing.T) {
	t.Parallel()
	t.Run("数量必须为正", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeCartRepo(), newFakeProductService())
		err := svc.Add(context.Background(), testUID, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
	t.Run("商品不存在", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeCartRepo(), newFakeProductService())
		err := svc.Add(context.Background(), testUID, 999, 1)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
	t.Run("重复添加累加数量", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCartRepo()
		svc := NewService(repo, newFakeProductService())
		require.NoError(t, svc.Add(context.Background(), testUID, 1, 2))
		require.NoError(t, svc.Add(context.Background(), testUID, 1, 3))
		assert.Equal(t, int64(5), repo.items[1].Quantity)
	})
}

func TestService_Snapshot(t *testing.T) {
	t.Parallel()
	t.Run("未登录返回空车", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeCartRepo(), newFakeProductService())
		view, err := svc.Snapshot(context.Background(), 0)
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.False(t, view.AllChecked)
		assert.Equal(t, "0.00", view.TotalPrice.StringFixed(2))
	})
	t.Run("空车AllChecked为假", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeCartRepo(), newFakeProductService())
		view, err := svc.Snapshot(context.Background(), testUID)
		require.NoError(t, err)
		assert.False(t, view.AllChecked)
	})
	t.Run("全部勾选时AllChecked为真_总价只算勾选行", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCartRepo(
			domain.CartItem{ID: 1, UID: testUID, ProductID: 1, Quantity: 3, Checked: true},
			domain.CartItem{ID: 2, UID: testUID, ProductID: 2, Quantity: 1, Checked: true},
		)
		svc := NewService(repo, newFakeProductService())
		view, err := svc.Snapshot(context.Background(), testUID)
		require.NoError(t, err)
		require.Len(t, view.Items, 2)
		assert.True(t, view.AllChecked)
		// 19.99*3 + 10.00 = 69.97
		assert.Equal(t, "69.97", view.TotalPrice.StringFixed(2))
	})
	t.Run("有未勾选行时AllChecked为假", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCartRepo(
			domain.CartItem{ID: 1, UID: testUID, ProductID: 1, Quantity: 3, Checked: true},
			domain.CartItem{ID: 2, UID: testUID, ProductID: 2, Quantity: 1, Checked: false},
		)
		svc := NewService(repo, newFakeProductService())
		view, err := svc.Snapshot(context.Background(), testUID)
		require.NoError(t, err)
		assert.False(t, view.AllChecked)
		// 未勾选的行不计入总价
		assert.Equal(t, "59.97", view.TotalPrice.StringFixed(2))
	})
	t.Run("数量超库存按库存钳位并回写", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCartRepo(
			domain.CartItem{ID: 1, UID: testUID, ProductID: 2, Quantity: 5, Checked: true},
		)
		svc := NewService(repo, newFakeProductService())
		view, err := svc.Snapshot(context.Background(), testUID)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, int64(2), view.Items[0].Quantity)
		assert.True(t, view.Items[0].LimitExceeded)
		assert.Equal(t, "20.00", view.Items[0].TotalPrice.StringFixed(2))
		// 回写了钳位后的数量
		assert.Equal(t, int64(2), repo.overwritten[2])
	})
	t.Run("售罄商品展示为零但不回写零数量", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCartRepo(
			domain.CartItem{ID: 1, UID: testUID, ProductID: 3, Quantity: 2, Checked: true},
		)
		svc := NewService(repo, newFakeProductService())
		view, err := svc.Snapshot(context.Background(), testUID)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, int64(0), view.Items[0].Quantity)
		assert.True(t, view.Items[0].LimitExceeded)
		assert.Equal(t, "0.00", view.Items[0].TotalPrice.StringFixed(2))
		// 库里保留原数量, 零数量不落库
		_, overwritten := repo.overwritten[3]
		assert.False(t, overwritten)
		assert.Equal(t, int64(2), repo.items[3].Quantity)
	})
	t.Run("商品已被删除的行不展示", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCartRepo(
			domain.CartItem{ID: 1, UID: testUID, ProductID: 1, Quantity: 1, Checked: true},
			domain.CartItem{ID: 2, UID: testUID, ProductID: 999, Quantity: 1, Checked: true},
		)
		svc := NewService(repo, newFakeProductService())
		view, err := svc.Snapshot(context.Background(), testUID)
		require.NoError(t, err)
		require.Len(t, view.Items, 1)
		assert.Equal(t, int64(1), view.Items[0].ProductID)
	})
}

func TestService_Count(t *testing.T) {
	t.Parallel()
	t.Run("未登录返回0", func(t *testing.T) {
		t.Parallel()
		svc := NewService(newFakeCartRepo(), newFakeProductService())
		cnt, err := svc.Count(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), cnt)
	})
	t.Run("按数量求和", func(t *testing.T) {
		t.Parallel()
		repo := newFakeCartRepo(
			domain.CartItem{ID: 1, UID: testUID, ProductID: 1, Quantity: 3, Checked: true},
			domain.CartItem{ID: 2, UID: testUID, ProductID: 2, Quantity: 2, Checked: false},
		)
		svc := NewService(repo, newFakeProductService())
		cnt, err := svc.Count(context.Background(), testUID)
		require.NoError(t, err)
		assert.Equal(t, int64(5), cnt)
	})
}

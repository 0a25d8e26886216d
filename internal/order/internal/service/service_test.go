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
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit"
	"github.com/ecodeclub/mall/internal/cart"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/pkg/ordersn"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/ecodeclub/mall/internal/shipping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testUID        = int64(234)
	testShippingID = int64(11)
)

type fakeOrderRepo struct {
	mu            sync.Mutex
	orders        map[int64]domain.Order
	nextID        int64
	dupRemaining  int
	createCalls   int
	markPaidCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]domain.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, o domain.Order) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.dupRemaining > 0 {
		f.dupRemaining--
		return 0, repository.ErrDuplicatedOrderSN
	}
	if _, ok := f.orders[o.SN]; ok {
		return 0, repository.ErrDuplicatedOrderSN
	}
	f.nextID++
	o.ID = f.nextID
	f.orders[o.SN] = o
	return o.ID, nil
}

func (f *fakeOrderRepo) Cancel(_ context.Context, uid, sn int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[sn]
	if !ok || o.UID != uid {
		return gorm.ErrRecordNotFound
	}
	if o.Status != domain.StatusUnpaid {
		return repository.ErrInvalidStatus
	}
	o.Status = domain.StatusCanceled
	f.orders[sn] = o
	return nil
}

func (f *fakeOrderRepo) MarkPaid(_ context.Context, sn, paymentTime int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markPaidCalls++
	o, ok := f.orders[sn]
	if !ok || o.Status != domain.StatusUnpaid {
		return false, nil
	}
	o.Status = domain.StatusPaid
	o.PaymentTime = paymentTime
	f.orders[sn] = o
	return true, nil
}

func (f *fakeOrderRepo) MarkShipped(_ context.Context, sn int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[sn]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if o.Status != domain.StatusPaid {
		return repository.ErrInvalidStatus
	}
	o.Status = domain.StatusShipped
	f.orders[sn] = o
	return nil
}

func (f *fakeOrderRepo) FindBySN(_ context.Context, sn int64) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[sn]
	if !ok {
		return domain.Order{}, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) FindByUIDAndSN(_ context.Context, uid, sn int64) (domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[sn]
	if !ok || o.UID != uid {
		return domain.Order{}, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) ListByUID(_ context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		if o.UID == uid {
			res = append(res, o)
		}
	}
	return res, nil
}

func (f *fakeOrderRepo) CountByUID(_ context.Context, uid int64) (int64, error) {
	res, _ := f.ListByUID(nil, uid, 0, 0)
	return int64(len(res)), nil
}

func (f *fakeOrderRepo) List(_ context.Context, offset, limit int) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		res = append(res, o)
	}
	return res, nil
}

func (f *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.orders)), nil
}

type fakeCartService struct {
	checked []cart.CartItem
	removed []int64
}

func (f *fakeCartService) Add(_ context.Context, _, _, _ int64) error         { return nil }
func (f *fakeCartService) SetQuantity(_ context.Context, _, _, _ int64) error { return nil }
func (f *fakeCartService) Remove(_ context.Context, _ int64, productIDs []int64) error {
	f.removed = append(f.removed, productIDs...)
	return nil
}
func (f *fakeCartService) SetChecked(_ context.Context, _, _ int64, _ bool) error { return nil }
func (f *fakeCartService) Count(_ context.Context, _ int64) (int64, error)        { return 0, nil }
func (f *fakeCartService) Snapshot(_ context.Context, _ int64) (cart.CartView, error) {
	return cart.CartView{}, nil
}
func (f *fakeCartService) FindCheckedItems(_ context.Context, uid int64) ([]cart.CartItem, error) {
	return f.checked, nil
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

type fakeShippingService struct {
	addresses map[int64]shipping.Address
}

func (f *fakeShippingService) Save(_ context.Context, _ shipping.Address) (int64, error) {
	return 0, nil
}

func (f *fakeShippingService) FindByUIDAndID(_ context.Context, uid, id int64) (shipping.Address, error) {
	addr, ok := f.addresses[id]
	if !ok || addr.UID != uid {
		return shipping.Address{}, gorm.ErrRecordNotFound
	}
	return addr, nil
}

func (f *fakeShippingService) FindByID(_ context.Context, id int64) (shipping.Address, error) {
	addr, ok := f.addresses[id]
	if !ok {
		return shipping.Address{}, gorm.ErrRecordNotFound
	}
	return addr, nil
}

type fakePaymentService struct {
	mu             sync.Mutex
	receipts       []payment.Receipt
	qrCode         string
	precreateCalls int
}

func (f *fakePaymentService) Precreate(_ context.Context, _ payment.PrecreateOrder) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.precreateCalls++
	return f.qrCode, nil
}

func (f *fakePaymentService) SaveReceipt(_ context.Context, r payment.Receipt) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receipts = append(f.receipts, r)
	return int64(len(f.receipts)), nil
}

func (f *fakePaymentService) ListReceiptsByOrderSN(_ context.Context, orderSN string) ([]payment.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]payment.Receipt, 0, len(f.receipts))
	for _, r := range f.receipts {
		if r.OrderSN == orderSN {
			res = append(res, r)
		}
	}
	return res, nil
}

type fakeCache struct {
	ecache.Cache
	mu   sync.Mutex
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) ecache.Value {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return ecache.Value{AnyValue: ekit.AnyValue{Err: errors.New("key not found")}}
	}
	return ecache.Value{AnyValue: ekit.AnyValue{Val: v}}
}

func (f *fakeCache) Set(_ context.Context, key string, val any, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = val.(string)
	return nil
}

type testEnv struct {
	repo        *fakeOrderRepo
	cartSvc     *fakeCartService
	productSvc  *fakeProductService
	shippingSvc *fakeShippingService
	paymentSvc  *fakePaymentService
	cache       *fakeCache
	svc         Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo: newFakeOrderRepo(),
		cartSvc: &fakeCartService{
			checked: []cart.CartItem{
				{UID: testUID, ProductID: 1, Quantity: 3, Checked: true},
				{UID: testUID, ProductID: 2, Quantity: 1, Checked: true},
			},
		},
		productSvc: &fakeProductService{
			products: map[int64]product.Product{
				1: {
					ID:        1,
					Name:      "斯伯丁篮球",
					MainImage: "basketball.jpg",
					Price:     decimal.RequireFromString("19.99"),
					Stock:     10,
					Status:    product.SaleStatusOnSale,
				},
				2: {
					ID:        2,
					Name:      "Yonex羽毛球拍",
					MainImage: "racket.jpg",
					Price:     decimal.RequireFromString("10.00"),
					Stock:     5,
					Status:    product.SaleStatusOnSale,
				},
			},
		},
		shippingSvc: &fakeShippingService{
			addresses: map[int64]shipping.Address{
				testShippingID: {ID: testShippingID, UID: testUID, ReceiverName: "张三"},
			},
		},
		paymentSvc: &fakePaymentService{qrCode: "https://qr.alipay.com/bax0001"},
		cache:      newFakeCache(),
	}
	gen := ordersn.NewGeneratorWith(
		func(t time.Time) int64 { return t.UnixMilli() },
		func() int64 { return 666 })
	env.svc = NewService(env.repo, env.cartSvc, env.productSvc,
		env.shippingSvc, env.paymentSvc, gen, env.cache)
	return env
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()
	t.Run("正常下单_价格按当前价快照", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUnpaid, order.Status)
		assert.True(t, order.SN > 0)
		// 19.99*3 + 10.00*1 = 69.97
		assert.Equal(t, "69.97", order.Payment.StringFixed(2))
		require.Len(t, order.Items, 2)
		assert.Equal(t, "19.99", order.Items[0].UnitPrice.StringFixed(2))
		assert.Equal(t, "59.97", order.Items[0].TotalPrice.StringFixed(2))
		assert.Equal(t, "斯伯丁篮球", order.Items[0].ProductName)
		assert.Equal(t, "10.00", order.Items[1].TotalPrice.StringFixed(2))
	})
	t.Run("收货地址不存在", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		_, err := env.svc.CreateOrder(context.Background(), testUID, int64(999))
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
	t.Run("别人的收货地址一视同仁当作不存在", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.shippingSvc.addresses[33] = shipping.Address{ID: 33, UID: testUID + 1}
		_, err := env.svc.CreateOrder(context.Background(), testUID, int64(33))
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
	t.Run("购物车没有勾选商品", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.cartSvc.checked = nil
		_, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		assert.ErrorIs(t, err, ErrEmptyCart)
	})
	t.Run("商品已下架", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		p := env.productSvc.products[2]
		p.Status = product.SaleStatusOffSale
		env.productSvc.products[2] = p
		_, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		assert.ErrorIs(t, err, ErrProductUnavailable)
		assert.Equal(t, 0, env.repo.createCalls)
	})
	t.Run("商品已被删除", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		delete(env.productSvc.products, 1)
		_, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		assert.ErrorIs(t, err, ErrProductUnavailable)
	})
	t.Run("库存不足", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		p := env.productSvc.products[1]
		p.Stock = 2
		env.productSvc.products[1] = p
		_, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})
	t.Run("订单号冲突会换号重试", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.repo.dupRemaining = 2
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		assert.Equal(t, 3, env.repo.createCalls)
		assert.True(t, order.ID > 0)
	})
	t.Run("重试次数耗尽", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		env.repo.dupRemaining = 3
		_, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		assert.ErrorIs(t, err, repository.ErrDuplicatedOrderSN)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Parallel()
	t.Run("未支付订单可以取消", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		require.NoError(t, env.svc.Cancel(context.Background(), testUID, order.SN))
		got, err := env.repo.FindBySN(context.Background(), order.SN)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCanceled, got.Status)
	})
	t.Run("重复取消被拒绝", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		require.NoError(t, env.svc.Cancel(context.Background(), testUID, order.SN))
		err = env.svc.Cancel(context.Background(), testUID, order.SN)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
	t.Run("订单不存在", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		err := env.svc.Cancel(context.Background(), testUID, int64(12345))
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestService_HandleGatewayCallback(t *testing.T) {
	t.Parallel()
	newPaidCallback := func(sn int64) domain.GatewayCallback {
		return domain.GatewayCallback{
			OutTradeNo:  strconv.FormatInt(sn, 10),
			TradeNo:     "2024083122001430109999999999",
			TradeStatus: "TRADE_SUCCESS",
			PaidAt:      "2026-08-31 12:30:45",
			Amount:      decimal.RequireFromString("69.97"),
		}
	}
	t.Run("成功回调_落凭据并流转状态", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		require.NoError(t, env.svc.HandleGatewayCallback(context.Background(), newPaidCallback(order.SN)))
		got, err := env.repo.FindBySN(context.Background(), order.SN)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, got.Status)
		assert.True(t, got.PaymentTime > 0)
		assert.Len(t, env.paymentSvc.receipts, 1)
	})
	t.Run("重复回调_每次都落凭据但只流转一次", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		cb := newPaidCallback(order.SN)
		for i := 0; i < 3; i++ {
			require.NoError(t, env.svc.HandleGatewayCallback(context.Background(), cb))
		}
		got, err := env.repo.FindBySN(context.Background(), order.SN)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPaid, got.Status)
		assert.Len(t, env.paymentSvc.receipts, 3)
		assert.Equal(t, 3, env.repo.markPaidCalls)
	})
	t.Run("对已取消订单的回调按重复处理", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		require.NoError(t, env.svc.Cancel(context.Background(), testUID, order.SN))
		require.NoError(t, env.svc.HandleGatewayCallback(context.Background(), newPaidCallback(order.SN)))
		got, err := env.repo.FindBySN(context.Background(), order.SN)
		require.NoError(t, err)
		// 不会把已取消的订单改成已支付
		assert.Equal(t, domain.StatusCanceled, got.Status)
		assert.Len(t, env.paymentSvc.receipts, 1)
	})
	t.Run("非终态通知_只落凭据不流转", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		cb := newPaidCallback(order.SN)
		cb.TradeStatus = "WAIT_BUYER_PAY"
		cb.PaidAt = ""
		require.NoError(t, env.svc.HandleGatewayCallback(context.Background(), cb))
		got, err := env.repo.FindBySN(context.Background(), order.SN)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusUnpaid, got.Status)
		assert.Len(t, env.paymentSvc.receipts, 1)
		assert.Equal(t, 0, env.repo.markPaidCalls)
	})
	t.Run("未知订单", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		err := env.svc.HandleGatewayCallback(context.Background(), newPaidCallback(987654321))
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Len(t, env.paymentSvc.receipts, 0)
	})
	t.Run("非法商户订单号", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		cb := newPaidCallback(1)
		cb.OutTradeNo = "not-a-number"
		err := env.svc.HandleGatewayCallback(context.Background(), cb)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_Pay(t *testing.T) {
	t.Parallel()
	t.Run("预下单并缓存二维码", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		qr, err := env.svc.Pay(context.Background(), testUID, order.SN)
		require.NoError(t, err)
		assert.Equal(t, "https://qr.alipay.com/bax0001", qr)
		assert.Equal(t, 1, env.paymentSvc.precreateCalls)
		// 第二次命中缓存, 不再打渠道
		qr2, err := env.svc.Pay(context.Background(), testUID, order.SN)
		require.NoError(t, err)
		assert.Equal(t, qr, qr2)
		assert.Equal(t, 1, env.paymentSvc.precreateCalls)
	})
	t.Run("已支付订单不能再次发起支付", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		_, err = env.repo.MarkPaid(context.Background(), order.SN, time.Now().UnixMilli())
		require.NoError(t, err)
		_, err = env.svc.Pay(context.Background(), testUID, order.SN)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_PayStatus(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
	require.NoError(t, err)

	paid, err := env.svc.PayStatus(context.Background(), testUID, order.SN)
	require.NoError(t, err)
	assert.False(t, paid)

	_, err = env.repo.MarkPaid(context.Background(), order.SN, time.Now().UnixMilli())
	require.NoError(t, err)
	paid, err = env.svc.PayStatus(context.Background(), testUID, order.SN)
	require.NoError(t, err)
	assert.True(t, paid)
}

func TestService_Ship(t *testing.T) {
	t.Parallel()
	t.Run("已支付订单可以发货", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		_, err = env.repo.MarkPaid(context.Background(), order.SN, time.Now().UnixMilli())
		require.NoError(t, err)
		require.NoError(t, env.svc.Ship(context.Background(), order.SN))
		got, err := env.repo.FindBySN(context.Background(), order.SN)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusShipped, got.Status)
	})
	t.Run("未支付订单不能发货", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv()
		order, err := env.svc.CreateOrder(context.Background(), testUID, testShippingID)
		require.NoError(t, err)
		err = env.svc.Ship(context.Background(), order.SN)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestService_CheckedCartPreview(t *testing.T) {
	t.Parallel()
	env := newTestEnv()
	preview, err := env.svc.CheckedCartPreview(context.Background(), testUID)
	require.NoError(t, err)
	require.Len(t, preview.Items, 2)
	assert.Equal(t, "69.97", preview.TotalPrice.StringFixed(2))
	// 试算不落库
	assert.Equal(t, 0, env.repo.createCalls)
}

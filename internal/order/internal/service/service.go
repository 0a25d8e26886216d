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
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mall/internal/cart"
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/repository"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/pkg/money"
	"github.com/ecodeclub/mall/internal/pkg/ordersn"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/ecodeclub/mall/internal/shipping"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound     = repository.ErrOrderNotFound
	ErrInsufficientStock = repository.ErrInsufficientStock
	ErrInvalidStatus     = repository.ErrInvalidStatus
	ErrEmptyCart         = errors.New("购物车中没有勾选的商品")
	// ErrProductUnavailable 商品不存在或已下架
	ErrProductUnavailable = errors.New("商品不可售")
	ErrAddressNotFound    = errors.New("收货地址不存在")
)

const (
	// tradeStatusSuccess 渠道通知的终态, 只有它才触发状态流转
	tradeStatusSuccess = "TRADE_SUCCESS"
	// paidAtLayout 渠道给的支付完成时间格式
	paidAtLayout = "2006-01-02 15:04:05"
	// maxCreateAttempts 订单号撞唯一索引后的重试上限
	maxCreateAttempts = 3
	qrCodeExpiration  = 30 * time.Minute
)

type Service interface {
	// CreateOrder 把当前勾选的购物车行生成一笔订单:
	// 价格按商品当前价快照, 扣减库存并清掉对应购物车行, 整个过程一个事务。
	CreateOrder(ctx context.Context, uid, shippingID int64) (domain.Order, error)
	// Cancel 仅未支付订单可取消, 取消时恢复库存
	Cancel(ctx context.Context, uid, sn int64) error
	Detail(ctx context.Context, uid, sn int64) (domain.Order, shipping.Address, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	// CheckedCartPreview 下单前确认页的试算, 不产生任何写入
	CheckedCartPreview(ctx context.Context, uid int64) (domain.CartPreview, error)
	// Pay 向渠道预下单, 返回二维码内容。同一笔未支付订单重复调用返回缓存的二维码。
	Pay(ctx context.Context, uid, sn int64) (string, error)
	// PayStatus 轮询接口, 订单是否已经走过支付环节
	PayStatus(ctx context.Context, uid, sn int64) (bool, error)
	// HandleGatewayCallback 处理渠道异步通知。
	// 每次回调都追加一条凭据, 状态流转至多发生一次。
	HandleGatewayCallback(ctx context.Context, cb domain.GatewayCallback) error
	AdminList(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	AdminDetail(ctx context.Context, sn int64) (domain.Order, shipping.Address, error)
	// Ship 已支付 -> 已发货
	Ship(ctx context.Context, sn int64) error
}

func NewService(repo repository.OrderRepository,
	cartSvc cart.Service,
	productSvc product.Service,
	shippingSvc shipping.Service,
	paymentSvc payment.Service,
	snGenerator *ordersn.Generator,
	cache ecache.Cache) Service {
	return &service{
		repo:        repo,
		cartSvc:     cartSvc,
		productSvc:  productSvc,
		shippingSvc: shippingSvc,
		paymentSvc:  paymentSvc,
		snGenerator: snGenerator,
		cache:       cache,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	cartSvc     cart.Service
	productSvc  product.Service
	shippingSvc shipping.Service
	paymentSvc  payment.Service
	snGenerator *ordersn.Generator
	cache       ecache.Cache
	logger      *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, uid, shippingID int64) (domain.Order, error) {
	_, err := s.shippingSvc.FindByUIDAndID(ctx, uid, shippingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, ErrAddressNotFound
		}
		return domain.Order{}, err
	}
	items, total, err := s.buildItems(ctx, uid)
	if err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		UID:        uid,
		ShippingID: shippingID,
		Payment:    total,
		Postage:    money.Zero(),
		Status:     domain.StatusUnpaid,
		Items:      items,
	}
	for i := 0; i < maxCreateAttempts; i++ {
		order.SN = s.snGenerator.Generate()
		id, err := s.repo.Create(ctx, order)
		if errors.Is(err, repository.ErrDuplicatedOrderSN) {
			continue
		}
		if err != nil {
			return domain.Order{}, err
		}
		order.ID = id
		return order, nil
	}
	return domain.Order{}, repository.ErrDuplicatedOrderSN
}

// buildItems 校验勾选行并按商品当前价生成订单行快照
func (s *service) buildItems(ctx context.Context, uid int64) ([]domain.OrderItem, decimal.Decimal, error) {
	lines, err := s.cartSvc.FindCheckedItems(ctx, uid)
	if err != nil {
		return nil, decimal.Decimal{}, err
	}
	if len(lines) == 0 {
		return nil, decimal.Decimal{}, ErrEmptyCart
	}
	items := make([]domain.OrderItem, 0, len(lines))
	total := money.Zero()
	for _, line := range lines {
		p, err := s.productSvc.FindByID(ctx, line.ProductID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, decimal.Decimal{}, fmt.Errorf("%w: productID %d", ErrProductUnavailable, line.ProductID)
		}
		if err != nil {
			return nil, decimal.Decimal{}, err
		}
		if !p.OnSale() {
			return nil, decimal.Decimal{}, fmt.Errorf("%w: productID %d", ErrProductUnavailable, line.ProductID)
		}
		// 预检库存提前失败, 真正的守卫在落库事务里
		if line.Quantity > p.Stock {
			return nil, decimal.Decimal{}, fmt.Errorf("%w: productID %d", ErrInsufficientStock, line.ProductID)
		}
		item := domain.OrderItem{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductImage: p.MainImage,
			UnitPrice:    p.Price,
			Quantity:     line.Quantity,
			TotalPrice:   money.MulInt(p.Price, line.Quantity),
		}
		total = money.Add(total, item.TotalPrice)
		items = append(items, item)
	}
	return items, total, nil
}

func (s *service) Cancel(ctx context.Context, uid, sn int64) error {
	return s.repo.Cancel(ctx, uid, sn)
}

func (s *service) Detail(ctx context.Context, uid, sn int64) (domain.Order, shipping.Address, error) {
	order, err := s.repo.FindByUIDAndSN(ctx, uid, sn)
	if err != nil {
		return domain.Order{}, shipping.Address{}, err
	}
	addr, err := s.shippingSvc.FindByID(ctx, order.ShippingID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Order{}, shipping.Address{}, err
	}
	return order, addr, nil
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		res   []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		res, err = s.repo.ListByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUID(ctx, uid)
		return err
	})
	return res, total, eg.Wait()
}

func (s *service) CheckedCartPreview(ctx context.Context, uid int64) (domain.CartPreview, error) {
	items, total, err := s.buildItems(ctx, uid)
	if err != nil {
		return domain.CartPreview{}, err
	}
	return domain.CartPreview{
		Items:      items,
		TotalPrice: total,
	}, nil
}

func (s *service) Pay(ctx context.Context, uid, sn int64) (string, error) {
	order, err := s.repo.FindByUIDAndSN(ctx, uid, sn)
	if err != nil {
		return "", err
	}
	if order.Status != domain.StatusUnpaid {
		return "", ErrInvalidStatus
	}
	key := s.qrCodeKey(sn)
	if val := s.cache.Get(ctx, key); !val.KeyNotFound() {
		if qr, err := val.String(); err == nil {
			return qr, nil
		}
	}
	qr, err := s.paymentSvc.Precreate(ctx, payment.PrecreateOrder{
		OrderSN: strconv.FormatInt(sn, 10),
		Subject: fmt.Sprintf("扫码支付,订单号:%d", sn),
		Amount:  order.Payment,
	})
	if err != nil {
		return "", err
	}
	if err := s.cache.Set(ctx, key, qr, qrCodeExpiration); err != nil {
		s.logger.Error("缓存支付二维码失败", elog.FieldErr(err), elog.Int64("sn", sn))
	}
	return qr, nil
}

func (s *service) PayStatus(ctx context.Context, uid, sn int64) (bool, error) {
	order, err := s.repo.FindByUIDAndSN(ctx, uid, sn)
	if err != nil {
		return false, err
	}
	return order.Status.PaidOrBeyond() && order.Status != domain.StatusCanceled, nil
}

func (s *service) HandleGatewayCallback(ctx context.Context, cb domain.GatewayCallback) error {
	sn, err := strconv.ParseInt(cb.OutTradeNo, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: 非法商户订单号 %q", ErrOrderNotFound, cb.OutTradeNo)
	}
	order, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return err
	}
	paidAt := s.parsePaidAt(cb.PaidAt)
	// 凭据永远追加, 回调几次就落几条
	_, err = s.paymentSvc.SaveReceipt(ctx, payment.Receipt{
		UID:            order.UID,
		OrderSN:        cb.OutTradeNo,
		TradeNo:        cb.TradeNo,
		Platform:       payment.PlatformAlipay,
		PlatformStatus: cb.TradeStatus,
		Amount:         cb.Amount,
		PayTime:        paidAt,
	})
	if err != nil {
		return err
	}
	if cb.TradeStatus != tradeStatusSuccess {
		s.logger.Info("忽略非终态的渠道通知",
			elog.Int64("sn", sn),
			elog.String("tradeStatus", cb.TradeStatus))
		return nil
	}
	ok, err := s.repo.MarkPaid(ctx, sn, paidAt)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Info("重复回调, 订单已走过支付环节",
			elog.Int64("sn", sn),
			elog.Any("status", order.Status.ToUint8()))
	}
	return nil
}

func (s *service) AdminList(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		res   []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		res, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return res, total, eg.Wait()
}

func (s *service) AdminDetail(ctx context.Context, sn int64) (domain.Order, shipping.Address, error) {
	order, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, shipping.Address{}, err
	}
	return s.Detail(ctx, order.UID, sn)
}

func (s *service) Ship(ctx context.Context, sn int64) error {
	_, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return err
	}
	return s.repo.MarkShipped(ctx, sn)
}

func (s *service) qrCodeKey(sn int64) string {
	return fmt.Sprintf("order:qrcode:%d", sn)
}

func (s *service) parsePaidAt(paidAt string) int64 {
	if paidAt == "" {
		return 0
	}
	t, err := time.ParseInLocation(paidAtLayout, paidAt, time.Local)
	if err != nil {
		s.logger.Warn("解析支付完成时间失败", elog.FieldErr(err), elog.String("paidAt", paidAt))
		return 0
	}
	return t.UnixMilli()
}

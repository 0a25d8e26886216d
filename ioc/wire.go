//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/mall/internal/cart"
	"github.com/ecodeclub/mall/internal/order"
	"github.com/ecodeclub/mall/internal/payment"
	"github.com/ecodeclub/mall/internal/product"
	"github.com/ecodeclub/mall/internal/shipping"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitAlipay)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		product.InitModule,
		shipping.InitModule,
		cart.InitModule,
		payment.InitModule,
		order.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*cart.Module), "Hdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}

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

//go:build wireinject

package payment

import (
	"sync"

	"github.com/ecodeclub/mall/internal/payment/internal/repository"
	"github.com/ecodeclub/mall/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/mall/internal/payment/internal/service"
	"github.com/ecodeclub/mall/internal/payment/internal/service/alipay"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	sdk "github.com/smartwalle/alipay/v3"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	InitGateway,
	repository.NewRepository,
	service.NewService,
	wire.Struct(new(Module), "*"))

func InitModule(db *egorm.Component, client *sdk.Client) *Module {
	wire.Build(ModuleSet)
	return new(Module)
}

func InitGateway(client *sdk.Client) service.Gateway {
	return alipay.NewNativeGateway(client)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ReceiptDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewReceiptGORMDAO(db)
}

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

package order

import (
	"github.com/ecodeclub/mall/internal/order/internal/domain"
	"github.com/ecodeclub/mall/internal/order/internal/service"
	"github.com/ecodeclub/mall/internal/order/internal/web"
)

type (
	Handler         = web.Handler
	AdminHandler    = web.AdminHandler
	Service         = service.Service
	Order           = domain.Order
	OrderItem       = domain.OrderItem
	OrderStatus     = domain.OrderStatus
	GatewayCallback = domain.GatewayCallback
)

const (
	StatusUnpaid   = domain.StatusUnpaid
	StatusPaid     = domain.StatusPaid
	StatusShipped  = domain.StatusShipped
	StatusClosed   = domain.StatusClosed
	StatusCanceled = domain.StatusCanceled
)

var (
	ErrOrderNotFound      = service.ErrOrderNotFound
	ErrInsufficientStock  = service.ErrInsufficientStock
	ErrInvalidStatus      = service.ErrInvalidStatus
	ErrEmptyCart          = service.ErrEmptyCart
	ErrProductUnavailable = service.ErrProductUnavailable
	ErrAddressNotFound    = service.ErrAddressNotFound
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}

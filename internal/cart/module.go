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

package cart

import (
	"github.com/ecodeclub/mall/internal/cart/internal/domain"
	"github.com/ecodeclub/mall/internal/cart/internal/service"
	"github.com/ecodeclub/mall/internal/cart/internal/web"
)

type (
	Handler      = web.Handler
	Service      = service.Service
	CartItem     = domain.CartItem
	CartItemView = domain.CartItemView
	CartView     = domain.CartView
)

var (
	ErrCartItemNotFound = service.ErrCartItemNotFound
	ErrInvalidQuantity  = service.ErrInvalidQuantity
)

type Module struct {
	Hdl *Handler
	Svc Service
}

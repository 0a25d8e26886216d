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

package web

// ProductDetailReq 商品详情请求
type ProductDetailReq struct {
	ProductID int64 `json:"productId"`
}

type ProductDetailResp struct {
	Product Product `json:"product"`
}

// ListProductsReq 分页查询商品
type ListProductsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListProductsResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type Product struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Subtitle  string `json:"subtitle"`
	MainImage string `json:"mainImage"`
	Price     string `json:"price"`
	Stock     int64  `json:"stock"`
	Status    uint8  `json:"status"`
}

// SaveProductReq 管理端新增/修改商品
type SaveProductReq struct {
	Product Product `json:"product"`
}

// SetSaleStatusReq 管理端上下架商品
type SetSaleStatusReq struct {
	ProductID int64 `json:"productId"`
	Status    uint8 `json:"status"`
}

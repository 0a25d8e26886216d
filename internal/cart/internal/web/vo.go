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

type AddCartItemReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type UpdateCartItemReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type DeleteCartItemReq struct {
	ProductIDs []int64 `json:"productIds"`
}

type SelectCartItemReq struct {
	// ProductID 为 0 表示全选/全不选
	ProductID int64 `json:"productId"`
}

type CartItem struct {
	ID            int64  `json:"id"`
	ProductID     int64  `json:"productId"`
	ProductName   string `json:"productName"`
	Subtitle      string `json:"subtitle"`
	MainImage     string `json:"mainImage"`
	Price         string `json:"price"`
	Quantity      int64  `json:"quantity"`
	Stock         int64  `json:"stock"`
	Checked       bool   `json:"checked"`
	LimitExceeded bool   `json:"limitExceeded"`
	TotalPrice    string `json:"totalPrice"`
}

type CartResp struct {
	Items      []CartItem `json:"items"`
	TotalPrice string     `json:"totalPrice"`
	AllChecked bool       `json:"allChecked"`
}

type CartCountResp struct {
	Count int64 `json:"count"`
}

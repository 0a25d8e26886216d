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

type CreateOrderReq struct {
	ShippingID int64 `json:"shippingId"`
}

type OrderSNReq struct {
	SN int64 `json:"sn,string"`
}

type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type Order struct {
	SN          int64       `json:"sn,string"`
	Payment     string      `json:"payment"`
	Postage     string      `json:"postage"`
	Status      uint8       `json:"status"`
	StatusDesc  string      `json:"statusDesc"`
	PaymentTime int64       `json:"paymentTime"`
	SendTime    int64       `json:"sendTime"`
	Ctime       int64       `json:"ctime"`
	Items       []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`
	UnitPrice    string `json:"unitPrice"`
	Quantity     int64  `json:"quantity"`
	TotalPrice   string `json:"totalPrice"`
}

type Address struct {
	ID               int64  `json:"id"`
	ReceiverName     string `json:"receiverName"`
	ReceiverPhone    string `json:"receiverPhone"`
	ReceiverMobile   string `json:"receiverMobile"`
	ReceiverProvince string `json:"receiverProvince"`
	ReceiverCity     string `json:"receiverCity"`
	ReceiverDistrict string `json:"receiverDistrict"`
	ReceiverAddress  string `json:"receiverAddress"`
	ReceiverZip      string `json:"receiverZip"`
}

type OrderDetailResp struct {
	Order   Order   `json:"order"`
	Address Address `json:"address"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

type CartPreviewResp struct {
	Items      []OrderItem `json:"items"`
	TotalPrice string      `json:"totalPrice"`
}

type PayResp struct {
	// QRCode 二维码内容, 前端自行渲染成图片
	QRCode string `json:"qrCode"`
}

type PayStatusResp struct {
	Paid bool `json:"paid"`
}

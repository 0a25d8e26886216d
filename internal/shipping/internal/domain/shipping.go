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

package domain

// Address 收货地址。下单时按 ID 引用, 订单视图里原样展示,
// 地址的增删改由独立的地址模块负责, 不在本仓库范围内。
type Address struct {
	ID               int64
	UID              int64
	ReceiverName     string
	ReceiverPhone    string
	ReceiverMobile   string
	ReceiverProvince string
	ReceiverCity     string
	ReceiverDistrict string
	ReceiverAddress  string
	ReceiverZip      string
}

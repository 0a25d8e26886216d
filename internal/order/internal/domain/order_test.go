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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		from   OrderStatus
		to     OrderStatus
		wanted bool
	}{
		{name: "未支付可以支付", from: StatusUnpaid, to: StatusPaid, wanted: true},
		{name: "未支付可以取消", from: StatusUnpaid, to: StatusCanceled, wanted: true},
		{name: "未支付不能发货", from: StatusUnpaid, to: StatusShipped, wanted: false},
		{name: "未支付不能完成", from: StatusUnpaid, to: StatusClosed, wanted: false},
		{name: "已支付可以发货", from: StatusPaid, to: StatusShipped, wanted: true},
		{name: "已支付不能取消", from: StatusPaid, to: StatusCanceled, wanted: false},
		{name: "已支付不能重复支付", from: StatusPaid, to: StatusPaid, wanted: false},
		{name: "已发货可以完成", from: StatusShipped, to: StatusClosed, wanted: true},
		{name: "已发货不能取消", from: StatusShipped, to: StatusCanceled, wanted: false},
		{name: "已完成是终态", from: StatusClosed, to: StatusShipped, wanted: false},
		{name: "已取消是终态", from: StatusCanceled, to: StatusPaid, wanted: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wanted, tc.from.CanTransition(tc.to))
		})
	}
}

func TestOrderStatus_PaidOrBeyond(t *testing.T) {
	t.Parallel()
	assert.False(t, StatusUnpaid.PaidOrBeyond())
	assert.True(t, StatusPaid.PaidOrBeyond())
	assert.True(t, StatusShipped.PaidOrBeyond())
	assert.True(t, StatusClosed.PaidOrBeyond())
	// 已取消的订单也算走过支付环节, 对它的回调按重复处理
	assert.True(t, StatusCanceled.PaidOrBeyond())
}

func TestOrderStatus_Desc(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "未支付", StatusUnpaid.Desc())
	assert.Equal(t, "已取消", StatusCanceled.Desc())
	assert.Equal(t, "未知状态", OrderStatus(100).Desc())
}

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

// Package money 金额运算统一走 decimal。
// 浮点数连续累加会出现分级别的误差, 所有订单、购物车的价格计算都必须经过这里。
package money

import "github.com/shopspring/decimal"

// Zero 金额零值
func Zero() decimal.Decimal {
	return decimal.Zero
}

// FromFloat 从 float64 构造金额, 走最短十进制表示, 不会把二进制误差带进来
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// FromString 从字符串构造金额
func FromString(v string) (decimal.Decimal, error) {
	return decimal.NewFromString(v)
}

func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// MulInt 单价乘以购买数量
func MulInt(a decimal.Decimal, n int64) decimal.Decimal {
	return a.Mul(decimal.NewFromInt(n))
}

// Div 除法保留两位小数, 四舍五入
func Div(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, 2)
}

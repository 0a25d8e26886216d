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

package ordersn

import (
	"math/rand"
	"time"
)

// TimestampGenerateFunc 定义生成时间戳的函数类型
type TimestampGenerateFunc func(time.Time) int64

// RandomGenerateFunc 定义生成随机低位的函数类型, 取值范围 [0, 1000)
type RandomGenerateFunc func() int64

// Generator 生成对外暴露给支付网关的订单号: 毫秒时间戳*1000 + 三位随机数。
// 高并发下随机低位可能撞上同一毫秒内的另一次下单,
// 订单号列上有唯一索引, 冲突时由调用方换号重试。
type Generator struct {
	timestampGenFunc TimestampGenerateFunc
	randomGenFunc    RandomGenerateFunc
}

// NewGeneratorWith 创建一个Generator实例
func NewGeneratorWith(timestampGen TimestampGenerateFunc, randomGen RandomGenerateFunc) *Generator {
	return &Generator{
		timestampGenFunc: timestampGen,
		randomGenFunc:    randomGen,
	}
}

// NewGenerator 创建一个Generator实例
func NewGenerator() *Generator {
	return NewGeneratorWith(func(t time.Time) int64 { return t.UnixMilli() }, func() int64 { return rand.Int63n(1000) })
}

// Generate 生成 64 位订单号
func (g *Generator) Generate() int64 {
	return g.timestampGenFunc(time.Now())*1000 + g.randomGenFunc()
}

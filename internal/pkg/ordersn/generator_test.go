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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateWith(t *testing.T) {
	testCases := []struct {
		name      string
		timestamp int64
		random    int64
		expected  int64
	}{
		{
			name:      "随机低位为0",
			timestamp: 1234554320123,
			random:    0,
			expected:  1234554320123000,
		},
		{
			name:      "随机低位为最大值",
			timestamp: 1234554320123,
			random:    999,
			expected:  1234554320123999,
		},
		{
			name:      "同一毫秒不同随机数生成不同订单号",
			timestamp: 1234554320123,
			random:    7,
			expected:  1234554320123007,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g := NewGeneratorWith(func(_ time.Time) int64 { return tc.timestamp }, func() int64 { return tc.random })
			assert.Equal(t, tc.expected, g.Generate())
		})
	}
}

func TestGenerate(t *testing.T) {
	g := NewGenerator()
	before := time.Now().UnixMilli() * 1000
	sn := g.Generate()
	after := (time.Now().UnixMilli() + 1) * 1000
	assert.GreaterOrEqual(t, sn, before)
	assert.Less(t, sn, after+1000)
}

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

package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	testCases := []struct {
		name     string
		a        float64
		b        float64
		expected string
	}{
		{
			name:     "经典浮点陷阱 0.05+0.01",
			a:        0.05,
			b:        0.01,
			expected: "0.06",
		},
		{
			name:     "经典浮点陷阱 0.1+0.2",
			a:        0.1,
			b:        0.2,
			expected: "0.3",
		},
		{
			name:     "整数与小数",
			a:        1,
			b:        19.99,
			expected: "20.99",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Add(FromFloat(tc.a), FromFloat(tc.b)).String())
		})
	}
}

func TestSub(t *testing.T) {
	assert.Equal(t, "0.02", Sub(FromFloat(0.05), FromFloat(0.03)).String())
	assert.Equal(t, "-0.7", Sub(FromFloat(0.3), FromFloat(1)).String())
}

func TestMul(t *testing.T) {
	// 19.99 * 3 用 float64 算是 59.96999999999999
	assert.Equal(t, "59.97", MulInt(FromFloat(19.99), 3).String())
	assert.Equal(t, "0.03", Mul(FromFloat(0.1), FromFloat(0.3)).String())
}

func TestDiv(t *testing.T) {
	testCases := []struct {
		name     string
		a        float64
		b        float64
		expected string
	}{
		{
			name:     "除不尽时保留两位",
			a:        10,
			b:        3,
			expected: "3.33",
		},
		{
			name:     "第三位是5时向上进位",
			a:        0.05,
			b:        2,
			expected: "0.03",
		},
		{
			name:     "整除",
			a:        59.97,
			b:        3,
			expected: "19.99",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Div(FromFloat(tc.a), FromFloat(tc.b)).String())
		})
	}
}

func TestAccumulateNoDrift(t *testing.T) {
	// 连续累加一百次 0.01, float64 会得到 1.0000000000000007
	sum := Zero()
	for i := 0; i < 100; i++ {
		sum = Add(sum, FromFloat(0.01))
	}
	assert.Equal(t, "1", sum.String())
}

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

package alipay

import (
	"context"
	"fmt"

	"github.com/ecodeclub/mall/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	sdk "github.com/smartwalle/alipay/v3"
)

// NativeGateway 当面付(扫码)渠道, 预下单换取二维码内容
type NativeGateway struct {
	name   string
	client *sdk.Client
	logger *elog.Component
}

func NewNativeGateway(client *sdk.Client) *NativeGateway {
	return &NativeGateway{
		name:   "支付宝当面付",
		client: client,
		logger: elog.DefaultLogger,
	}
}

func (n *NativeGateway) Precreate(ctx context.Context, pmt domain.PrecreateOrder) (string, error) {
	rsp, err := n.client.TradePreCreate(ctx, sdk.TradePreCreate{
		Trade: sdk.Trade{
			OutTradeNo:  pmt.OrderSN,
			Subject:     pmt.Subject,
			TotalAmount: pmt.Amount.StringFixed(2),
		},
	})
	if err != nil {
		return "", fmt.Errorf("调用%s预下单失败: %w", n.name, err)
	}
	if rsp.IsFailure() {
		n.logger.Error("预下单被渠道拒绝",
			elog.String("orderSN", pmt.OrderSN),
			elog.String("code", string(rsp.Code)),
			elog.String("subMsg", rsp.SubMsg))
		return "", fmt.Errorf("%s预下单被拒绝: %s-%s", n.name, rsp.Code, rsp.SubMsg)
	}
	return rsp.QRCode, nil
}

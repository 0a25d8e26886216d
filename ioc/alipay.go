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

package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	sdk "github.com/smartwalle/alipay/v3"
)

func InitAlipay() *sdk.Client {
	type Config struct {
		AppID           string `yaml:"appID"`
		PrivateKey      string `yaml:"privateKey"`
		AlipayPublicKey string `yaml:"alipayPublicKey"`
		IsProduction    bool   `yaml:"isProduction"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("alipay", &cfg); err != nil {
		panic(err)
	}
	client, err := sdk.New(cfg.AppID, cfg.PrivateKey, cfg.IsProduction)
	if err != nil {
		panic(err)
	}
	// 回调验签用
	if err := client.LoadAliPayPublicKey(cfg.AlipayPublicKey); err != nil {
		panic(err)
	}
	return client
}

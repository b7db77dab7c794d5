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
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/ecodeclub/projecthall/config"
	"github.com/gotomicro/ego/core/econf"
)

// 没有配置 topic 的时候使用
var defaultTopics = []config.TopicConfig{
	{Name: "user_registration_events", Partitions: 1},
	{Name: "project_published_events", Partitions: 1},
}

// InitMQ mq.type 为 kafka 的时候使用 kafka，否则用内存实现
func InitMQ() mq.MQ {
	var (
		q   mq.MQ
		cfg config.KafkaConfig
		err error
	)
	switch typ := econf.GetString("mq.type"); typ {
	case "kafka":
		err = econf.UnmarshalKey("kafka", &cfg)
		if err != nil {
			panic(err)
		}
		q, err = kafka.NewMQ(cfg.Network, cfg.Addresses)
		if err != nil {
			panic(err)
		}
	case "", "memory":
		q = memory.NewMQ()
	default:
		panic(fmt.Sprintf("未知的 mq.type: %s", typ))
	}
	if len(cfg.Topics) == 0 {
		cfg.Topics = defaultTopics
	}

	ctx, cancelFunc := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelFunc()
	for i := 0; i < len(cfg.Topics); i++ {
		if e := q.CreateTopic(ctx, cfg.Topics[i].Name, cfg.Topics[i].Partitions); e != nil {
			panic(fmt.Sprintf("创建Topic失败: %s : Topic = %s, Partitions = %d", e.Error(), cfg.Topics[i].Name, cfg.Topics[i].Partitions))
		}
	}
	return q
}

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

package config

// StoreConfig 对应 store 配置。url 和 key 也可以通过环境变量设置
type StoreConfig struct {
	// Driver rest、mysql 或者 memory，默认是 rest
	Driver string `yaml:"driver"`
	URL    string `yaml:"url"`
	Key    string `yaml:"key"`
}

type TopicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

// KafkaConfig 对应 kafka 配置，只在 mq.type 为 kafka 的时候使用
type KafkaConfig struct {
	Network   string        `yaml:"network"`
	Addresses []string      `yaml:"addresses"`
	Topics    []TopicConfig `yaml:"topics"`
}

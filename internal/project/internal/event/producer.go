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

package event

import (
	"strconv"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/projecthall/internal/pkg/mqx"
	"github.com/ecodeclub/projecthall/internal/project/internal/domain"
)

const PublishedTopic = "project_published_events"

type ProjectPublishedEvent struct {
	Id    int64  `json:"id"`
	Title string `json:"title"`
	Ctime int64  `json:"ctime"`
}

func NewProjectPublishedEvent(p domain.Project) ProjectPublishedEvent {
	return ProjectPublishedEvent{
		Id:    p.Id,
		Title: p.Title,
		Ctime: p.Ctime.UnixMilli(),
	}
}

type PublishedEventProducer = mqx.Producer[ProjectPublishedEvent]

func NewPublishedEventProducer(q mq.MQ) (PublishedEventProducer, error) {
	return mqx.NewJSONProducer[ProjectPublishedEvent](q, PublishedTopic,
		mqx.WithKey(func(evt ProjectPublishedEvent) string {
			return strconv.FormatInt(evt.Id, 10)
		}))
}

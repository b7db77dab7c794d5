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

import "time"

type Project struct {
	Id           int64
	Title        string
	Content      string
	Requirements string
	Status       ProjectStatus
	Ctime        time.Time
}

// ProjectStatus 展示用的状态文字
type ProjectStatus string

const (
	ProjectStatusOngoing ProjectStatus = "进行中"
)

func (s ProjectStatus) String() string {
	return string(s)
}

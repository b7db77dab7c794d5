package web

import (
	"time"

	"github.com/ecodeclub/projecthall/internal/project/internal/domain"
)

type PublishReq struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Requirements string `json:"requirements"`
}

type Project struct {
	Id           int64  `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Requirements string `json:"requirements"`
	Status       string `json:"status"`
	Ctime        string `json:"ctime"`
}

func newProject(p domain.Project) Project {
	return Project{
		Id:           p.Id,
		Title:        p.Title,
		Content:      p.Content,
		Requirements: p.Requirements,
		Status:       p.Status.String(),
		Ctime:        p.Ctime.Format(time.DateTime),
	}
}

type ProjectList struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}

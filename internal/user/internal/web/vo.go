package web

import (
	"time"

	"github.com/ecodeclub/projecthall/internal/user/internal/domain"
)

type RegisterReq struct {
	Name    string `json:"name"`
	School  string `json:"school"`
	Major   string `json:"major"`
	Degree  string `json:"degree"`
	Contact string `json:"contact"`
}

func (r RegisterReq) toDomain() domain.User {
	return domain.User{
		Name:    r.Name,
		School:  r.School,
		Major:   r.Major,
		Degree:  domain.Degree(r.Degree),
		Contact: r.Contact,
	}
}

type User struct {
	Id      int64  `json:"id"`
	Name    string `json:"name"`
	School  string `json:"school"`
	Major   string `json:"major"`
	Degree  string `json:"degree"`
	Contact string `json:"contact"`
	RegTime string `json:"regTime"`
}

func newUser(u domain.User) User {
	return User{
		Id:      u.Id,
		Name:    u.Name,
		School:  u.School,
		Major:   u.Major,
		Degree:  string(u.Degree),
		Contact: u.Contact,
		RegTime: u.RegTime.Format(time.DateTime),
	}
}

type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

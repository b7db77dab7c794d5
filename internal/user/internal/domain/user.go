package domain

import "time"

// User 登记的同学
type User struct {
	Id     int64
	Name   string
	School string
	Major  string
	Degree Degree
	// Contact 手机号或者微信号，唯一
	Contact string
	RegTime time.Time
}

type Degree string

const (
	DegreeBachelor Degree = "本科"
	DegreeMaster   Degree = "硕士"
	DegreeDoctor   Degree = "博士"
	DegreeOther    Degree = "其他"
)

// Degrees 表单上的选项，第一个是默认值
func Degrees() []Degree {
	return []Degree{DegreeBachelor, DegreeMaster, DegreeDoctor, DegreeOther}
}

func (d Degree) Valid() bool {
	switch d {
	case DegreeBachelor, DegreeMaster, DegreeDoctor, DegreeOther:
		return true
	default:
		return false
	}
}

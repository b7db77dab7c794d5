package service

import (
	"encoding/csv"
	"io"
	"time"

	"github.com/ecodeclub/projecthall/internal/user/internal/domain"
)

// RosterHeader 列的顺序和表的字段一致
var RosterHeader = []string{"name", "school", "major", "degree", "contact", "reg_time"}

func writeRoster(w io.Writer, users []domain.User) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(RosterHeader); err != nil {
		return err
	}
	for _, u := range users {
		err := writer.Write([]string{
			u.Name,
			u.School,
			u.Major,
			string(u.Degree),
			u.Contact,
			u.RegTime.Format(time.DateTime),
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/projecthall/internal/project/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	titleRequiredResult = ginx.Result{
		Code: errs.TitleRequired.Code,
		Msg:  errs.TitleRequired.Msg,
	}
)

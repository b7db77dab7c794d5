package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/projecthall/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	validationErrorResult = ginx.Result{
		Code: errs.ValidationError.Code,
		Msg:  errs.ValidationError.Msg,
	}
	invalidDegreeResult = ginx.Result{
		Code: errs.InvalidDegree.Code,
		Msg:  errs.InvalidDegree.Msg,
	}
	duplicateContactResult = ginx.Result{
		Code: errs.DuplicateContact.Code,
		Msg:  errs.DuplicateContact.Msg,
	}
)

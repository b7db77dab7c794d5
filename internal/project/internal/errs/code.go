package errs

var (
	SystemError   = ErrorCode{Code: 502001, Msg: "系统错误"}
	TitleRequired = ErrorCode{Code: 502002, Msg: "标题不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

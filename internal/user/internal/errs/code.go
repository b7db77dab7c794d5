package errs

var (
	SystemError      = ErrorCode{Code: 501001, Msg: "系统错误"}
	ValidationError  = ErrorCode{Code: 501002, Msg: "姓名和联系方式必填！"}
	DuplicateContact = ErrorCode{Code: 501003, Msg: "⚠️ 该联系方式已存在，请勿重复登记。"}
	InvalidDegree    = ErrorCode{Code: 501004, Msg: "学历只能是 本科、硕士、博士、其他"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

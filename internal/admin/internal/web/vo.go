package web

type CheckReq struct {
	Password string `json:"password"`
}

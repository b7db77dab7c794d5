package event

const RegistrationEventName = "user_registration_events"

// RegistrationEvent 新同学登记成功
type RegistrationEvent struct {
	Uid     int64  `json:"uid"`
	Name    string `json:"name"`
	School  string `json:"school"`
	Major   string `json:"major"`
	Degree  string `json:"degree"`
	RegTime int64  `json:"regTime"`
}

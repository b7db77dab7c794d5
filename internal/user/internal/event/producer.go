package event

import (
	"strconv"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/projecthall/internal/pkg/mqx"
)

type RegistrationEventProducer = mqx.Producer[RegistrationEvent]

func NewRegistrationEventProducer(q mq.MQ) (RegistrationEventProducer, error) {
	return mqx.NewJSONProducer[RegistrationEvent](q, RegistrationEventName,
		mqx.WithKey(func(evt RegistrationEvent) string {
			return strconv.FormatInt(evt.Uid, 10)
		}))
}

package events

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

import "context"

// Publisher доставляет событие получателям. Реализации не возвращают ошибок:
// сбой доставки не должен откатывать уже зафиксированную мутацию.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Publishers рассылает событие всем вложенным издателям по порядку
type Publishers []Publisher

func (p Publishers) Publish(ctx context.Context, event Event) {
	for _, publisher := range p {
		if publisher != nil {
			publisher.Publish(ctx, event)
		}
	}
}

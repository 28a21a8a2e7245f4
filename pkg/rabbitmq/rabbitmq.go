package rabbitmq

const (
	ExchangeName = "musiconnect"
	ExchangeKind = "topic"

	// RoutingKeyEmail carries notifications that should also go out by email.
	RoutingKeyEmail = "notification.email"
	EmailQueueName  = "musiconnect.email"
)

package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost                string
	KafkaShipmentEventsTopic string

	RabbitMQURL           string
	NotificationQueueName string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	JWTSecret   string
	JWTTokenTTL string
}

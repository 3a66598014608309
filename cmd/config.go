package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisURL string

	EventsChannel        string
	NotificationsChannel string
	AnalyticsChannel     string

	KafkaBroker string
}

package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	PaymentServiceURL      string
	DeliveryServiceURL     string
	NotificationServiceURL string
	OrderServiceURL        string
}

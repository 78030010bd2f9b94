package api

type Config struct {
	Host       string `env:"SERVER_HOST,default=0.0.0.0"`
	Port       uint16 `env:"SERVER_PORT,default=8082"`
	CORSOrigin string `env:"CORS_ORIGIN,default=*"`
}

package infra

// AIConfiguration points the validator at an OpenAI-compatible reasoning
// endpoint. An empty Model falls back to the provider default.
type AIConfiguration struct {
	BaseUrl string
	ApiKey  string
	Model   string
}

type PgConfig struct {
	Hostname string
	Port     string
	User     string
	Password string
	Database string
	SslMode  string
}

func (c PgConfig) GetConnectionString() string {
	sslMode := c.SslMode
	if sslMode == "" {
		sslMode = "prefer"
	}
	return "host=" + c.Hostname +
		" port=" + c.Port +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Database +
		" sslmode=" + sslMode
}

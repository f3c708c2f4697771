package config

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SecretApp is the JSON document stored in Secrets Manager.
type SecretApp struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"username"`
	Pass     string `json:"password"`
	Name     string `json:"dbname"`
	SSL      string `json:"sslmode"`
	S3Bucket string `json:"bucket"`
	S3Region string `json:"region"`
}

type DBConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	LogLevel string
}

type S3Config struct {
	Region string
	Bucket string
}

/// mapping objects

// ApplyTo overlays the non-empty secret fields on cfg.
func (s SecretApp) ApplyTo(cfg *Config) {
	if s.Driver != "" {
		cfg.DB.Driver = s.Driver
	}
	if s.Host != "" {
		cfg.DB.Host = s.Host
	}
	if s.Port != 0 {
		cfg.DB.Port = s.Port
	}
	if s.User != "" {
		cfg.DB.User = s.User
	}
	if s.Pass != "" {
		cfg.DB.Password = s.Pass
	}
	if s.Name != "" {
		cfg.DB.DBName = s.Name
	}
	if s.SSL != "" {
		cfg.DB.SSLMode = s.SSL
	}
	if s.S3Bucket != "" {
		cfg.S3.Bucket = s.S3Bucket
	}
	if s.S3Region != "" {
		cfg.S3.Region = s.S3Region
	}
}

package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type RefreshTokenConfig struct {
	ExpDays int `mapstructure:"exp_days"`
}

type AuthConfig struct {
	Password PasswordConfig     `mapstructure:"password"`
	JWT      JWTConfig          `mapstructure:"jwt"`
	Refresh  RefreshTokenConfig `mapstructure:"refresh"`
}

// QRConfig configures the attendance token signer/verifier.
// Secret is required unless InsecureDevMode is explicitly enabled. KeyID is
// embedded alongside each signature so the secret can be rotated without
// invalidating in-flight tokens signed with a key listed in PreviousKeys.
type QRConfig struct {
	Secret          string            `mapstructure:"secret"`
	KeyID           string            `mapstructure:"key_id"`
	PreviousKeys    map[string]string `mapstructure:"previous_keys"`
	ValiditySeconds int               `mapstructure:"validity_seconds"`
	InsecureDevMode bool              `mapstructure:"insecure_dev_mode"`
}

type AttendanceConfig struct {
	SweepIntervalMinutes int    `mapstructure:"sweep_interval_minutes"`
	Timezone             string `mapstructure:"timezone"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

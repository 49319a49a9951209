package http

type Config struct {
	Port         uint   `mapstructure:"port"`
	StaticDir    string `mapstructure:"static_dir"`
	CookieSecure bool   `mapstructure:"cookie_secure"`
}

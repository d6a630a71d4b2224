package config

import (
	"net"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var defaultPorts = map[string]string{
	"mysql":    "3306",
	"postgres": "5432",
	"pgx":      "5432",
	"mssql":    "1433",
}

// ConnString returns c.DSN when set, otherwise a DSN assembled for
// c.DBDriver from the discrete host, port, user, password, and name.
func (c Config) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	port := c.DBPort
	if port == "" {
		port = defaultPorts[c.DBDriver]
	}
	addr := net.JoinHostPort(c.DBHost, port)

	switch c.DBDriver {
	case "postgres", "pgx":
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.DBUser, c.DBPassword),
			Host:   addr,
			Path:   "/" + c.DBName,
		}
		return u.String()
	case "mssql":
		u := url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(c.DBUser, c.DBPassword),
			Host:     addr,
			RawQuery: url.Values{"database": {c.DBName}}.Encode(),
		}
		return u.String()
	case "sqlite":
		if strings.HasSuffix(c.DBName, ".db") || c.DBName == ":memory:" {
			return c.DBName
		}
		return c.DBName + ".db"
	default:
		mc := mysql.NewConfig()
		mc.User = c.DBUser
		mc.Passwd = c.DBPassword
		mc.Net = "tcp"
		mc.Addr = addr
		mc.DBName = c.DBName
		return mc.FormatDSN()
	}
}

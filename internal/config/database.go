package config

import "time"

type DatabaseConfig struct {
	Driver       string           `json:"driver"`
	SQLite       SQLiteConfig     `json:"sqlite"`
	Postgres     PostgreSQLConfig `json:"postgres"`
	QueryTimeout Duration         `json:"query_timeout"`
}

type SQLiteConfig struct {
	File string `json:"file"`
}

type PostgreSQLConfig struct {
	User string `json:"user"`
	Pass string `json:"pass"`
	Host string `json:"host"`
	Port string `json:"port"`
	Db   string `json:"db"`
}

func NewDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver: "sqlite",
		SQLite: SQLiteConfig{
			File: "webhookd.db",
		},
		Postgres: PostgreSQLConfig{
			User: "postgres",
			Pass: "postgres",
			Host: "localhost",
			Port: "5432",
			Db:   "webhookd",
		},
		QueryTimeout: Duration(10 * time.Second),
	}
}

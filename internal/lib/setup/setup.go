package setup

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"webhookd/internal/broker"
	"webhookd/internal/config"
	"webhookd/internal/db"
	"webhookd/internal/lib/sl"
)

// LoadDotEnv pulls a local .env file into the environment if one exists.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", sl.Error(err))
	}
}

func Logger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

type DatabaseCreator = func(config.DatabaseConfig) (db.Database, error)

var Drivers = map[string]DatabaseCreator{
	"sqlite": func(cfg config.DatabaseConfig) (db.Database, error) {
		return db.NewSQLite(cfg.SQLite.File)
	},
	"postgres": func(cfg config.DatabaseConfig) (db.Database, error) {
		return db.NewPostgres(postgresUrl(cfg.Postgres))
	},
}

func ConnectToDatabase(cfg config.DatabaseConfig) db.Database {
	creator, exists := Drivers[cfg.Driver]
	if !exists {
		slog.Error("unknown database driver", slog.String("driver", cfg.Driver))
		os.Exit(1)
	}

	slog.Info("connecting to database", slog.String("driver", cfg.Driver))
	database, err := creator(cfg)
	if err != nil {
		slog.Error("failed to connect to database", sl.Error(err))
		os.Exit(1)
	}
	return database
}

func postgresUrl(cfg config.PostgreSQLConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.User, cfg.Pass, cfg.Host, cfg.Port, cfg.Db,
	)
}

func ConnectToBroker(cfg config.BrokerConfig) broker.MessageBroker {
	switch cfg.Driver {
	case "", "channel":
		return broker.NewChannel()
	case "rabbitmq":
		slog.Info("connecting to RabbitMQ")
		url := fmt.Sprintf(
			"amqp://%s:%s@%s:%s/",
			cfg.RabbitMQ.User, cfg.RabbitMQ.Pass, cfg.RabbitMQ.Host, cfg.RabbitMQ.Port,
		)
		b, err := broker.NewRabbitMQ(url)
		if err != nil {
			slog.Error("failed to connect to RabbitMQ", sl.Error(err))
			os.Exit(1)
		}
		return b
	default:
		slog.Error("unknown broker driver", slog.String("driver", cfg.Driver))
		os.Exit(1)
		return nil
	}
}

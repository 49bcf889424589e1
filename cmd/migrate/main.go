package main

import (
	"flag"
	"log"

	"rexsphere/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	down := flag.Bool("down", false, "roll back all migrations instead of applying them")
	flag.Parse()

	config.LoadConfig()
	cfg := config.GlobalConfig.Database
	dsn := "pgx5://" + cfg.User + ":" + cfg.Password + "@" + cfg.Host + ":" + cfg.Port + "/" + cfg.DBName + "?sslmode=" + cfg.SSLMode

	m, err := migrate.New(
		"file://migrations",
		dsn,
	)
	if err != nil {
		log.Fatal(err)
	}

	if *down {
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			log.Fatal(err)
		}
		log.Println("Rollback successful")
		return
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		// dirty 状态下强制回到当前版本再重试一次
		if version, dirty, verr := m.Version(); verr == nil && dirty {
			log.Printf("Database is dirty at version %d, forcing...", version)
			if err := m.Force(int(version)); err != nil {
				log.Fatal("Failed to force version:", err)
			}
			if err := m.Up(); err != nil && err != migrate.ErrNoChange {
				log.Fatal(err)
			}
		} else {
			log.Fatal(err)
		}
	}

	log.Println("Migration successful")
}

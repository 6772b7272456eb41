package database

import (
	"os"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"

	"github.com/Nevmen9Iemm/BOT/database/models"
)

func Connect() *pg.DB {
	db := pg.Connect(&pg.Options{
		Addr:     os.Getenv("DB_HOST") + ":" + os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: os.Getenv("DB_NAME"),
	})

	return db
}

func InitDb(db *pg.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Category)(nil),
		(*models.Product)(nil),
		(*models.Banner)(nil),
		(*models.CartLine)(nil),
		(*models.Order)(nil),
		(*models.OrderItem)(nil),
	}

	for _, table := range tables {
		err := db.Model(table).CreateTable(&orm.CreateTableOptions{
			Temp:        false,
			IfNotExists: true,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

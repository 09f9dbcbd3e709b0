package main

import (
	"os"

	"github.com/tejarat-tech/catalog-backend/internal/app"
	config "github.com/tejarat-tech/catalog-backend/internal/cfg"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
)

// @title Catalog Class Hierarchy API
// @version 1.0
// @description Дерево классов товаров с наследованием цен, атрибутов и медиа
// @BasePath /api/v1
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/Nevmen9Iemm/BOT/actions"
	"github.com/Nevmen9Iemm/BOT/database"
	"github.com/Nevmen9Iemm/BOT/filters"
	"github.com/Nevmen9Iemm/BOT/handlers"
	"github.com/Nevmen9Iemm/BOT/logger"
	"github.com/Nevmen9Iemm/BOT/menu"
	"github.com/Nevmen9Iemm/BOT/metrics"
)

const (
	debug           = false
	maxWorkers      = 50
	shutdownTimeout = 5 * time.Second
	metricsInterval = 12 * time.Hour
	updateTimeout   = 30 * time.Second
)

func connect() *tgbotapi.BotAPI {
	_ = godotenv.Load() // Для dev-режиму підхопить .env, у проді проігнорує

	bot, err := tgbotapi.NewBotAPI(os.Getenv("API_KEY"))
	if err != nil {
		panic(err)
	}

	logger.GetLogger().Info("Successfully authorized on account @%s", bot.Self.UserName)

	return bot
}

func getBotActions(bot tgbotapi.BotAPI, resolver *menu.Resolver, store menu.Store) handlers.ActiveHandlers {
	act := handlers.ActiveHandlers{Handlers: []handlers.Handler{
		handlers.CommandHandler.Product(actions.NewStartHandler(bot, resolver, store), []handlers.Filter{filters.StartFilter}),
		handlers.CallbackQueryHandler.Product(actions.NewMenuHandler(bot, resolver, store), []handlers.Filter{filters.MenuFilter}),
		handlers.CallbackQueryHandler.Product(actions.NewMakeOrderHandler(bot, resolver), []handlers.Filter{filters.PlaceOrderFilter}),
	}}

	return act
}

func printUpdate(update *tgbotapi.Update) {
	updateJSON, err := json.MarshalIndent(update, "", "    ")
	if err != nil {
		return
	}

	logger.GetLogger().Debug("Update: %s", string(updateJSON))
}

func main() {
	log := logger.GetLogger()
	if debug {
		log.SetLevel(logger.Debug)
	}

	met := metrics.GetMetrics()

	db := database.Connect()
	defer db.Close()

	if err := database.InitDb(db); err != nil {
		log.Fatal("Failed to initialize database: %v", err)
	}

	store := database.NewStore(db)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.SeedBanners(seedCtx, database.DefaultBanners); err != nil {
		log.Fatal("Failed to seed banners: %v", err)
	}
	if err := store.SeedCategories(seedCtx, database.DefaultCategories); err != nil {
		log.Fatal("Failed to seed categories: %v", err)
	}
	seedCancel()

	resolver := menu.NewResolver(store)

	client := connect()
	act := getBotActions(*client, resolver, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		ticker := time.NewTicker(metricsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := met.GetStats()
				log.Info("Metrics: %+v", stats)
			case <-ctx.Done():
				return
			}
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info("Received signal: %v", sig)
		cancel()
	}()

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := client.GetUpdatesChan(updateConfig)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxWorkers)

	for {
		select {
		case update := <-updates:
			if debug {
				printUpdate(&update)
			}

			select {
			case semaphore <- struct{}{}:
				wg.Add(1)
				startTime := time.Now()

				go func(update tgbotapi.Update) {
					success := true

					defer func() {
						<-semaphore
						wg.Done()

						duration := time.Since(startTime)
						met.RecordUpdateProcessing(duration, success)
						met.RecordGoroutineCount(runtime.NumGoroutine())
					}()

					defer func() {
						if r := recover(); r != nil {
							log.Error("Panic in handler: %v", r)
							met.RecordError("panic")
							success = false
						}
					}()

					_, updateCancel := context.WithTimeout(ctx, updateTimeout)
					defer updateCancel()

					results := act.HandleAll(update, *client)
					for _, result := range results {
						if result.Error != nil {
							log.Error("Error handling %s update: %v", result.Name, result.Error)
							met.RecordError("handler_error")
							success = false
						}
					}
				}(update)
			case <-ctx.Done():
				goto shutdown
			}
		case <-ctx.Done():
			goto shutdown
		}
	}

shutdown:
	log.Info("Shutting down...")

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("All handlers completed successfully")
	case <-time.After(shutdownTimeout):
		log.Warning("Shutdown timeout reached, some handlers may not have completed")
	}

	log.Info("Final metrics: %+v", met.GetStats())

	log.Info("Bot shutdown complete")
}

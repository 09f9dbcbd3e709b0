package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	config "github.com/tejarat-tech/catalog-backend/internal/cfg"
	v1Http "github.com/tejarat-tech/catalog-backend/internal/delivery/v1/http"
	"github.com/tejarat-tech/catalog-backend/internal/infrastructure/kafka"
	minioInfra "github.com/tejarat-tech/catalog-backend/internal/infrastructure/minio"
	"github.com/tejarat-tech/catalog-backend/internal/repository/memcache"
	"github.com/tejarat-tech/catalog-backend/internal/repository/memtree"
	s3Repo "github.com/tejarat-tech/catalog-backend/internal/repository/minio"
	"github.com/tejarat-tech/catalog-backend/internal/repository/pgdb"
	pgdbConv "github.com/tejarat-tech/catalog-backend/internal/repository/pgdb/converter/generated"
	"github.com/tejarat-tech/catalog-backend/internal/repository/redis"
	redisConv "github.com/tejarat-tech/catalog-backend/internal/repository/redis/converter/generated"
	"github.com/tejarat-tech/catalog-backend/internal/usecase"
	"github.com/tejarat-tech/catalog-backend/pkg/clients"
	"github.com/tejarat-tech/catalog-backend/pkg/e"
	"github.com/tejarat-tech/catalog-backend/pkg/logger"
	"github.com/tejarat-tech/catalog-backend/pkg/postgres"
)

// Run собирает приложение по конфигурации и блокируется до сигнала
// завершения или фатальной ошибки сервера.
func Run(cfg *config.Config, log logger.Logger) error {
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()

	var (
		hierarchyUC usecase.HierarchyUC
		attrTypeUC  usecase.AttributeTypeUC

		db          *postgres.PgDatabase
		redisClient *clients.RedisClient
		producer    *kafka.Producer
		worker      *kafka.OutboxWorker
		mediaInfra  *minioInfra.MinioInfrastructure
	)

	switch cfg.Storage.Mode {
	case config.StorageModeEmbedded:
		hierarchyUC, attrTypeUC = buildEmbedded(cfg, log)

	case config.StorageModePostgres:
		var err error
		db, err = initPGDB(log, cfg)
		if err != nil {
			return err
		}

		classConv := pgdbConv.NewProductClassConverterImpl()
		attrConv := pgdbConv.NewClassAttributeConverterImpl()
		outboxConv := pgdbConv.NewOutboxEventConverterImpl()
		profileConv := redisConv.NewProfileConverterImpl()

		classRepo := pgdb.NewClassRepo(db.Pool, classConv)
		typeRepo := pgdb.NewAttributeTypeRepo(db.Pool)
		attrRepo := pgdb.NewClassAttributeRepo(db.Pool, attrConv)
		bindingRepo := pgdb.NewBindingRepo(db.Pool)
		outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)
		txm := pgdb.NewTxManager(db.Pool)

		redisClient = clients.NewRedisClient(cfg.Redis)
		redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(redisCtx); err != nil {
			redisCancel()
			log.Errorf(err, "failed to connect to redis")
			return e.Wrap(whereami.WhereAmI(), err)
		}
		redisCancel()
		cacheRepo := redis.NewCacheRepo(redisClient, profileConv, cfg.Redis, log)

		minioClient, err := clients.NewMinIOClient(cfg.Minio)
		if err != nil {
			log.Errorf(err, "failed to initialize minio client")
			return e.Wrap(whereami.WhereAmI(), err)
		}

		minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
			minioCancel()
			log.Errorf(err, "failed to initialize minio bucket")
			return e.Wrap(whereami.WhereAmI(), err)
		}
		minioCancel()

		mediaRepo := s3Repo.NewMediaRepo(minioClient, cfg.Minio)
		mediaInfra = minioInfra.NewMinioInfrastructure(mediaRepo, cfg.Minio, log, cleanupCtx)

		producer, err = kafka.NewProducer(log, cfg.Kafka)
		if err != nil {
			log.Errorf(err, "failed to initialize kafka producer")
			return e.Wrap(whereami.WhereAmI(), err)
		}
		if err := producer.EnsureTopic(10 * time.Second); err != nil {
			log.Errorf(err, "failed to ensure kafka topic")
			return e.Wrap(whereami.WhereAmI(), err)
		}

		worker = kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
		worker.Start(context.Background())

		hierarchyUC = usecase.NewHierarchyUseCase(
			classRepo,
			attrRepo,
			typeRepo,
			bindingRepo,
			outboxRepo,
			cacheRepo,
			txm,
			mediaInfra,
			log,
			cfg.Hierarchy.MaxDepth,
		)
		attrTypeUC = usecase.NewAttributeTypeUseCase(typeRepo, txm, log)
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(hierarchyUC, attrTypeUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s (storage: %s)", cfg.Http.Port, cfg.Storage.Mode)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		log.Errorf(err, "HTTP server shutdown error")
	} else {
		log.Infof("HTTP server stopped")
	}

	if worker != nil {
		worker.Stop()
		log.Infof("outbox worker stopped")
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Warnf("kafka producer close error: %v", err)
		}
	}

	if mediaInfra != nil {
		done := make(chan error, 1)
		go func() {
			done <- mediaInfra.WaitForCleanup(shutdownCtx)
		}()

		select {
		case err := <-done:
			if err != nil {
				log.Warnf("MinIO cleanup error: %v", err)
			} else {
				log.Infof("MinIO cleanup completed")
			}
		case <-time.After(5 * time.Second):
			log.Warnf("MinIO cleanup did not finish before shutdown, some objects may remain")
		}
	}

	if redisClient != nil {
		if err := redisClient.Client.Close(); err != nil {
			log.Warnf("Redis close error: %v", err)
		}
	}

	if db != nil {
		db.Close()
	}

	log.Infof("Application shutdown complete")
	return appErr
}

// buildEmbedded поднимает движок поверх арены в памяти: без транзакций,
// без Redis и без отгрузки событий наружу.
func buildEmbedded(cfg *config.Config, log logger.Logger) (usecase.HierarchyUC, usecase.AttributeTypeUC) {
	// Тот же TTL, что и по умолчанию у Redis-кэша в режиме postgres.
	const embeddedProfileTTL = 3 * time.Minute

	store := memtree.NewStore()
	cache := memcache.New(embeddedProfileTTL)
	txm := memtree.NewTransactor()

	hierarchyUC := usecase.NewHierarchyUseCase(
		store.Classes(),
		store.ClassAttributes(),
		store.AttributeTypes(),
		store.Bindings(),
		nil,
		cache,
		txm,
		nil,
		log,
		cfg.Hierarchy.MaxDepth,
	)
	attrTypeUC := usecase.NewAttributeTypeUseCase(store.AttributeTypes(), txm, log)

	return hierarchyUC, attrTypeUC
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

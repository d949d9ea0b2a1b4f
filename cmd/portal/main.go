package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	authhdl "github.com/coopstead/portal/internal/api/handlers/auth"
	commhdl "github.com/coopstead/portal/internal/api/handlers/communication"
	dochdl "github.com/coopstead/portal/internal/api/handlers/document"
	eventhdl "github.com/coopstead/portal/internal/api/handlers/event"
	forumhdl "github.com/coopstead/portal/internal/api/handlers/forum"
	meetinghdl "github.com/coopstead/portal/internal/api/handlers/meeting"
	notifhdl "github.com/coopstead/portal/internal/api/handlers/notification"
	taskhdl "github.com/coopstead/portal/internal/api/handlers/task"
	uploadhdl "github.com/coopstead/portal/internal/api/handlers/upload"
	"github.com/coopstead/portal/internal/api/router"
	"github.com/coopstead/portal/internal/api/server"
	"github.com/coopstead/portal/internal/changefeed"
	"github.com/coopstead/portal/internal/config"
	"github.com/coopstead/portal/internal/notifycenter"
	commrepo "github.com/coopstead/portal/internal/repository/communication"
	docrepo "github.com/coopstead/portal/internal/repository/document"
	eventrepo "github.com/coopstead/portal/internal/repository/event"
	forumrepo "github.com/coopstead/portal/internal/repository/forum"
	meetingrepo "github.com/coopstead/portal/internal/repository/meeting"
	notifrepo "github.com/coopstead/portal/internal/repository/notification"
	taskrepo "github.com/coopstead/portal/internal/repository/task"
	userrepo "github.com/coopstead/portal/internal/repository/user"
	commsvc "github.com/coopstead/portal/internal/service/communication"
	docsvc "github.com/coopstead/portal/internal/service/document"
	forumsvc "github.com/coopstead/portal/internal/service/forum"
	meetingsvc "github.com/coopstead/portal/internal/service/meeting"
	notifsvc "github.com/coopstead/portal/internal/service/notification"
	signaturesvc "github.com/coopstead/portal/internal/service/signature"
	tasksvc "github.com/coopstead/portal/internal/service/task"
	"github.com/coopstead/portal/internal/session"
	"github.com/coopstead/portal/internal/storage"
	"github.com/coopstead/portal/internal/worker"
	"github.com/coopstead/portal/pkg/email"
	"github.com/coopstead/portal/pkg/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	feed, err := changefeed.New(ch, cfg.Retry)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create change feed")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	store, err := storage.New(cfg.Storage.Root, cfg.Storage.PublicBaseURL, cfg.Storage.MaxUploadMB, cfg.Storage.AllowedTypes)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open object storage")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	telegramClient := telegram.NewClient(cfg.Telegram.Token)

	sessions := session.NewManager(cfg.JWT.Secret, cfg.JWT.TTL)

	users := userrepo.NewRepository(db)
	notifications := notifrepo.NewRepository(db)
	documents := docrepo.NewRepository(db)
	forums := forumrepo.NewRepository(db)
	communications := commrepo.NewRepository(db)
	tasks := taskrepo.NewRepository(db)
	events := eventrepo.NewRepository(db)
	meetings := meetingrepo.NewRepository(db)

	notifService := notifsvc.NewService(notifications, feed, cfg.Retry)
	centers := notifycenter.NewManager(notifService, notifycenter.WrapFeed(feed))
	defer centers.Close()

	signatures := signaturesvc.NewService(documents, store)
	documentService := docsvc.NewService(documents, users, notifService)
	forumService := forumsvc.NewService(forums, notifService)
	commService := commsvc.NewService(communications, users, notifService, rdb, cfg.Retry)
	taskService := tasksvc.NewService(tasks, notifService)
	meetingService := meetingsvc.NewService(meetings, users, notifService)

	delivery := worker.NewDelivery(feed, users, emailClient, telegramClient)
	go delivery.Run(ctx, cfg.Retry, cfg.Workers.Count)

	r := router.New(router.Handlers{
		Auth:          authhdl.NewHandler(users, sessions, val),
		Notification:  notifhdl.NewHandler(centers, notifService, feed, val),
		Document:      dochdl.NewHandler(documentService, signatures, val),
		Upload:        uploadhdl.NewHandler(store),
		Forum:         forumhdl.NewHandler(forumService, val),
		Communication: commhdl.NewHandler(commService, val),
		Task:          taskhdl.NewHandler(taskService, val),
		Event:         eventhdl.NewHandler(events, val),
		Meeting:       meetinghdl.NewHandler(meetingService, val),
	}, sessions, cfg.Server.CORSOrigin)

	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}
}

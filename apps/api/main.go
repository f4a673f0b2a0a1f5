package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/CH-Shireesha/teacher-management/apps/api/echo"
	"github.com/CH-Shireesha/teacher-management/core"
	"github.com/CH-Shireesha/teacher-management/core/dashboard"
	"github.com/CH-Shireesha/teacher-management/core/payment"
	"github.com/CH-Shireesha/teacher-management/core/teacher"
	emailsvc "github.com/CH-Shireesha/teacher-management/services/email"
	logsvc "github.com/CH-Shireesha/teacher-management/services/logger"
	inmemdb "github.com/CH-Shireesha/teacher-management/storage/database/inmem"
)

const shutdownTimeout = 10 * time.Second

func main() {
	stdLogger := log.New(os.Stderr, "API : ", log.LstdFlags|log.Lshortfile)

	conf, err := core.LoadConfig()
	errAndDie(stdLogger, err)

	var logger core.Logger
	if conf.Debug || conf.TestMode {
		logger = logsvc.NewStdLogger(stdLogger)
	} else {
		rollbarLogger := logsvc.NewRollbarLogger(stdLogger, conf)
		rollbarLogger.Enable(true)
		logger = rollbarLogger
	}

	// set up DB
	db, err := inmemdb.Open()
	errAndDie(stdLogger, err)

	teacherRepo := inmemdb.NewTeacherRepository(db)
	paymentRepo := inmemdb.NewPaymentRepository(db)
	activityRepo := inmemdb.NewActivityRepository(db)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	dashSvc := dashboard.NewService(teacherRepo, paymentRepo, activityRepo, logger)
	teacherSvc := teacher.NewService(teacherRepo, dashSvc)
	paymentSvc := payment.NewService(
		paymentRepo, teacherRepo, mailSvc, logger, dashSvc, core.NewScheduler(), conf,
	)

	errAndDie(stdLogger, seedDB(teacherRepo, paymentRepo))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:         conf.Server.Addr,
			Conf:         conf,
			Logger:       logger,
			TeacherSvc:   teacherSvc,
			PaymentSvc:   paymentSvc,
			DashboardSvc: dashSvc,
		},
	)
	go app.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = app.Stop(ctx); err != nil {
		stdLogger.Fatal(err)
	}
}

func errAndDie(logger *log.Logger, err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "farmcredit-backend/internal/adapter/http"
	"farmcredit-backend/internal/adapter/middleware"
	"farmcredit-backend/internal/adapter/repository/mysql"
	"farmcredit-backend/internal/config"
	"farmcredit-backend/internal/infrastructure/cache"
	"farmcredit-backend/internal/infrastructure/db"
	appUC "farmcredit-backend/internal/usecase/application"
	creditUC "farmcredit-backend/internal/usecase/credit"
	disburseUC "farmcredit-backend/internal/usecase/disbursement"
	partnerUC "farmcredit-backend/internal/usecase/partner"
	repayUC "farmcredit-backend/internal/usecase/repayment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	credits := mysql.NewCreditRepository(gdb)
	products := mysql.NewProductRepository(gdb)
	apps := mysql.NewApplicationRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	borrowers := mysql.NewBorrowerRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	creditUsecase := creditUC.NewUsecase(credits, uow)
	appUsecase := appUC.NewUsecase(products, apps, credits, borrowers, uow)
	partnerUsecase := partnerUC.NewUsecase(apps, uow)
	disburseUsecase := disburseUC.NewUsecase(uow)
	repayUsecase := repayUC.NewUsecase(loans, uow)

	h := httpadp.NewHandler()
	creditH := httpadp.NewCreditHandler(creditUsecase)
	productH := httpadp.NewProductHandler(appUsecase)
	loanH := httpadp.NewLoanHandler(appUsecase)
	partnerH := httpadp.NewPartnerHandler(partnerUsecase)
	disburseH := httpadp.NewDisbursementHandler(disburseUsecase)
	repayH := httpadp.NewRepaymentHandler(repayUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/credit/applications", creditH.Apply)
	e.POST("/credit/applications/:application_id/decision", creditH.Decide)
	e.GET("/credit/applications/pending", creditH.ListPending)
	e.GET("/credit/limit", creditH.QueryLimit)

	e.POST("/products", productH.Publish)
	e.GET("/products", productH.List)

	e.POST("/loans/applications/single", loanH.ApplySingle)
	e.POST("/loans/applications/joint", loanH.ApplyJoint)
	e.POST("/loans/applications/:application_id/decision", loanH.Decide)
	e.GET("/loans/applications/pending", loanH.ListPending)
	e.GET("/loans/applications/approved", loanH.ListApproved)
	e.GET("/loans/applications/:application_id", loanH.Get)
	e.GET("/loans/partners", loanH.ListJointCandidates)
	e.GET("/loans/recommendation", loanH.Recommend)

	e.POST("/loans/applications/:application_id/partner-decision", partnerH.Decide)
	e.GET("/loans/invitations", partnerH.ListInvitations)

	e.POST("/loans/applications/:application_id/disbursement", disburseH.Disburse)

	e.GET("/loans", repayH.ListLoans)
	e.GET("/loans/:loan_id/schedule", repayH.GetSchedule)
	e.POST("/loans/:loan_id/repayments", repayH.Repay)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

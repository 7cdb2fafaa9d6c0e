package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "workflow-platform-backend/internal/adapter/http"
	idemp "workflow-platform-backend/internal/adapter/middleware"
	"workflow-platform-backend/internal/adapter/repository/mysql"
	"workflow-platform-backend/internal/config"
	domainDocument "workflow-platform-backend/internal/domain/document"
	"workflow-platform-backend/internal/infrastructure/cache"
	"workflow-platform-backend/internal/infrastructure/db"
	"workflow-platform-backend/internal/infrastructure/objectstore"
	"workflow-platform-backend/internal/pdf"
	"workflow-platform-backend/internal/seed"
	approvalUC "workflow-platform-backend/internal/usecase/approval"
	documentUC "workflow-platform-backend/internal/usecase/document"
	formUC "workflow-platform-backend/internal/usecase/form"
	submissionUC "workflow-platform-backend/internal/usecase/submission"
	workflowUC "workflow-platform-backend/internal/usecase/workflow"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	defer func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	var store documentUC.ObjectStore
	if cfg.DocStorage == "external" {
		ms, err := objectstore.OpenMinio(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			log.Fatalf("minio: %v", err)
		}
		store = ms
	}

	forms := mysql.NewFormRepository(gdb)
	workflows := mysql.NewWorkflowRepository(gdb)
	submissions := mysql.NewSubmissionRepository(gdb)
	documents := mysql.NewDocumentRepository(gdb)
	templates := mysql.NewTemplateRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	formUsecase := formUC.NewUsecase(forms)
	workflowUsecase := workflowUC.NewUsecase(workflows)
	submissionUsecase := submissionUC.NewUsecase(forms, workflows, submissions, uow)
	approvalUsecase := approvalUC.NewUsecase(uow)
	documentUsecase := documentUC.NewUsecase(submissions, documents, pdf.NewGenerator(), store, domainDocument.Storage(cfg.DocStorage))
	seeder := seed.NewSeeder(formUsecase, workflowUsecase, templates)

	h := httpadp.NewHandler()
	fh := httpadp.NewFormHandler(formUsecase)
	wh := httpadp.NewWorkflowHandler(workflowUsecase)
	sh := httpadp.NewSubmissionHandler(submissionUsecase)
	ah := httpadp.NewApprovalHandler(approvalUsecase)
	dh := httpadp.NewDocumentHandler(documentUsecase)
	th := httpadp.NewTemplateHandler(seeder, templates)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover(), middleware.CORS())
	e.Use(idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/forms", fh.CreateForm)
	e.GET("/forms", fh.ListForms)
	e.GET("/forms/:form_id", fh.GetForm)

	e.POST("/workflows", wh.CreateWorkflow)
	e.GET("/workflows", wh.ListWorkflows)
	e.GET("/workflows/:workflow_id", wh.GetWorkflow)

	e.POST("/submissions", sh.CreateSubmission)
	e.GET("/submissions", sh.ListSubmissions)
	e.GET("/submissions/:submission_id", sh.GetSubmission)
	e.POST("/submissions/:submission_id/archive", sh.ArchiveSubmission)

	e.POST("/approvals", ah.ActOnSubmission)
	e.GET("/submissions/:submission_id/approvals", ah.ListSubmissionApprovals)

	e.POST("/submissions/:submission_id/documents", dh.GenerateDocument)
	e.POST("/documents/:document_id/archive", dh.ArchiveDocument)
	e.GET("/documents", dh.ListDocuments)

	e.POST("/templates/seed", th.SeedTemplates)
	e.GET("/templates", th.ListTemplates)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

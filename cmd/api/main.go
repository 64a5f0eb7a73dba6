package main

import (
	"context"
	"os"
	"strconv"

	"compliancehub/cmd/internal/domain/policy"
	"compliancehub/cmd/internal/domain/sqlite"
	"compliancehub/cmd/internal/domain/sqlite/repository"
	handler2 "compliancehub/cmd/internal/http/handler"
	authmw "compliancehub/cmd/internal/http/middleware"
	cognitoclient "compliancehub/cmd/internal/infrastructure/aws/cognito"
	"compliancehub/cmd/internal/service"
	"compliancehub/cmd/internal/service/jobs"
	"compliancehub/cmd/internal/utils"
	"compliancehub/cmd/internal/utils/uid"
	"compliancehub/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/compliancehub/prod/"

func main() {
	validate := validator.New()
	registerValidators(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		err := godotenv.Load()
		if err != nil {
			panic(err)
		}
	}

	machineID, err := strconv.ParseInt(os.Getenv("MACHINE_ID"), 10, 64)
	if err != nil {
		machineID = 1
	}
	uid.Init(machineID)

	if err = utils.InitJWKS(os.Getenv("AWS_COGNITO_REGION"), os.Getenv("AWS_COGNITO_POOL_ID")); err != nil {
		panic(err)
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// Init cognito client
	cogClient, err := cognitoclient.InitCognitoClient()
	if err != nil {
		panic(err)
	}

	// Gettings repos
	companyRepo := repository.NewCompanyRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	complianceRepo := repository.NewComplianceRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	memberPolicy := policy.NewMemberPolicy()

	// Getting services
	onboardingService := service.NewOnboardingService(db, cogClient, validate)
	authService := service.NewAuthService(profileRepo, cogClient, onboardingService, validate)
	companyService := service.NewCompanyService(companyRepo, validate, memberPolicy)
	complianceService := service.NewComplianceService(complianceRepo, validate, memberPolicy)
	taskService := service.NewTaskService(taskRepo, complianceRepo, notifRepo, validate, memberPolicy)
	documentService := service.NewDocumentService(documentRepo, complianceRepo, validate, memberPolicy)
	teamService := service.NewTeamService(profileRepo, validate, memberPolicy)
	notificationService := service.NewNotificationService(notifRepo)
	reportService := service.NewReportService(complianceRepo, taskRepo, memberPolicy)

	// Gettings handlers
	authRoutes := handler2.NewAuthRoute(authService)
	onboardingRoutes := handler2.NewOnboardingRoute(onboardingService)
	companyRoutes := handler2.NewCompanyRoute(companyService)
	complianceRoutes := handler2.NewComplianceRoute(complianceService)
	taskRoutes := handler2.NewTaskRoute(taskService)
	documentRoutes := handler2.NewDocumentRoute(documentService)
	teamRoutes := handler2.NewTeamRoute(teamService)
	notificationRoutes := handler2.NewNotificationRoute(notificationService)
	reportRoutes := handler2.NewReportRoute(reportService)

	// Background jobs
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()

	reminder := jobs.NewReminderScheduler(complianceRepo, profileRepo, notifRepo)
	sweeper := jobs.NewFlowSweeper(onboardingService)
	go reminder.Start(jobCtx)
	go sweeper.Start(jobCtx)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	auth := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{ProfileRepo: profileRepo})

	// Onboarding wizard (anonymous)
	e.POST("/api/onboarding/flows", onboardingRoutes.StartFlow)
	e.PUT("/api/onboarding/flows/:flow_id/company", onboardingRoutes.SubmitCompanyInfo)
	e.PUT("/api/onboarding/flows/:flow_id/business", onboardingRoutes.SubmitBusinessDetails)
	e.PUT("/api/onboarding/flows/:flow_id/account", onboardingRoutes.SubmitUserAccount)
	e.POST("/api/onboarding/flows/:flow_id/complete", onboardingRoutes.Complete)

	// Auth
	e.POST("/api/auth/login", authRoutes.Login)
	e.POST("/api/auth/logout", authRoutes.Logout)
	e.POST("/api/auth/confirms", authRoutes.ConfirmSignup)
	e.POST("/api/auth/confirms/resend", authRoutes.ResendConfirmation)
	e.GET("/api/auth/session", authRoutes.GetSession, auth)

	// Profile
	e.GET("/api/profile", authRoutes.GetProfile, auth)
	e.PATCH("/api/profile", authRoutes.UpdateProfile, auth)

	// Company
	e.GET("/api/company", companyRoutes.GetCompany, auth)
	e.PATCH("/api/company", companyRoutes.UpdateCompany, auth)

	// Compliances
	e.GET("/api/compliances", complianceRoutes.GetCompliances, auth)
	e.GET("/api/compliances/:id", complianceRoutes.GetCompliance, auth)
	e.POST("/api/compliances", complianceRoutes.CreateCompliance, auth)
	e.PATCH("/api/compliances/:id", complianceRoutes.UpdateCompliance, auth)
	e.DELETE("/api/compliances/:id", complianceRoutes.DeleteCompliance, auth)

	// Tasks
	e.GET("/api/compliances/:compliance_id/tasks", taskRoutes.GetTasks, auth)
	e.POST("/api/compliances/:compliance_id/tasks", taskRoutes.CreateTask, auth)
	e.PATCH("/api/tasks/:id", taskRoutes.UpdateTask, auth)
	e.DELETE("/api/tasks/:id", taskRoutes.DeleteTask, auth)

	// Documents
	e.GET("/api/documents", documentRoutes.GetDocuments, auth)
	e.POST("/api/documents", documentRoutes.CreateDocument, auth)
	e.PATCH("/api/documents/:id", documentRoutes.UpdateDocument, auth)
	e.DELETE("/api/documents/:id", documentRoutes.DeleteDocument, auth)

	// Team
	e.GET("/api/team", teamRoutes.GetMembers, auth)
	e.PATCH("/api/team/:id/role", teamRoutes.UpdateMemberRole, auth)

	// Notifications
	e.GET("/api/notifications", notificationRoutes.GetNotifications, auth)
	e.PATCH("/api/notifications/:id/read", notificationRoutes.MarkRead, auth)
	e.POST("/api/notifications/read-all", notificationRoutes.MarkAllRead, auth)
	e.DELETE("/api/notifications/:id", notificationRoutes.DeleteNotification, auth)

	// Dashboard, calendar and reports
	e.GET("/api/dashboard", reportRoutes.GetDashboard, auth)
	e.GET("/api/calendar", reportRoutes.GetCalendar, auth)
	e.GET("/api/reports", reportRoutes.GetReports, auth)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	if err := e.Start(":7070"); err != nil {
		panic(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("cin", validators.CIN)
	_ = validate.RegisterValidation("pan", validators.PAN)
	_ = validate.RegisterValidation("gstin", validators.GSTIN)
	_ = validate.RegisterValidation("instate", validators.InState)
	_ = validate.RegisterValidation("datelayout", validators.DateLayout)
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_COGNITO_REGION")))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}

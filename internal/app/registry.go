package app

import (
	"database/sql"

	"github.com/Mosab-97/Dalal-Payroll-App/internal/activity"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/advance"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/employee"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/expense"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/exporter"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/importer"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/messaging/kafka"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/payroll"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/project"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/reconcile"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/shared/counter"
	"github.com/Mosab-97/Dalal-Payroll-App/internal/statement"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, db *gorm.DB, sqlDB *sql.DB, rdb *redis.Client) {
	v1 := router.Group("/v1")

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	counterRepo := counter.NewRepository(db)

	projectRepo := project.NewRepository(db)
	projectService := project.NewService(sqlDB, projectRepo, outboxRepo)
	project.RegisterRoutes(v1, project.NewHandler(projectService))

	employeeRepo := employee.NewRepository(db)
	employeeService := employee.NewService(sqlDB, employeeRepo, counterRepo, outboxRepo)
	employee.RegisterRoutes(v1, employee.NewHandler(employeeService), rdb)

	payrollRepo := payroll.NewRepository(db)
	advanceRepo := advance.NewRepository(db)

	reconcileTaskRepo := reconcile.NewTaskRepository(db)
	reconcileService := reconcile.NewService(sqlDB, payrollRepo, advanceRepo, reconcileTaskRepo, outboxRepo)

	payrollService := payroll.NewService(sqlDB, payrollRepo, advanceRepo, outboxRepo)
	payroll.RegisterRoutes(v1, payroll.NewHandlerWithRedis(payrollService, rdb), rdb)

	advanceService := advance.NewService(sqlDB, advanceRepo, reconcileService, outboxRepo)
	advance.RegisterRoutes(v1, advance.NewHandlerWithRedis(advanceService, rdb), rdb)

	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(sqlDB, expenseRepo, outboxRepo)
	expense.RegisterRoutes(v1, expense.NewHandler(expenseService), rdb)

	statementRepo := statement.NewRepository(db)
	statementService := statement.NewService(statementRepo, rdb)
	statement.RegisterRoutes(v1, statement.NewHandler(statementService))

	activityRepo := activity.NewRepository(db)
	activity.RegisterRoutes(v1, activity.NewHandler(activityRepo))

	importService := importer.NewService(
		employeeService,
		projectService,
		payrollService,
		advanceService,
		expenseService,
	)
	importer.RegisterRoutes(v1, importer.NewHandlerWithRedis(importService, rdb), rdb)

	exportService := exporter.NewService()
	exportService.RegisterSource("employees", employee.ExportSource(employeeService))
	exportService.RegisterSource("payrolls", payroll.ExportSource(payrollService))
	exportService.RegisterSource("advances", advance.ExportSource(advanceService))
	exportService.RegisterSource("expenses", expense.ExportSource(expenseService))
	exportService.RegisterSource("statements", statement.ExportSource(statementService))
	exporter.RegisterRoutes(v1, exporter.NewHandler(exportService))
}

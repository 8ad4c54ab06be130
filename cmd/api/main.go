package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/nominamx/nomina-backend-go/internal/config"
	appHTTP "github.com/nominamx/nomina-backend-go/internal/handler/http"
	"github.com/nominamx/nomina-backend-go/internal/pkg/database"
	"github.com/nominamx/nomina-backend-go/internal/pkg/jwt"
	"github.com/nominamx/nomina-backend-go/internal/repository/postgresql"
	"github.com/nominamx/nomina-backend-go/internal/repository/taxtables"
	employeeService "github.com/nominamx/nomina-backend-go/internal/service/employee"
	payrollService "github.com/nominamx/nomina-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MinConns, cfg.Database.MaxConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	taxTableRepo, err := taxtables.NewRepository(cfg.Payroll.TaxTableDir)
	if err != nil {
		log.Fatal("Failed to load tax tables: ", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	empService := employeeService.NewEmployeeService(employeeRepo)
	payService := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, companyRepo, taxTableRepo, payrollService.Options{
		BatchConcurrency:           cfg.Payroll.BatchConcurrency,
		DefaultWorkRiskRatePercent: cfg.Payroll.DefaultWorkRiskRatePercent,
	})

	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	payrollHandler := appHTTP.NewPayrollHandler(payService)

	router := appHTTP.NewRouter(JWTService, payrollHandler, employeeHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

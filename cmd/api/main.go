package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sahelretail/hr-backend-go/internal/config"
	appHTTP "github.com/sahelretail/hr-backend-go/internal/handler/http"
	"github.com/sahelretail/hr-backend-go/internal/pkg/database"
	"github.com/sahelretail/hr-backend-go/internal/repository/postgresql"
	"github.com/sahelretail/hr-backend-go/internal/service/master"
	payrollService "github.com/sahelretail/hr-backend-go/internal/service/payroll"
	reportService "github.com/sahelretail/hr-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid TIMEZONE: ", cfg.App.Timezone)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	loanRepo := postgresql.NewLoanScheduleRepository(db)
	salesRepo := postgresql.NewSalesRepository(db)
	payRepo := postgresql.NewPayRepository(db)

	payrollSvc := payrollService.NewPayrollService(
		employeeRepo,
		absenceRepo,
		advanceRepo,
		leaveRepo,
		loanRepo,
		salesRepo,
		payRepo,
	)
	reportSvc := reportService.NewReportService(payrollSvc)
	masterSvc := master.NewMasterService(branchRepo, employeeRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, location)
	reportHandler := appHTTP.NewReportHandler(reportSvc, location)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(cfg, payrollHandler, reportHandler, masterHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

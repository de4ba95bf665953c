package app

import (
	"fmt"

	auditRepository "github.com/tlias/tlias/internal/audit/repository"
	auditUsecase "github.com/tlias/tlias/internal/audit/usecase"
	clazzRepository "github.com/tlias/tlias/internal/clazz/repository"
	clazzUsecase "github.com/tlias/tlias/internal/clazz/usecase"
	deptRepository "github.com/tlias/tlias/internal/dept/repository"
	deptUsecase "github.com/tlias/tlias/internal/dept/usecase"
	empRepository "github.com/tlias/tlias/internal/emp/repository"
	empUsecase "github.com/tlias/tlias/internal/emp/usecase"
	reportRepository "github.com/tlias/tlias/internal/report/repository"
	reportUsecase "github.com/tlias/tlias/internal/report/usecase"
	studentRepository "github.com/tlias/tlias/internal/student/repository"
	studentUsecase "github.com/tlias/tlias/internal/student/usecase"
)

// EmpRepository returns the employee repository for the configured driver.
func (c *Container) EmpRepository() (empUsecase.EmpRepository, error) {
	c.empRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["empRepo"] = err
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.empRepo = empRepository.NewMySQLEmpRepository(db)
		case "postgres":
			c.empRepo = empRepository.NewPostgreSQLEmpRepository(db)
		default:
			c.initErrors["empRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["empRepo"]; exists {
		return nil, err
	}
	return c.empRepo, nil
}

// StudentRepository returns the student repository for the configured driver.
func (c *Container) StudentRepository() (studentUsecase.StudentRepository, error) {
	c.studentRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["studentRepo"] = err
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.studentRepo = studentRepository.NewMySQLStudentRepository(db)
		case "postgres":
			c.studentRepo = studentRepository.NewPostgreSQLStudentRepository(db)
		default:
			c.initErrors["studentRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["studentRepo"]; exists {
		return nil, err
	}
	return c.studentRepo, nil
}

// ClazzRepository returns the class repository for the configured driver.
func (c *Container) ClazzRepository() (clazzUsecase.ClazzRepository, error) {
	c.clazzRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["clazzRepo"] = err
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.clazzRepo = clazzRepository.NewMySQLClazzRepository(db)
		case "postgres":
			c.clazzRepo = clazzRepository.NewPostgreSQLClazzRepository(db)
		default:
			c.initErrors["clazzRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["clazzRepo"]; exists {
		return nil, err
	}
	return c.clazzRepo, nil
}

// DeptRepository returns the department repository for the configured driver.
func (c *Container) DeptRepository() (deptUsecase.DeptRepository, error) {
	c.deptRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["deptRepo"] = err
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.deptRepo = deptRepository.NewMySQLDeptRepository(db)
		case "postgres":
			c.deptRepo = deptRepository.NewPostgreSQLDeptRepository(db)
		default:
			c.initErrors["deptRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["deptRepo"]; exists {
		return nil, err
	}
	return c.deptRepo, nil
}

// ReportRepository returns the reporting repository. The aggregate queries
// carry no placeholders, so a single implementation serves both drivers.
func (c *Container) ReportRepository() (reportUsecase.ReportRepository, error) {
	c.reportRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["reportRepo"] = err
			return
		}
		c.reportRepo = reportRepository.NewSQLReportRepository(db)
	})
	if err, exists := c.initErrors["reportRepo"]; exists {
		return nil, err
	}
	return c.reportRepo, nil
}

// OperateLogRepository returns the operate log repository for the configured driver.
func (c *Container) OperateLogRepository() (auditUsecase.OperateLogRepository, error) {
	c.operateLogRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["operateLogRepo"] = err
			return
		}
		switch c.config.DBDriver {
		case "mysql":
			c.operateLogRepo = auditRepository.NewMySQLOperateLogRepository(db)
		case "postgres":
			c.operateLogRepo = auditRepository.NewPostgreSQLOperateLogRepository(db)
		default:
			c.initErrors["operateLogRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if err, exists := c.initErrors["operateLogRepo"]; exists {
		return nil, err
	}
	return c.operateLogRepo, nil
}

// EmpUseCase returns the employee use case. It also serves as the role
// lookup for the authorization middleware.
func (c *Container) EmpUseCase() (empUsecase.EmpUseCase, error) {
	c.empUseCaseInit.Do(func() {
		txManager, err := c.TxManager()
		if err != nil {
			c.initErrors["empUseCase"] = err
			return
		}
		empRepo, err := c.EmpRepository()
		if err != nil {
			c.initErrors["empUseCase"] = err
			return
		}
		tokenCodec, err := c.TokenCodec()
		if err != nil {
			c.initErrors["empUseCase"] = err
			return
		}
		useCase, err := empUsecase.NewEmpUseCase(txManager, empRepo, tokenCodec)
		if err != nil {
			c.initErrors["empUseCase"] = fmt.Errorf("failed to create emp use case: %w", err)
			return
		}
		c.empUseCase = useCase
	})
	if err, exists := c.initErrors["empUseCase"]; exists {
		return nil, err
	}
	return c.empUseCase, nil
}

// StudentUseCase returns the student use case.
func (c *Container) StudentUseCase() (studentUsecase.StudentUseCase, error) {
	c.studentUseCaseInit.Do(func() {
		studentRepo, err := c.StudentRepository()
		if err != nil {
			c.initErrors["studentUseCase"] = err
			return
		}
		c.studentUseCase = studentUsecase.NewStudentUseCase(studentRepo)
	})
	if err, exists := c.initErrors["studentUseCase"]; exists {
		return nil, err
	}
	return c.studentUseCase, nil
}

// ClazzUseCase returns the class use case. The student repository backs the
// delete guard that refuses to remove a class with enrolled students.
func (c *Container) ClazzUseCase() (clazzUsecase.ClazzUseCase, error) {
	c.clazzUseCaseInit.Do(func() {
		clazzRepo, err := c.ClazzRepository()
		if err != nil {
			c.initErrors["clazzUseCase"] = err
			return
		}
		studentRepo, err := c.StudentRepository()
		if err != nil {
			c.initErrors["clazzUseCase"] = err
			return
		}
		c.clazzUseCase = clazzUsecase.NewClazzUseCase(clazzRepo, studentRepo)
	})
	if err, exists := c.initErrors["clazzUseCase"]; exists {
		return nil, err
	}
	return c.clazzUseCase, nil
}

// DeptUseCase returns the department use case.
func (c *Container) DeptUseCase() (deptUsecase.DeptUseCase, error) {
	c.deptUseCaseInit.Do(func() {
		deptRepo, err := c.DeptRepository()
		if err != nil {
			c.initErrors["deptUseCase"] = err
			return
		}
		c.deptUseCase = deptUsecase.NewDeptUseCase(deptRepo)
	})
	if err, exists := c.initErrors["deptUseCase"]; exists {
		return nil, err
	}
	return c.deptUseCase, nil
}

// ReportUseCase returns the reporting use case.
func (c *Container) ReportUseCase() (reportUsecase.ReportUseCase, error) {
	c.reportUseCaseInit.Do(func() {
		reportRepo, err := c.ReportRepository()
		if err != nil {
			c.initErrors["reportUseCase"] = err
			return
		}
		c.reportUseCase = reportUsecase.NewReportUseCase(reportRepo)
	})
	if err, exists := c.initErrors["reportUseCase"]; exists {
		return nil, err
	}
	return c.reportUseCase, nil
}

// OperateLogUseCase returns the operate log use case wrapped with the
// business metrics decorator.
func (c *Container) OperateLogUseCase() (auditUsecase.OperateLogUseCase, error) {
	c.operateLogUseCaseInit.Do(func() {
		operateLogRepo, err := c.OperateLogRepository()
		if err != nil {
			c.initErrors["operateLogUseCase"] = err
			return
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["operateLogUseCase"] = err
			return
		}
		inner := auditUsecase.NewOperateLogUseCase(operateLogRepo)
		c.operateLogUseCase = auditUsecase.NewMetricsDecorator(inner, businessMetrics)
	})
	if err, exists := c.initErrors["operateLogUseCase"]; exists {
		return nil, err
	}
	return c.operateLogUseCase, nil
}

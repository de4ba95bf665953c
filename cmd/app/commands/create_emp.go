package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tlias/tlias/internal/app"
	"github.com/tlias/tlias/internal/config"
	"github.com/tlias/tlias/internal/emp/domain"
)

// RunCreateEmp creates an employee account from the command line. The first
// admin account has to come from here since every API route except login is
// authenticated.
func RunCreateEmp(
	ctx context.Context,
	username string,
	name string,
	password string,
	gender int,
	job int,
	salary int,
) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()

	defer closeContainer(container, logger)

	empUseCase, err := container.EmpUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize emp use case: %w", err)
	}

	emp := &domain.Emp{
		Username: username,
		Password: password,
		Name:     name,
		Gender:   gender,
		Job:      job,
		Salary:   salary,
	}
	if err := empUseCase.Create(ctx, emp); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	logger.Info("employee created",
		slog.Int64("id", emp.ID),
		slog.String("username", emp.Username),
		slog.Int("job", emp.Job),
	)
	return nil
}

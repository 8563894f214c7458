package service

import (
	"context"
	"errors"
	"fmt"

	"go-product-catalog/config"
	"go-product-catalog/internal/model"
	"go-product-catalog/internal/repository"

	"go.uber.org/zap"
)

// SeedDefaults creates the default privileges and, when no account with the
// configured email exists yet, an admin holding all of them.
func SeedDefaults(ctx context.Context, privileges repository.PrivilegeRepository, users repository.UserRepository, admin config.AdminConfig, log *zap.Logger) error {
	if err := privileges.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("seed privileges: %w", err)
	}

	_, err := users.FindByEmail(ctx, admin.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	all, err := privileges.FindAll(ctx)
	if err != nil {
		return err
	}
	user := &model.User{
		Email:      admin.Email,
		FullName:   admin.FullName,
		IsActive:   true,
		Privileges: all,
	}
	user.CreatedBy = "system"
	user.UpdatedBy = "system"
	if err := user.SetPassword(admin.Password); err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := users.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Info("admin user created", zap.String("email", admin.Email))
	return nil
}

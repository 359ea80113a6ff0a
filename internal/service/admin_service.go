package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/smartresolve/admin-creator/internal/model"
	"github.com/smartresolve/admin-creator/internal/supabase"
)

// Inserter writes one row to a REST table.
type Inserter interface {
	Insert(ctx context.Context, table string, row interface{}) (*supabase.Response, error)
}

// AdminService handles admin creation.
type AdminService struct {
	client Inserter
	table  string
	log    zerolog.Logger
}

// NewAdminService creates a new AdminService inserting into table.
func NewAdminService(client Inserter, table string, log zerolog.Logger) *AdminService {
	return &AdminService{client: client, table: table, log: log}
}

// Create inserts an admin row. Every HTTP response yields an outcome;
// the error is non-nil only when no response was received.
func (s *AdminService) Create(ctx context.Context, email, password, fullName string) (*model.AdminCreateOutcome, error) {
	req := model.NewAdminCreateRequest(email, password, fullName)

	resp, err := s.client.Insert(ctx, s.table, req)
	if err != nil {
		return nil, fmt.Errorf("create admin %s: %w", email, err)
	}

	outcome := &model.AdminCreateOutcome{
		Email:      email,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Created:    resp.StatusCode == http.StatusCreated,
	}

	evt := s.log.Info()
	if !outcome.Created {
		evt = s.log.Warn()
	}
	evt.Str("request_id", resp.RequestID).
		Str("email", email).
		Int("status", resp.StatusCode).
		Msg("Admin insert returned")

	return outcome, nil
}

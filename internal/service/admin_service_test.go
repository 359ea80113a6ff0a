package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/smartresolve/admin-creator/internal/supabase"
	"github.com/stretchr/testify/require"
)

type stubInserter struct {
	table string
	row   interface{}
	resp  *supabase.Response
	err   error
}

func (s *stubInserter) Insert(_ context.Context, table string, row interface{}) (*supabase.Response, error) {
	s.table = table
	s.row = row
	return s.resp, s.err
}

func TestCreateBuildsExactPayload(t *testing.T) {
	inputs := []struct{ email, password, name string }{
		{"admin@example.com", "hunter2", "Ada Lovelace"},
		{"", "", ""},
		{`we"ird@x`, "pa ss\\word", "Zoë é\n"},
	}
	for _, in := range inputs {
		stub := &stubInserter{resp: &supabase.Response{StatusCode: http.StatusCreated}}
		svc := NewAdminService(stub, "users", zerolog.Nop())

		_, err := svc.Create(context.Background(), in.email, in.password, in.name)
		require.NoError(t, err)
		require.Equal(t, "users", stub.table)

		raw, err := json.Marshal(stub.row)
		require.NoError(t, err)
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &got))
		require.Equal(t, map[string]interface{}{
			"email":     in.email,
			"password":  in.password,
			"full_name": in.name,
			"role":      "admin",
		}, got)
	}
}

func TestCreateOutcome(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		created bool
	}{
		{"created", http.StatusCreated, "", true},
		{"ok is not created", http.StatusOK, "[]", false},
		{"duplicate", http.StatusBadRequest, `{"error": "duplicate"}`, false},
		{"unauthorized", http.StatusUnauthorized, `{"message":"Invalid API key"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubInserter{resp: &supabase.Response{StatusCode: tt.status, Body: tt.body}}
			svc := NewAdminService(stub, "users", zerolog.Nop())

			out, err := svc.Create(context.Background(), "admin@example.com", "pw", "Admin")
			require.NoError(t, err)
			require.Equal(t, tt.created, out.Created)
			require.Equal(t, tt.status, out.StatusCode)
			require.Equal(t, tt.body, out.Body)
			require.Equal(t, "admin@example.com", out.Email)
		})
	}
}

func TestCreatePropagatesTransportError(t *testing.T) {
	cause := &supabase.TransportError{Op: "insert", URL: "https://x.supabase.co/rest/v1/users", Err: errors.New("no such host")}
	stub := &stubInserter{err: cause}
	svc := NewAdminService(stub, "users", zerolog.Nop())

	out, err := svc.Create(context.Background(), "admin@example.com", "pw", "Admin")
	require.Nil(t, out)

	var te *supabase.TransportError
	require.ErrorAs(t, err, &te)
	require.Contains(t, err.Error(), "admin@example.com")
}

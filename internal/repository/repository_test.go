package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation code",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "users_email_unique"},
			want: true,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "other pg error code",
			err:  &pgconn.PgError{Code: "23503"},
			want: false,
		},
		{
			name: "non-pg error mentioning unique",
			err:  errors.New("this key is quite unique, code 23505"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

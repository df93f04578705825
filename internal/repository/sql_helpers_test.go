package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestBuildPlaceholders(t *testing.T) {
	cases := []struct {
		start, count int
		want         string
	}{
		{1, 0, ""},
		{1, 1, "$1"},
		{1, 3, "$1,$2,$3"},
		{4, 2, "$4,$5"},
	}
	for _, c := range cases {
		if got := buildPlaceholders(c.start, c.count); got != c.want {
			t.Errorf("buildPlaceholders(%d, %d) = %q, want %q", c.start, c.count, got, c.want)
		}
	}
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	if !isUniqueViolation(unique) {
		t.Error("23505 should be a unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert application: %w", unique)) {
		t.Error("wrapped 23505 should be a unique violation")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation is not a unique violation")
	}
	if isUniqueViolation(errors.New("connection reset")) {
		t.Error("plain errors are not unique violations")
	}
}

package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"gyanpod-api/models"
)

var userColumns = []string{
	"user_id", "display_name", "email", "role_id", "status", "create_at",
}

func userRow(id int64, roleID int64, status string) []driver.Value {
	return []driver.Value{
		id, "Asha Verma", "asha.verma@school.example", roleID, status,
		time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestListUsersFiltersByRoleAndStatus(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `users` WHERE delete_at IS NULL AND role_id = \\? AND status = \\? ORDER BY create_at DESC"),
			columns: userColumns,
			rows:    [][]driver.Value{userRow(12, int64(models.RoleTeacher), models.UserStatusActive)},
		},
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `roles`"),
			columns: []string{"role_id", "role"},
			rows:    [][]driver.Value{{int64(models.RoleTeacher), "teacher"}},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewUserService(db)
	users, err := svc.List(models.RoleTeacher, models.UserStatusActive)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].UserID != 12 || users[0].Role.Role != "teacher" {
		t.Errorf("unexpected record: %+v", users[0])
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetStatusValidatesValue(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewUserService(db)
	_, err := svc.SetStatus(12, 9, "banned")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "status" {
		t.Errorf("expected field status, got %q", verr.Field)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unexpected statements issued: %v", err)
	}
}

func TestSetStatusRefusesOwnAccount(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewUserService(db)
	_, err := svc.SetStatus(9, 9, models.UserStatusSuspended)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "user_id" {
		t.Errorf("expected field user_id, got %q", verr.Field)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unexpected statements issued: %v", err)
	}
}

func TestSetStatusSuspendsAccount(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `users` WHERE user_id = \\? AND delete_at IS NULL"),
			columns: userColumns,
			rows:    [][]driver.Value{userRow(12, int64(models.RoleTeacher), models.UserStatusActive)},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `users` SET .+ WHERE user_id = \\? AND delete_at IS NULL"),
			result:  scriptedResult{rowsAffected: 1},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewUserService(db)
	user, err := svc.SetStatus(12, 9, models.UserStatusSuspended)
	if err != nil {
		t.Fatalf("SetStatus returned error: %v", err)
	}
	if user.Status != models.UserStatusSuspended {
		t.Errorf("expected status suspended, got %q", user.Status)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSetStatusMissingUser(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `users`"),
			columns: userColumns,
			rows:    nil,
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewUserService(db)
	if _, err := svc.SetStatus(404, 9, models.UserStatusActive); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

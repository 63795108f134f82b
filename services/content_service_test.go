package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"gyanpod-api/models"
)

var contentColumns = []string{
	"content_id", "type", "title", "class_level", "subject",
	"author_id", "author_name", "submission_id", "status",
	"view_count", "like_count", "created_at",
}

func contentRow(id, likeCount int64) []driver.Value {
	return []driver.Value{
		id, "notes", "Fractions revision notes", "6", "mathematics",
		int64(12), "Asha Verma", int64(4), models.ContentStatusPublished,
		int64(30), likeCount, time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func contentQueryStep(likeCount int64) *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: regexp.MustCompile("SELECT \\* FROM `contents` WHERE content_id = \\? AND delete_at IS NULL"),
		columns: contentColumns,
		rows:    [][]driver.Value{contentRow(3, likeCount)},
	}
}

func likeCountStep(count int64) *queryStep {
	return &queryStep{
		kind:    kindQuery,
		pattern: regexp.MustCompile("SELECT `?like_count`? FROM `contents` WHERE content_id = \\?"),
		columns: []string{"like_count"},
		rows:    [][]driver.Value{{count}},
	}
}

func TestQueryAppliesFilters(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `contents` WHERE delete_at IS NULL AND class_level = \\? AND subject = \\? AND status = \\? ORDER BY created_at DESC"),
			columns: contentColumns,
			rows:    [][]driver.Value{contentRow(3, 5)},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewContentService(db)
	contents, err := svc.Query(ContentFilter{
		ClassLevel: "6",
		Subject:    "mathematics",
		Status:     models.ContentStatusPublished,
	})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected 1 content record, got %d", len(contents))
	}
	if contents[0].ContentID != 3 || contents[0].Subject != "mathematics" {
		t.Errorf("unexpected record: %+v", contents[0])
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestIncrementViews(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `contents` SET `view_count`=view_count \\+ \\? WHERE content_id = \\? AND delete_at IS NULL"),
			result:  scriptedResult{rowsAffected: 1},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewContentService(db)
	if err := svc.IncrementViews(3); err != nil {
		t.Fatalf("IncrementViews returned error: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestIncrementViewsMissingContent(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `contents` SET `view_count`"),
			result:  scriptedResult{rowsAffected: 0},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewContentService(db)
	if err := svc.IncrementViews(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestToggleLikeTwiceRestoresState(t *testing.T) {
	likeColumns := []string{"like_id", "content_id", "user_id", "created_at"}
	steps := []*queryStep{
		// First toggle: no existing like, so insert and bump the counter.
		contentQueryStep(5),
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `content_likes` WHERE content_id = \\? AND user_id = \\?"),
			columns: likeColumns,
			rows:    nil,
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `content_likes`"),
			result:  scriptedResult{lastInsertID: 11, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `contents` SET `like_count`=like_count \\+ \\? WHERE content_id = \\?"),
			result:  scriptedResult{rowsAffected: 1},
		},
		likeCountStep(6),
		// Second toggle: the like exists, so delete and drop the counter.
		contentQueryStep(6),
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `content_likes` WHERE content_id = \\? AND user_id = \\?"),
			columns: likeColumns,
			rows: [][]driver.Value{
				{int64(11), int64(3), int64(12), time.Date(2026, 3, 14, 12, 5, 0, 0, time.UTC)},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("DELETE FROM `content_likes` WHERE like_id = \\?"),
			args:    []driver.Value{int64(11)},
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `contents` SET `like_count`=like_count \\+ \\? WHERE content_id = \\?"),
			result:  scriptedResult{rowsAffected: 1},
		},
		likeCountStep(5),
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewContentService(db)

	liked, count, err := svc.ToggleLike(3, 12)
	if err != nil {
		t.Fatalf("first ToggleLike returned error: %v", err)
	}
	if !liked || count != 6 {
		t.Errorf("expected liked=true count=6, got liked=%v count=%d", liked, count)
	}

	liked, count, err = svc.ToggleLike(3, 12)
	if err != nil {
		t.Fatalf("second ToggleLike returned error: %v", err)
	}
	if liked || count != 5 {
		t.Errorf("expected liked=false count=5, got liked=%v count=%d", liked, count)
	}

	if state.commits != 2 {
		t.Errorf("expected 2 committed transactions, got %d", state.commits)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestToggleLikeRollsBackOnCounterFailure(t *testing.T) {
	likeColumns := []string{"like_id", "content_id", "user_id", "created_at"}
	steps := []*queryStep{
		contentQueryStep(5),
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `content_likes` WHERE content_id = \\? AND user_id = \\?"),
			columns: likeColumns,
			rows:    nil,
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `content_likes`"),
			result:  scriptedResult{lastInsertID: 11, rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `contents` SET `like_count`"),
			err:     errors.New("connection reset"),
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewContentService(db)
	_, _, err := svc.ToggleLike(3, 12)
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if state.rollbacks != 1 {
		t.Errorf("expected the like insert to be rolled back, got %d rollbacks", state.rollbacks)
	}
	if state.commits != 0 {
		t.Errorf("expected no commit, got %d", state.commits)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestToggleLikeMissingContent(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `contents`"),
			columns: contentColumns,
			rows:    nil,
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewContentService(db)
	if _, _, err := svc.ToggleLike(404, 12); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPublishSubmissionRequiresApproval(t *testing.T) {
	db, state, cleanup := newScriptedGormDB(t, nil)
	defer cleanup()

	svc := NewContentService(db)
	pending := &models.Submission{SubmissionID: 4, Status: models.SubmissionStatusPending}
	if _, err := svc.PublishSubmission(pending); !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unexpected statements issued: %v", err)
	}
}

func TestPublishSubmissionCreatesContent(t *testing.T) {
	body := "Proper and improper fractions."
	reviewedAt := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	reviewer := 9
	approved := &models.Submission{
		SubmissionID: 4,
		Type:         models.ContentTypeNotes,
		Title:        "Fractions revision notes",
		Body:         &body,
		ClassLevel:   "6",
		Subject:      "mathematics",
		AuthorID:     12,
		AuthorName:   "Asha Verma",
		Status:       models.SubmissionStatusApproved,
		ReviewedAt:   &reviewedAt,
		ReviewedBy:   &reviewer,
	}

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `contents` WHERE submission_id = \\?"),
			columns: contentColumns,
			rows:    nil,
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO `contents`"),
			result:  scriptedResult{lastInsertID: 8, rowsAffected: 1},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewContentService(db)
	content, err := svc.PublishSubmission(approved)
	if err != nil {
		t.Fatalf("PublishSubmission returned error: %v", err)
	}
	if content.ContentID != 8 {
		t.Errorf("expected content id 8, got %d", content.ContentID)
	}
	if content.Status != models.ContentStatusPublished {
		t.Errorf("expected status published, got %q", content.Status)
	}
	if content.SubmissionID == nil || *content.SubmissionID != 4 {
		t.Errorf("expected source submission 4, got %v", content.SubmissionID)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPublishSubmissionIsIdempotent(t *testing.T) {
	reviewedAt := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
	approved := &models.Submission{
		SubmissionID: 4,
		Status:       models.SubmissionStatusApproved,
		ReviewedAt:   &reviewedAt,
	}

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `contents` WHERE submission_id = \\?"),
			columns: contentColumns,
			rows:    [][]driver.Value{contentRow(8, 5)},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	svc := NewContentService(db)
	content, err := svc.PublishSubmission(approved)
	if err != nil {
		t.Fatalf("PublishSubmission returned error: %v", err)
	}
	if content.ContentID != 8 {
		t.Errorf("expected existing content 8, got %d", content.ContentID)
	}
	if err := state.verifyComplete(); err != nil {
		t.Errorf("republish issued writes: %v", err)
	}
}

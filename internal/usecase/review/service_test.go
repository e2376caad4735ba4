package review

import (
	"context"
	stdErrors "errors"
	"net/http"
	"testing"

	apperrors "github.com/voicedesk/transcription-review/errors"
	"github.com/voicedesk/transcription-review/internal/domain/entities"
)

// fakeTranscriptionRepo records calls and returns canned results
type fakeTranscriptionRepo struct {
	records      []*entities.Transcription
	listErr      error
	updateErr    error
	updateCalls  int
	lastID       string
	lastStatus   entities.Status
	findByIDFunc func(id string) *entities.Transcription
}

func (f *fakeTranscriptionRepo) ListByRecency(ctx context.Context) ([]*entities.Transcription, error) {
	return f.records, f.listErr
}

func (f *fakeTranscriptionRepo) FindByID(ctx context.Context, id string) (*entities.Transcription, error) {
	if f.findByIDFunc != nil {
		return f.findByIDFunc(id), nil
	}
	return nil, nil
}

func (f *fakeTranscriptionRepo) UpdateStatus(ctx context.Context, id string, status entities.Status) error {
	f.updateCalls++
	f.lastID = id
	f.lastStatus = status
	return f.updateErr
}

type fakeLegacyRepo struct {
	resolveErr   error
	resolveCalls int
	lastID       string
}

func (f *fakeLegacyRepo) MarkResolved(ctx context.Context, id string) error {
	f.resolveCalls++
	f.lastID = id
	return f.resolveErr
}

func TestUpdateStatusValid(t *testing.T) {
	repo := &fakeTranscriptionRepo{}
	svc := NewService(repo, &fakeLegacyRepo{})

	if err := svc.UpdateStatus(context.Background(), "rec-1", entities.StatusInProgress); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if repo.updateCalls != 1 {
		t.Fatalf("expected 1 update call, got %d", repo.updateCalls)
	}
	if repo.lastID != "rec-1" || repo.lastStatus != entities.StatusInProgress {
		t.Fatalf("unexpected update args: %s %s", repo.lastID, repo.lastStatus)
	}
}

func TestUpdateStatusInvalidEnum(t *testing.T) {
	repo := &fakeTranscriptionRepo{}
	svc := NewService(repo, &fakeLegacyRepo{})

	err := svc.UpdateStatus(context.Background(), "rec-1", entities.Status("done"))
	if err == nil {
		t.Fatal("expected error for invalid status")
	}

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", appErr.HTTPCode)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("store touched for invalid status: %d calls", repo.updateCalls)
	}
}

func TestUpdateStatusStoreError(t *testing.T) {
	repo := &fakeTranscriptionRepo{updateErr: stdErrors.New("disk I/O error")}
	svc := NewService(repo, &fakeLegacyRepo{})

	err := svc.UpdateStatus(context.Background(), "rec-1", entities.StatusResolved)
	if err == nil {
		t.Fatal("expected error")
	}

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", appErr.HTTPCode)
	}
}

func TestResolve(t *testing.T) {
	legacy := &fakeLegacyRepo{}
	svc := NewService(&fakeTranscriptionRepo{}, legacy)

	if err := svc.Resolve(context.Background(), "legacy-9"); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if legacy.resolveCalls != 1 || legacy.lastID != "legacy-9" {
		t.Fatalf("unexpected resolve calls: %d %s", legacy.resolveCalls, legacy.lastID)
	}
}

func TestListTranscriptionsStoreError(t *testing.T) {
	repo := &fakeTranscriptionRepo{listErr: stdErrors.New("database is locked")}
	svc := NewService(repo, &fakeLegacyRepo{})

	if _, err := svc.ListTranscriptions(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestFilter(t *testing.T) {
	records := []*entities.Transcription{
		{ID: "1", Intent: "billing", TranscribedText: "hello world", OriginalFilename: "call1.wav"},
		{ID: "2", Intent: "GENERAL_INQUIRY", TranscribedText: "opening hours", OriginalFilename: "inquiry.mp3"},
		{ID: "3", Intent: "REQUEST_SUPPORT", TranscribedText: "my bill is wrong", OriginalFilename: "call2.wav"},
	}

	got := Filter(records, "bill")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected filter result: %v", ids(got))
	}

	if got := Filter(records, ""); len(got) != 3 {
		t.Fatalf("empty term should return full list, got %d", len(got))
	}

	if got := Filter(records, "zzz"); len(got) != 0 {
		t.Fatalf("non-matching term should return empty list, got %d", len(got))
	}

	if got := Filter(records, "CALL1"); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("filename match failed: %v", ids(got))
	}
}

func ids(records []*entities.Transcription) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
